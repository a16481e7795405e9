package main

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
)

const (
	// memProfileRate overrides runtime.MemProfileRate while a session runs.
	memProfileRate = 4096

	timeFormat = "20060102_150405"
)

// Profiler represents an active profiling session toggled via SIGUSR2.
type Profiler struct {
	dataDir string

	// closers holds cleanup functions that run after each profile
	closers []func()

	// stopped records if a call to Stop has been made
	stopped uint32
}

// StartProfiler starts a new profiling session. The caller must call Stop
// to flush the collected profiles.
func StartProfiler(dataDir string) *Profiler {
	p := &Profiler{dataDir: dataDir}

	p.startCpuProfile()
	p.startMemProfile()
	p.startTraceProfile()

	return p
}

// Stop stops the profile and flushes any unwritten data.
func (p *Profiler) Stop() {
	if !atomic.CompareAndSwapUint32(&p.stopped, 0, 1) {
		return
	}
	for _, closer := range p.closers {
		closer()
	}
}

func (p *Profiler) startCpuProfile() {
	fn := p.dumpFileName("cpu")
	f, err := os.Create(fn)
	if err != nil {
		glog.Errorf("pprof: could not create cpu profile %q: %v", fn, err)
		return
	}

	glog.Infof("pprof: cpu profiling enabled, %s", fn)
	pprof.StartCPUProfile(f)
	p.closers = append(p.closers, func() {
		pprof.StopCPUProfile()
		f.Close()
		glog.Infof("pprof: cpu profiling disabled, %s", fn)
	})
}

func (p *Profiler) startMemProfile() {
	fn := p.dumpFileName("mem")
	f, err := os.Create(fn)
	if err != nil {
		glog.Errorf("pprof: could not create memory profile %q: %v", fn, err)
		return
	}

	old := runtime.MemProfileRate
	runtime.MemProfileRate = memProfileRate
	glog.Infof("pprof: memory profiling enabled (rate %d), %s", runtime.MemProfileRate, fn)
	p.closers = append(p.closers, func() {
		pprof.Lookup("heap").WriteTo(f, 0)
		f.Close()
		runtime.MemProfileRate = old
		glog.Infof("pprof: memory profiling disabled, %s", fn)
	})
}

func (p *Profiler) startTraceProfile() {
	fn := p.dumpFileName("trace")
	f, err := os.Create(fn)
	if err != nil {
		glog.Errorf("pprof: could not create trace output file %q: %v", fn, err)
		return
	}

	if err := trace.Start(f); err != nil {
		glog.Errorf("pprof: could not start trace: %v", err)
		return
	}

	glog.Infof("pprof: trace enabled, %s", fn)
	p.closers = append(p.closers, func() {
		trace.Stop()
		glog.Infof("pprof: trace disabled, %s", fn)
	})
}

func (p *Profiler) dumpFileName(kind string) string {
	return path.Join(p.dataDir, fmt.Sprintf("%s-%s.pprof", kind, time.Now().Format(timeFormat)))
}

func (p *Profiler) dumpGoroutines() {
	dumpFile := path.Join(p.dataDir, fmt.Sprintf("goroutines-%s.dump", time.Now().Format(timeFormat)))
	glog.Infof("Got dump goroutine signal, dumping goroutine profile to %s", dumpFile)
	f, err := os.Create(dumpFile)
	if err != nil {
		glog.Errorf("Failed to dump goroutine profile, error: %v", err)
		return
	}
	defer f.Close()
	if err := pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		glog.Errorf("Failed to write goroutine profile to %s, error: %v", dumpFile, err)
	}
}
