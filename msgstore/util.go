package msgstore

import (
	"encoding/json"
	"time"
)

// GetDayBefore get the time of before `days`, exclude today.
func GetDayBefore(days int32) time.Time {
	days += 1
	offset := time.Duration(days*24) * time.Hour
	d := time.Now().Add(-offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

// EncodeMentions packs mention ids into the `mentions` column. Empty input
// encodes to the empty string so the column stays NULL-ish for the common
// case.
func EncodeMentions(mentions []string) (string, error) {
	if len(mentions) == 0 {
		return "", nil
	}
	b, err := json.Marshal(mentions)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeMentions(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
