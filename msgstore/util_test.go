package msgstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMentionsRoundTrip(t *testing.T) {
	s, err := EncodeMentions(nil)
	assert.NoError(t, err)
	assert.Empty(t, s)

	out, err := DecodeMentions(s)
	assert.NoError(t, err)
	assert.Nil(t, out)

	s, err = EncodeMentions([]string{"a", "b"})
	assert.NoError(t, err)

	out, err = DecodeMentions(s)
	assert.NoError(t, err)
	assert.EqualValues(t, []string{"a", "b"}, out)
}

func TestDecodeMentionsBadInput(t *testing.T) {
	_, err := DecodeMentions("{")
	assert.Error(t, err)
}

func TestGetDayBefore(t *testing.T) {
	got := GetDayBefore(30)

	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
	assert.Zero(t, got.Second())

	// strictly older than 30 full days.
	assert.True(t, time.Since(got) > 30*24*time.Hour)
	assert.True(t, time.Since(got) < 32*24*time.Hour)
}
