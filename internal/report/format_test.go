package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactCount(t *testing.T) {
	assert.Equal(t, "0", CompactCount(0))
	assert.Equal(t, "999", CompactCount(999))
	assert.Equal(t, "1.0K", CompactCount(1000))
	assert.Equal(t, "1.2K", CompactCount(1234))
	assert.Equal(t, "999.5K", CompactCount(999499))
	assert.Equal(t, "3.4M", CompactCount(3400000))
}

func TestFormatJoined(t *testing.T) {
	assert.Equal(t, "Joined Dec 2013", FormatJoined("2013-12-14T00:00:00.000Z"))
	assert.Equal(t, "Joined Jan 2020", FormatJoined("2020-01-02T15:04:05Z"))
	assert.Equal(t, "", FormatJoined(""))
	assert.Equal(t, "", FormatJoined("not a date"))
}

func TestFollowRatio(t *testing.T) {
	assert.Equal(t, "—", FollowRatio(100, 0))
	assert.Equal(t, "—", FollowRatio(0, 50))
	assert.Equal(t, "12x", FollowRatio(1200, 100))
	assert.Equal(t, "1.5x", FollowRatio(150, 100))
	assert.Equal(t, "1:20", FollowRatio(5, 100))
}
