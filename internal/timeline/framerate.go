package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// frames per second
type FrameRate int

const (
	DefaultFrameRate FrameRate = 30
	MaxFrameRate     FrameRate = 1000
)

func (r FrameRate) Validate() error {
	if r <= 0 || r > MaxFrameRate {
		return fmt.Errorf("%w: frame rate must be in 1..%d, got %d", ErrInvalidArgument, int(MaxFrameRate), int(r))
	}
	return nil
}

// Duration converts a frame count to wall-clock time, truncated to the
// millisecond. Counts past the range of time.Duration saturate.
func (r FrameRate) Duration(frames int) time.Duration {
	if r <= 0 {
		return 0
	}
	secs, rem := int64(frames)/int64(r), int64(frames)%int64(r)
	if secs > math.MaxInt64/int64(time.Second)-1 {
		return time.Duration(math.MaxInt64)
	}
	ms := rem * 1000 / int64(r)
	return time.Duration(secs)*time.Second + time.Duration(ms)*time.Millisecond
}

// Frames converts a duration to the nearest whole frame count.
func (r FrameRate) Frames(d time.Duration) int {
	if r <= 0 {
		return 0
	}
	secs, rem := d/time.Second, d%time.Second
	return int(secs)*int(r) + int((rem*time.Duration(r)+time.Second/2)/time.Second)
}

// Length is a segment length given either as a frame count or as a
// wall-clock duration that is converted at the plan's frame rate.
type Length struct {
	frames int
	time   time.Duration
	timed  bool
}

func FrameCount(n int) Length {
	return Length{frames: n}
}

func TimeLength(d time.Duration) Length {
	return Length{time: d, timed: true}
}

// ParseLength accepts a bare integer frame count ("90") or a Go duration
// ("3s", "1m30s", "1.5s").
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FrameCount(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q is neither a frame count nor a duration", ErrInvalidArgument, s)
	}
	return TimeLength(d), nil
}

// Frames resolves the length at rate r.
func (l Length) Frames(r FrameRate) int {
	if l.timed {
		return r.Frames(l.time)
	}
	return l.frames
}
