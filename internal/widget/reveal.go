package widget

import "time"

// RevealInterval returns the per-rune delay for the typewriter reveal of a
// reply length runes long: max(8ms, floor(1200ms / max(20, length))). The
// floor keeps short replies from appearing instantly and the cap keeps
// long ones from dragging, so total reveal time grows sublinearly.
func RevealInterval(length int) time.Duration {
	if length < 20 {
		length = 20
	}
	ms := 1200 / length
	if ms < 8 {
		ms = 8
	}
	return time.Duration(ms) * time.Millisecond
}

// speakDelay is how long after a reply arrives before it is spoken aloud:
// the full reveal duration, but never less than 600ms.
func speakDelay(length int, interval time.Duration) time.Duration {
	d := time.Duration(length) * interval
	if d < 600*time.Millisecond {
		d = 600 * time.Millisecond
	}
	return d
}

// reveal tracks one in-progress typewriter reveal. The target turn index
// is fixed when the placeholder is appended, so reveals of overlapping
// sends never write into each other's turns.
type reveal struct {
	turn     int
	full     []rune
	pos      int
	interval time.Duration
}

func (r *reveal) done() bool { return r.pos >= len(r.full) }
