package scroll

import "math"

// Partition splits a scroll bar track into the trough above the thumb, the
// thumb, and the trough below it.
type Partition struct {
	Top    int
	Thumb  int
	Bottom int
}

// Thumb partitions a track of visible rows showing content of total rows
// scrolled to pos. The three heights always sum to visible, and the thumb is
// at least one row tall. Heights are rounded with [math.Round].
func Thumb(visible, total, pos int) Partition {
	if visible <= 0 {
		return Partition{}
	}

	if total <= visible {
		return Partition{Thumb: visible}
	}

	posMax := total - visible
	pos = max(0, min(pos, posMax))

	thumbWeight := min(1, float64(visible)/float64(total))
	thumb := min(visible, max(1, int(math.Round(thumbWeight*float64(visible)))))

	free := visible - thumb
	topWeight := float64(pos) / float64(max(1, posMax))

	top := int(math.Floor(float64(free) * topWeight))
	if top == 0 && topWeight > 0 && free > 0 {
		// Once scrolled at all, the thumb leaves the top edge.
		top = 1
	}

	return Partition{
		Top:    top,
		Thumb:  thumb,
		Bottom: visible - thumb - top,
	}
}
