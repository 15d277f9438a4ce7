package widget

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/macropower/scrollview/pkg/canvas"
)

// maxDecoratorDepth bounds the walk through [Decorator] chains.
const maxDecoratorDepth = 64

var (
	// ErrCapabilityMissing indicates that no widget in a chain implements a
	// required capability.
	ErrCapabilityMissing = errors.New("capability missing")
	// ErrSizingMismatch indicates that a rendered canvas disagrees with the
	// size it was asked to render at.
	ErrSizingMismatch = errors.New("sizing mismatch")
	// ErrUnsupportedSizing indicates that a widget supports none of the
	// sizing modes a caller can use.
	ErrUnsupportedSizing = errors.New("unsupported sizing")
)

// FindScrollable walks the [Decorator] chain starting below w and returns the
// nearest widget implementing [Scrollable].
func FindScrollable(w Widget) (Scrollable, error) {
	cur := w
	for range maxDecoratorDepth {
		d, ok := cur.(Decorator)
		if !ok {
			break
		}

		cur = d.Inner()
		if cur == nil {
			break
		}

		if s, ok := cur.(Scrollable); ok {
			slog.Debug("found scrollable widget",
				slog.String("wrapper", fmt.Sprintf("%T", w)),
				slog.String("scrollable", fmt.Sprintf("%T", cur)),
			)

			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: no scrollable widget inside %T", ErrCapabilityMissing, w)
}

// SetPageRows reports rows to the first [Pager] in the [Decorator] chain
// starting at w. It returns false when there is none.
func SetPageRows(w Widget, rows int) bool {
	cur := w
	for range maxDecoratorDepth {
		if cur == nil {
			return false
		}

		if p, ok := cur.(Pager); ok {
			p.SetPageRows(rows)
			return true
		}

		d, ok := cur.(Decorator)
		if !ok {
			return false
		}

		cur = d.Inner()
	}

	return false
}

// CursorOf returns the cursor of w, if w exposes one.
func CursorOf(w Widget, size Size) (canvas.Cursor, bool) {
	if cw, ok := w.(CursorWidget); ok {
		return cw.CursorCoords(size)
	}

	return canvas.Cursor{}, false
}

// HandleKey offers key to w. It returns false when w does not handle keys.
func HandleKey(w Widget, size Size, key string) bool {
	if kh, ok := w.(KeyHandler); ok {
		return kh.Keypress(size, key)
	}

	return false
}

// HandleMouse offers ev to w. It returns false when w does not handle
// pointer input.
func HandleMouse(w Widget, size Size, ev MouseEvent, focus bool) bool {
	if mh, ok := w.(MouseHandler); ok {
		return mh.MouseEvent(size, ev, focus)
	}

	return false
}

// AcceptsMouse reports whether w handles pointer input.
func AcceptsMouse(w Widget) bool {
	_, ok := w.(MouseHandler)
	return ok
}

// PreferredColumnOf returns the preferred column of w, if it has one.
func PreferredColumnOf(w Widget, size Size) (int, bool) {
	if pc, ok := w.(PreferredColumner); ok {
		return pc.PreferredColumn(size)
	}

	return 0, false
}

// CheckSize returns an [ErrSizingMismatch] error when c disagrees with size
// on an axis the size mode constrains.
func CheckSize(w Widget, size Size, c *canvas.Canvas) error {
	switch size.Mode {
	case SizingBox:
		if c.Cols() != size.Cols || c.Rows() != size.Rows {
			return fmt.Errorf("%w: %T rendered %dx%d for %s",
				ErrSizingMismatch, w, c.Cols(), c.Rows(), size)
		}

	case SizingFlow:
		if c.Cols() != size.Cols {
			return fmt.Errorf("%w: %T rendered %d columns for %s",
				ErrSizingMismatch, w, c.Cols(), size)
		}
	}

	return nil
}
