package layout

// Clamp bounds a scroll offset to [0, max(0, extent-viewLen)]. When the
// whole layout fits in the viewport the only valid offset is 0. Callers
// reclamp on every resize, not just on explicit scroll.
func Clamp(offset, extent, viewLen int) int {
	maxOffset := extent - viewLen
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Slice returns the sub-grid of whole scroll-axis slots [offset, offset+viewLen),
// rebased so the first visible slot is row 0. The cross extent is unchanged;
// cross-axis overflow is the renderer's concern.
func (l Layout) Slice(offset, viewLen int) Layout {
	offset = Clamp(offset, l.ScrollExtent, viewLen)

	visible := l.ScrollExtent - offset
	if visible > viewLen {
		visible = viewLen
	}
	if visible < 0 {
		visible = 0
	}

	out := Layout{
		ScrollExtent: visible,
		CrossExtent:  l.CrossExtent,
		RTL:          l.RTL,
		Vertical:     l.Vertical,
	}
	for _, c := range l.Cells {
		if c.Row < offset || c.Row >= offset+visible {
			continue
		}
		c.Row -= offset
		out.Cells = append(out.Cells, c)
	}
	return out
}

// Overflows reports whether the layout needs scrolling at the given
// viewport length.
func (l Layout) Overflows(viewLen int) bool {
	return l.ScrollExtent > viewLen
}
