package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbital/input"
)

const (
	AnchorGlyph   = '◎'
	ExpandedGlyph = '◉'
	labelWidth    = 5
)

var (
	styleHub     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAction  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAnchor  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFocused = tcell.StyleDefault.Reverse(true)
)

// Draw renders the ring, focus and status lines
func (h *Host) Draw() {
	h.screen.Clear()
	_, ht := h.screen.Size()

	if h.surface.Visible() {
		placements, effs := h.surface.ComputeLayout()
		h.router.Dispatch(effs)
		snap := h.surface.Snapshot()

		anchor := AnchorGlyph
		if snap.State.IsExpanded() {
			anchor = ExpandedGlyph
		}
		h.screen.SetContent(h.viewport.CenterX, h.viewport.CenterY, anchor, nil, styleAnchor)

		for i, pl := range placements {
			x, y := h.viewport.ToCell(pl.Position.Point())
			style := styleFor(pl.Element.Kind)
			if i == snap.Focus {
				style = styleFocused
			}
			label := pl.Element.Icon
			if label == "" {
				label = pl.Element.Label
			}
			h.drawText(x-labelWidth/2, y, truncate(label, labelWidth), style)
		}

		h.drawText(0, ht-1, fmt.Sprintf("%s  rot %3.0f°  r %3.0f", snap.State, snap.Rotation, snap.Radius), styleStatus)
	}

	h.drawText(0, ht-2, h.announcer.Last(), styleStatus)
	h.drawText(0, ht-3, h.message, styleStatus)
	h.screen.Show()
}

func styleFor(kind input.TargetKind) tcell.Style {
	switch kind {
	case input.TargetItem:
		return styleItem
	case input.TargetAction:
		return styleAction
	default:
		return styleHub
	}
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
