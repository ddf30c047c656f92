package ui

import (
	"image"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/go-gl/mathgl/mgl64"
)

// WidgetPanel adapts an ebitenui widget to Panel.
type WidgetPanel struct {
	w *widget.Widget
}

func NewWidgetPanel(w widget.HasWidget) *WidgetPanel {
	if w == nil {
		return &WidgetPanel{}
	}
	return &WidgetPanel{w: w.GetWidget()}
}

func (p *WidgetPanel) SetVisible(visible bool) {
	if p == nil || p.w == nil {
		return
	}
	if visible {
		p.w.Visibility = widget.Visibility_Show
	} else {
		p.w.Visibility = widget.Visibility_Hide
	}
}

func (p *WidgetPanel) Visible() bool {
	return p != nil && p.w != nil && p.w.Visibility == widget.Visibility_Show
}

// Blocker reports touches that land on visible tracked widgets, so they do
// not also reach the placement controllers.
type Blocker struct {
	widgets []*widget.Widget
}

// Track adds widgets whose screen rectangles swallow touches.
func (b *Blocker) Track(ws ...widget.HasWidget) {
	if b == nil {
		return
	}
	for _, w := range ws {
		if w != nil {
			b.widgets = append(b.widgets, w.GetWidget())
		}
	}
}

func (b *Blocker) IsPointerOverUI(pt mgl64.Vec2) bool {
	if b == nil {
		return false
	}
	p := image.Pt(int(pt.X()), int(pt.Y()))
	for _, w := range b.widgets {
		if w.IsVisible() && p.In(w.Rect) {
			return true
		}
	}
	return false
}
