package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/arplace/common"
	"github.com/milk9111/arplace/prefabs"
	"github.com/milk9111/arplace/system"
	"github.com/milk9111/arplace/ui"
)

// panelManager is the part of FurniturePanels and DecorPanels the UI needs.
type panelManager interface {
	SelectObject(p *prefabs.Placeable)
}

// PanelsUI is the category tab bar plus one prefab panel per category.
type PanelsUI struct {
	UI *ebitenui.UI

	Furniture *ui.FurniturePanels
	Decor     *ui.DecorPanels

	face     ebtext.Face
	panelImg *imageui.NineSlice
	btnImage *widget.ButtonImage
	btnText  *widget.ButtonTextColor
}

// NewPanelsUI builds the panels for the world's mode and registers every
// interactive container with blocker. Plants mode has no panels.
func NewPanelsUI(w *system.World, blocker *ui.Blocker) *PanelsUI {
	p := &PanelsUI{
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		panelImg: imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 200}),
		btnImage: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
			Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}),
			Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
		},
		btnText: &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	p.UI = &ebitenui.UI{Container: root}

	var (
		manager    panelManager
		group      *ui.PanelGroup
		categories []string
		show       []func()
	)
	switch w.Mode() {
	case system.ModeFurniture:
		m := ui.NewFurniturePanels(w.Placement)
		p.Furniture, manager, group, categories = m, m, m.Panels, ui.FurnitureCategories
		show = []func(){m.ShowChairs, m.ShowTables, m.ShowSofas}
	case system.ModeDecor:
		m := ui.NewDecorPanels(w.Placement)
		p.Decor, manager, group, categories = m, m, m.Panels, ui.DecorCategories
		show = []func(){m.ShowPaintings, m.ShowLamps, m.ShowDoorsWindows}
	default:
		return p
	}

	tabs := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(p.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, common.PanelBarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	root.AddChild(tabs)
	blocker.Track(tabs)

	for i, category := range categories {
		open := show[i]
		tabs.AddChild(p.button(tabLabel(category), func() {
			// a second press on the open tab closes it
			if group.Shown() == category {
				group.HideAll()
				return
			}
			open()
		}))

		panel := p.prefabPanel(w.Catalog.ByCategory(category), manager)
		root.AddChild(panel)
		blocker.Track(panel)
		group.Add(category, ui.NewWidgetPanel(panel))
	}
	return p
}

func (p *PanelsUI) prefabPanel(items []*prefabs.Placeable, manager panelManager) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(p.panelImg),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(4),
			widget.GridLayoutOpts.Spacing(8, 8),
			widget.GridLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.PanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: common.PanelBarHeight + 4},
			}),
		),
	)
	for _, item := range items {
		item := item
		panel.AddChild(p.button(item.Name, func() { manager.SelectObject(item) }))
	}
	return panel
}

func (p *PanelsUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(p.btnImage),
		widget.ButtonOpts.Text(label, &p.face, p.btnText),
		widget.ButtonOpts.TextPadding(&widget.Insets{Left: 10, Right: 10, Top: 4, Bottom: 4}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func tabLabel(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " & ")
}
