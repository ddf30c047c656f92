// Package ui holds the catalog panel managers: groups of panels of which at
// most one is visible, and the forwarding of a picked catalog entry to a
// placement controller.
package ui

import "strings"

// Panel is anything that can be shown or hidden.
type Panel interface {
	SetVisible(visible bool)
	Visible() bool
}

// PanelGroup is a fixed, ordered set of named panels.
type PanelGroup struct {
	names  []string
	panels map[string]Panel
	shown  string
}

// NewPanelGroup returns an empty group.
func NewPanelGroup() *PanelGroup {
	return &PanelGroup{panels: map[string]Panel{}}
}

// Add registers p under name and hides it. Re-adding a name replaces the
// panel in place.
func (g *PanelGroup) Add(name string, p Panel) {
	if g == nil || p == nil {
		return
	}
	key := strings.ToLower(name)
	if _, ok := g.panels[key]; !ok {
		g.names = append(g.names, key)
	}
	g.panels[key] = p
	p.SetVisible(false)
	if g.shown == key {
		g.shown = ""
	}
}

// Show makes the named panel the only visible one. Unknown names change
// nothing and return false.
func (g *PanelGroup) Show(name string) bool {
	if g == nil {
		return false
	}
	key := strings.ToLower(name)
	if _, ok := g.panels[key]; !ok {
		return false
	}
	for _, n := range g.names {
		g.panels[n].SetVisible(n == key)
	}
	g.shown = key
	return true
}

// HideAll hides every panel.
func (g *PanelGroup) HideAll() {
	if g == nil {
		return
	}
	for _, n := range g.names {
		g.panels[n].SetVisible(false)
	}
	g.shown = ""
}

// Shown returns the visible panel's name, or "".
func (g *PanelGroup) Shown() string {
	if g == nil {
		return ""
	}
	return g.shown
}

// Names returns panel names in registration order.
func (g *PanelGroup) Names() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.names...)
}

// Panel returns the named panel.
func (g *PanelGroup) Panel(name string) (Panel, bool) {
	if g == nil {
		return nil, false
	}
	p, ok := g.panels[strings.ToLower(name)]
	return p, ok
}
