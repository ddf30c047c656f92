package ui

import "github.com/milk9111/arplace/prefabs"

// Panel names.
const (
	PanelChairs       = "chairs"
	PanelTables       = "tables"
	PanelSofas        = "sofas"
	PanelPaintings    = "paintings"
	PanelLamps        = "lamps"
	PanelDoorsWindows = "doors_windows"
)

// FurnitureCategories and DecorCategories are the panel sets of the two
// managers, in display order.
var (
	FurnitureCategories = []string{PanelChairs, PanelTables, PanelSofas}
	DecorCategories     = []string{PanelPaintings, PanelLamps, PanelDoorsWindows}
)

// PrefabSelector receives the catalog entry a panel button picked.
type PrefabSelector interface {
	SetSelectedPrefab(p *prefabs.Placeable)
}

// SelectionManager forwards picks from its panels to one controller.
type SelectionManager struct {
	Panels   *PanelGroup
	selector PrefabSelector
}

// SelectObject makes p the controller's spawn prefab. No validation is done;
// a nil p clears it.
func (m *SelectionManager) SelectObject(p *prefabs.Placeable) {
	if m == nil || m.selector == nil {
		return
	}
	m.selector.SetSelectedPrefab(p)
}

// Bind points the manager at a controller.
func (m *SelectionManager) Bind(selector PrefabSelector) {
	if m == nil {
		return
	}
	m.selector = selector
}

// FurniturePanels switches between the chairs, tables and sofas panels.
type FurniturePanels struct {
	SelectionManager
}

func NewFurniturePanels(selector PrefabSelector) *FurniturePanels {
	return &FurniturePanels{SelectionManager{Panels: NewPanelGroup(), selector: selector}}
}

func (m *FurniturePanels) ShowChairs() { m.Panels.Show(PanelChairs) }
func (m *FurniturePanels) ShowTables() { m.Panels.Show(PanelTables) }
func (m *FurniturePanels) ShowSofas()  { m.Panels.Show(PanelSofas) }

// DecorPanels switches between the paintings, lamps and doors & windows
// panels.
type DecorPanels struct {
	SelectionManager
}

func NewDecorPanels(selector PrefabSelector) *DecorPanels {
	return &DecorPanels{SelectionManager{Panels: NewPanelGroup(), selector: selector}}
}

func (m *DecorPanels) ShowPaintings()    { m.Panels.Show(PanelPaintings) }
func (m *DecorPanels) ShowLamps()        { m.Panels.Show(PanelLamps) }
func (m *DecorPanels) ShowDoorsWindows() { m.Panels.Show(PanelDoorsWindows) }
