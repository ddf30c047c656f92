package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Catalog files, relative to the prefabs directory.
const (
	FurnitureFile = "furniture.yaml"
	DecorFile     = "decor.yaml"
	PlantsFile    = "plants.yaml"
)

// CatalogFiles lists every file LoadCatalog reads.
var CatalogFiles = []string{FurnitureFile, DecorFile, PlantsFile}

// PlantCategory is the category the ambient plant spawner draws from.
const PlantCategory = "plants"

const defaultPickRadius = 0.25

var (
	ErrUnknownPrefab = errors.New("prefabs: unknown prefab")
	ErrDuplicateName = errors.New("prefabs: duplicate prefab name")
	ErrMissingName   = errors.New("prefabs: prefab without name")
)

// Placeable is a spawnable catalog entry. A nil *Placeable means "no prefab
// selected" and never spawns.
type Placeable struct {
	Name       string
	Category   string
	Class      PlacementClass
	Color      color.RGBA
	PickRadius float64
	Size       mgl64.Vec3
}

// IsWall reports whether the entry mounts on vertical surfaces.
func (p *Placeable) IsWall() bool {
	return p != nil && p.Class == ClassWall
}

// Catalog indexes placeables by lower-cased name and by category. It is safe
// to read from the frame loop while a reload swaps its contents.
type Catalog struct {
	mu         sync.RWMutex
	byName     map[string]*Placeable
	byCategory map[string][]*Placeable
	categories []string
}

// LoadCatalog reads every catalog file, preferring disk copies over the
// embedded ones.
func LoadCatalog() (*Catalog, error) {
	c := &Catalog{}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCatalog builds a catalog from already-decoded specs.
func NewCatalog(specs ...CatalogSpec) (*Catalog, error) {
	c := &Catalog{}
	if err := c.set(specs); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog files. On error the previous contents stay.
func (c *Catalog) Reload() error {
	if c == nil {
		return nil
	}
	specs := make([]CatalogSpec, 0, len(CatalogFiles))
	for _, name := range CatalogFiles {
		spec, err := LoadSpec[CatalogSpec](name)
		if err != nil {
			return err
		}
		if spec.Category == "" {
			spec.Category = strings.TrimSuffix(name, filepath.Ext(name))
		}
		specs = append(specs, spec)
	}
	if err := c.set(specs); err != nil {
		return err
	}
	log.Printf("prefabs: loaded %d placeables in %d categories", c.Len(), len(c.Categories()))
	return nil
}

func (c *Catalog) set(specs []CatalogSpec) error {
	byName := make(map[string]*Placeable)
	byCategory := make(map[string][]*Placeable)
	var categories []string

	for _, file := range specs {
		for _, item := range file.Items {
			p, err := item.placeable(file.Category)
			if err != nil {
				return err
			}
			key := strings.ToLower(p.Name)
			if _, dup := byName[key]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
			}
			byName[key] = p
			if _, seen := byCategory[p.Category]; !seen {
				categories = append(categories, p.Category)
			}
			byCategory[p.Category] = append(byCategory[p.Category], p)
		}
	}

	c.mu.Lock()
	c.byName = byName
	c.byCategory = byCategory
	c.categories = categories
	c.mu.Unlock()
	return nil
}

func (s PlaceableSpec) placeable(fileCategory string) (*Placeable, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	category := s.Category
	if category == "" {
		category = fileCategory
	}
	radius := s.PickRadius
	if radius <= 0 {
		radius = defaultPickRadius
	}
	size := mgl64.Vec3(s.Size)
	if size == (mgl64.Vec3{}) {
		size = mgl64.Vec3{radius * 2, radius * 2, radius * 2}
	}
	return &Placeable{
		Name:       name,
		Category:   category,
		Class:      s.Class,
		Color:      s.Color.RGBA8(),
		PickRadius: radius,
		Size:       size,
	}, nil
}

// Lookup finds a placeable by name, ignoring case.
func (c *Catalog) Lookup(name string) (*Placeable, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrefab, name)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrefab, name)
	}
	return p, nil
}

// ByCategory returns the entries of a category in file order.
func (c *Catalog) ByCategory(category string) []*Placeable {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Placeable(nil), c.byCategory[category]...)
}

// Categories returns category names in load order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.categories...)
}

// Plants returns the plant list used by the ambient spawner.
func (c *Catalog) Plants() []*Placeable {
	return c.ByCategory(PlantCategory)
}

// Names returns every entry name, sorted.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.byName))
	for _, p := range c.byName {
		out = append(out, p.Name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// IsCatalogFile reports whether path names one of the catalog files.
func IsCatalogFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range CatalogFiles {
		if strings.EqualFold(base, name) {
			return true
		}
	}
	return false
}
