package device

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/devices.yaml
var devicesYAML []byte

// DefaultTarget is the part reports are generated for when none is given.
const DefaultTarget = "STM32F446RC"

const kib = 1024

// Profile is the memory capacity of one target part.
type Profile struct {
	// Name is the canonical part number (e.g., "STM32F446RC")
	Name string `yaml:"name"`

	// Description is a short human-readable summary
	Description string `yaml:"description"`

	// Core is the CPU core (e.g., "cortex-m4")
	Core string `yaml:"core"`

	// FlashKiB and RAMKiB are the capacities as written in the catalog
	FlashKiB uint64 `yaml:"flash_kib"`
	RAMKiB   uint64 `yaml:"ram_kib"`

	// Aliases are ordering codes that map to this part (e.g., "STM32F446RCT6")
	Aliases []string `yaml:"aliases"`

	// FlashBytes and RAMBytes are derived from the KiB values on load
	FlashBytes uint64 `yaml:"-"`
	RAMBytes   uint64 `yaml:"-"`
}

// Catalog holds all known target profiles.
type Catalog struct {
	Profiles []*Profile

	// index maps upper-cased names and aliases to profiles
	index map[string]*Profile
}

type catalogContainer struct {
	Devices []*Profile `yaml:"devices"`
}

var (
	globalCatalog     *Catalog
	globalCatalogOnce sync.Once
	globalCatalogErr  error
)

// LoadCatalog loads the embedded device catalog. The catalog is parsed only
// once; later calls return the same instance.
func LoadCatalog() (*Catalog, error) {
	globalCatalogOnce.Do(func() {
		globalCatalog, globalCatalogErr = ParseCatalog(devicesYAML)
	})
	return globalCatalog, globalCatalogErr
}

// ParseCatalog builds a Catalog from YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var container catalogContainer
	if err := yaml.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("failed to parse device catalog: %w", err)
	}

	c := &Catalog{
		Profiles: container.Devices,
		index:    make(map[string]*Profile),
	}

	for _, p := range c.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("device catalog entry without a name")
		}
		if p.FlashKiB == 0 || p.RAMKiB == 0 {
			return nil, fmt.Errorf("device %s: flash_kib and ram_kib must be non-zero", p.Name)
		}
		p.FlashBytes = p.FlashKiB * kib
		p.RAMBytes = p.RAMKiB * kib

		for _, key := range append([]string{p.Name}, p.Aliases...) {
			key = normalize(key)
			if _, dup := c.index[key]; dup {
				return nil, fmt.Errorf("device catalog: duplicate name %q", key)
			}
			c.index[key] = p
		}
	}

	return c, nil
}

// Get retrieves a profile by part number or alias, ignoring case.
func (c *Catalog) Get(name string) (*Profile, bool) {
	p, ok := c.index[normalize(name)]
	return p, ok
}

// Lookup is Get that returns an UnknownTargetError for unknown names.
func (c *Catalog) Lookup(name string) (*Profile, error) {
	if p, ok := c.Get(name); ok {
		return p, nil
	}
	return nil, &UnknownTargetError{Name: name, Available: c.Names()}
}

// Names returns canonical part numbers in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// UnknownTargetError represents a target that is not in the catalog.
type UnknownTargetError struct {
	Name      string
	Available []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q (known targets: %s)",
		e.Name, strings.Join(e.Available, ", "))
}
