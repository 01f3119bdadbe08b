package registry

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

// HubEntry is one hub with its disclosure content as stored in a catalog file
type HubEntry struct {
	Hub
	Disabled bool     `toml:"disabled"`
	Items    []Item   `toml:"items"`
	Actions  []Action `toml:"actions"`
}

// catalogFile is the TOML document layout
type catalogFile struct {
	Hubs []HubEntry `toml:"hubs"`
}

// Catalog is an in-memory Registry backed by a TOML document
// Safe for concurrent use; hosts may toggle hubs while the engine reads
type Catalog struct {
	mu      sync.RWMutex
	entries []HubEntry
}

// NewCatalog builds a catalog from entries, preserving order
func NewCatalog(entries ...HubEntry) *Catalog {
	c := &Catalog{entries: make([]HubEntry, len(entries))}
	copy(c.entries, entries)
	return c
}

// ParseCatalog decodes catalog TOML and validates ids
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Hubs))
	for i, h := range f.Hubs {
		if h.ID == "" {
			return nil, fmt.Errorf("catalog hub %d: missing id", i)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("catalog hub %q: duplicate id", h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return NewCatalog(f.Hubs...), nil
}

// LoadCatalog reads and parses a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ActiveHubs returns enabled hubs in catalog order
func (c *Catalog) ActiveHubs() []Hub {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hubs := make([]Hub, 0, len(c.entries))
	for _, e := range c.entries {
		if !e.Disabled {
			hubs = append(hubs, e.Hub)
		}
	}
	return hubs
}

// SubItems returns a copy of the hub's sub-items, nil for unknown or disabled hubs
func (c *Catalog) SubItems(hubID string) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.find(hubID); ok {
		return append([]Item(nil), e.Items...)
	}
	return nil
}

// QuickActions returns a copy of the hub's quick actions
func (c *Catalog) QuickActions(hubID string) []Action {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.find(hubID); ok {
		return append([]Action(nil), e.Actions...)
	}
	return nil
}

// SetDisabled hides or restores a hub, simulating a context change
func (c *Catalog) SetDisabled(hubID string, disabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == hubID {
			c.entries[i].Disabled = disabled
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHubNotFound, hubID)
}

func (c *Catalog) find(hubID string) (HubEntry, bool) {
	for _, e := range c.entries {
		if e.ID == hubID && !e.Disabled {
			return e, true
		}
	}
	return HubEntry{}, false
}
