package registry

import "errors"

// ErrHubNotFound is returned when a hub id is not reported by the registry
var ErrHubNotFound = errors.New("hub not found")

// Hub is a primary destination shown on the ring
type Hub struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Icon   string `toml:"icon"`
	Target string `toml:"target"`
}

// Item is a sub-destination revealed when a hub expands
type Item struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Target string `toml:"target"`
}

// Action is a hub quick action
type Action struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// Registry is the external hub catalog collaborator
// The engine queries it fresh on every layout and expand; results are never cached across calls
type Registry interface {
	ActiveHubs() []Hub
	SubItems(hubID string) []Item
	QuickActions(hubID string) []Action
}

// Lookup finds a hub among the registry's active hubs
func Lookup(r Registry, hubID string) (Hub, bool) {
	for _, h := range r.ActiveHubs() {
		if h.ID == hubID {
			return h, true
		}
	}
	return Hub{}, false
}
