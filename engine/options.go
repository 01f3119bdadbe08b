package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/orbital/input"
)

// Option customizes a Controller at construction
type Option func(*Controller)

// WithClock sets the time source used for events without timestamps
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger replaces the component logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithKeyTable installs custom key bindings
func WithKeyTable(table *input.KeyTable) Option {
	return func(c *Controller) {
		c.nav.SetTable(table)
	}
}

// WithVisible sets the initial visibility of the surface; default is visible
func WithVisible(visible bool) Option {
	return func(c *Controller) {
		c.visible = visible
	}
}
