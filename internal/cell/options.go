package cell

import "github.com/google/uuid"

// Option configures a Cell at creation.
type Option func(*Cell)

// WithID sets the cell id. uuid.Nil is ignored.
func WithID(id uuid.UUID) Option {
	return func(c *Cell) {
		if id != uuid.Nil {
			c.id = id
		}
	}
}

// WithObserver registers an observer for commits and rejections.
func WithObserver(o Observer) Option {
	return func(c *Cell) {
		c.observer = o
	}
}
