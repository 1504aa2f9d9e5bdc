package model

import "time"

// Extra is an add-on catalog item priced per unit on top of a pizza.
type Extra struct {
	ID        string
	Name      string
	Price     float64
	Available bool
	CreatedAt time.Time
}
