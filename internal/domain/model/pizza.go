package model

import "time"

// Pizza is a catalog item customers order as the base of a line item.
// Removal is a soft availability toggle so historical orders keep resolving.
type Pizza struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Ingredients []string
	ImageURL    *string
	Available   bool
	CreatedAt   time.Time
}
