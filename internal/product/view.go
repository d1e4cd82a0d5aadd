package product

import (
	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"
)

// Priced is a product with the price derived from the current rate.
// Breakdown is nil when no rate exists for the product's instrument.
type Priced struct {
	domain.Product
	Breakdown *pricing.Breakdown
}

// Lookup is the result of a get by id: either the product itself or,
// when the id names a category, the products filed under it.
type Lookup struct {
	Product    *Priced
	InCategory []Priced
}
