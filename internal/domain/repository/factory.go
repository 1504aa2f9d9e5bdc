package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Catalog() CatalogRepository
	Users() UserRepository
	Orders() OrderRepository
}

// UnitOfWork runs fn with repositories bound to one atomic transaction when
// the backing store supports it. When transaction blocks are unavailable in
// the current deployment the same sequence runs without wrapping; the call
// still succeeds but loses atomicity.
type UnitOfWork interface {
	WithinUnitOfWork(ctx context.Context, fn func(repos Factory) error) error
}
