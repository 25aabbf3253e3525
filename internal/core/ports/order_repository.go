package ports

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate spans the order row, its details, and their translation
// operations; repositories load and store it as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// details and operations. A write that affects zero rows is reported as
	// a persistence error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with its
	// details and operations loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderDetailID retrieves the order aggregate owning the given detail.
	// Used by the offer-acceptance workflow, which addresses work by detail id.
	GetByOrderDetailID(ctx context.Context, detailID kernel.UUID) (*order.Order, error)

	// GetByTranslationOperationID retrieves the order aggregate owning the
	// detail bound to the given translation operation.
	GetByTranslationOperationID(ctx context.Context, operationID kernel.UUID) (*order.Order, error)
}
