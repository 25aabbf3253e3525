package queries

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetResponsePendingOrdersQueryHandler retrieves active orders with operations
// still open for offers, omitting orders whose pipeline has started everywhere.
type GetResponsePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetResponsePendingOrdersQueryHandler creates a handler for response
// pending order queries. Requires a GORM database connection.
func NewGetResponsePendingOrdersQueryHandler(db *gorm.DB) GetResponsePendingOrdersQueryHandler {
	return GetResponsePendingOrdersQueryHandler{db: db}
}

// Handle executes the query. An order qualifies when it is active and at least
// one of its translation operations is active and still open.
// Results are sorted by order ID for consistent output.
func (h GetResponsePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetResponsePendingOrdersQuery,
) ([]GetResponsePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetResponsePendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.translation_quality_id,
			o.calculated_price,
			o.delivery_estimate,
			COUNT(op.id)
		FROM orders o
		JOIN order_details d ON d.order_id = o.id
		JOIN translation_operations op ON op.order_detail_id = d.id
		WHERE o.active = true
		  AND op.operation_status = ?
		  AND op.progress_status = ?
		GROUP BY o.id, o.translation_quality_id, o.calculated_price, o.delivery_estimate
		ORDER BY o.id
	`, order.OperationActive, order.Open).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetResponsePendingOrdersQueryResponse
		var id, qualityID uuid.UUID

		err = rows.Scan(
			&id,
			&qualityID,
			&resp.CalculatedPrice,
			&resp.PotentialDeliveryDate,
			&resp.OpenOperationCount,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.TranslationQualityID, err = kernel.UUIDFromBytes(qualityID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
