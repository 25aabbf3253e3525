package queries

import (
	"context"
	"database/sql"
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order with its details directly from
// the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns a not found error when no order exists
// under the given id.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var resp GetOrderByIDQueryResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			calculated_price,
			vat_price,
			delivery_estimate,
			active
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &status, &resp.CalculatedPrice, &resp.VatPrice, &resp.PotentialDeliveryDate, &resp.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderByIDQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	details, err := h.loadDetails(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.Details = details

	return resp, nil
}

func (h GetOrderByIDQueryHandler) loadDetails(
	ctx context.Context, orderID kernel.UUID,
) ([]OrderDetailResponse, error) {
	details := make([]OrderDetailResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			op.id,
			op.progress_status,
			d.translator_offered_price,
			d.translator_accepted_price
		FROM order_details d
		JOIN translation_operations op ON op.order_detail_id = d.id
		WHERE d.order_id = ?
		ORDER BY d.created_at, d.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail OrderDetailResponse
		var detailID, operationID uuid.UUID
		var progressStatus int

		err = rows.Scan(
			&detailID,
			&operationID,
			&progressStatus,
			&detail.TranslatorOfferedPrice,
			&detail.TranslatorAcceptedPrice,
		)
		if err != nil {
			return nil, err
		}

		detail.ID, err = kernel.UUIDFromBytes(detailID[:])
		if err != nil {
			return nil, err
		}
		detail.TranslationOperationID, err = kernel.UUIDFromBytes(operationID[:])
		if err != nil {
			return nil, err
		}
		detail.ProgressStatus = order.ProgressStatus(progressStatus).String()

		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
