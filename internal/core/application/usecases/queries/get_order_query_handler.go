package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with history from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle loads the order, its line items, and its history.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	rawID := query.orderID.Bytes()

	var row orderRow
	err := h.db.WithContext(ctx).Table("orders").Where("id = ?", rawID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundError("order", query.orderID.String())
		}
		return OrderDetailsResponse{}, err
	}

	itemsByOrder, err := loadItems(h.db.WithContext(ctx), []uuid.UUID{rawID})
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	response, err := buildOrderResponse(row, itemsByOrder[rawID])
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	var historyRows []historyRow
	err = h.db.WithContext(ctx).
		Table("order_status_changes").
		Where("order_id = ?", rawID).
		Order("changed_at ASC").
		Find(&historyRows).Error
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	history := make([]StatusChangeResponse, 0, len(historyRows))
	for _, change := range historyRows {
		changeID, idErr := kernel.UUIDFromBytes(change.ID[:])
		if idErr != nil {
			return OrderDetailsResponse{}, idErr
		}
		history = append(history, StatusChangeResponse{
			ID:        changeID,
			Status:    change.Status,
			ChangedAt: change.ChangedAt,
		})
	}

	return OrderDetailsResponse{
		OrderResponse: response,
		History:       history,
	}, nil
}
