package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler executes paginated order searches against the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order search queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the search and returns the requested page.
// The total element count covers the whole filtered set, not just the page,
// so callers can render page controls.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	// Session makes the filtered statement reusable for both the count and
	// the page fetch.
	base := query.filters.apply(h.db.WithContext(ctx).Table("orders")).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return PagedOrdersResponse{}, err
	}

	var rows []orderRow
	err := base.
		Order("order_date DESC, order_number DESC").
		Limit(query.size).
		Offset(query.page * query.size).
		Find(&rows).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	content, err := h.buildContent(ctx, rows)
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	totalPages := int(total) / query.size
	if int(total)%query.size != 0 {
		totalPages++
	}

	return PagedOrdersResponse{
		Content:       content,
		Page:          query.page,
		Size:          query.size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (h GetOrdersQueryHandler) buildContent(ctx context.Context, rows []orderRow) ([]OrderResponse, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	itemsByOrder, err := loadItems(h.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}

	content := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, buildErr := buildOrderResponse(row, itemsByOrder[row.ID])
		if buildErr != nil {
			return nil, buildErr
		}
		content = append(content, response)
	}
	return content, nil
}

func buildOrderResponse(row orderRow, items []itemRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	total := decimal.Zero
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		itemID, itemErr := kernel.UUIDFromBytes(it.ID[:])
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}

		var menuItemID *kernel.UUID
		if it.MenuItemID != nil {
			mID, menuErr := kernel.UUIDFromBytes((*it.MenuItemID)[:])
			if menuErr != nil {
				return OrderResponse{}, menuErr
			}
			menuItemID = &mID
		}

		itemResponses = append(itemResponses, OrderItemResponse{
			ID:         itemID,
			MenuItemID: menuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	return OrderResponse{
		ID:          id,
		Number:      row.OrderNumber,
		OrderDate:   kernel.DayOf(row.OrderDate),
		CreatedAt:   row.CreatedAt,
		CompletedAt: row.CompletedAt,
		OrderType:   row.OrderType,
		Status:      row.Status,
		Total:       total,
		Items:       itemResponses,
	}, nil
}
