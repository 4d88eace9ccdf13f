// Package queries contains read-only operations over the order store.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and project rows into response structures, bypassing the
// domain repositories used by commands.
package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow mirrors the columns of the orders table for query-side scanning.
type orderRow struct {
	ID          uuid.UUID
	OrderNumber int64
	OrderDate   time.Time
	CreatedAt   time.Time
	OrderType   string
	Status      string
	CompletedAt *time.Time
}

// itemRow mirrors the columns of the order_items table.
type itemRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	MenuItemID *uuid.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Position   int
}

// historyRow mirrors the columns of the order_status_changes table.
type historyRow struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Status    string
	ChangedAt time.Time
}

// OrderFilters carries the optional search bounds shared by the order list
// and report queries. Status must be a recognized value when set; the order
// type and the time-of-day bounds are parsed leniently (unrecognized type
// falls back to dine-in, unparsable time bounds are treated as absent).
type OrderFilters struct {
	DateFrom  *kernel.Day
	DateTo    *kernel.Day
	TimeFrom  string
	TimeTo    string
	Status    string
	OrderType string
}

// parsedFilters is the validated form of OrderFilters used by handlers.
type parsedFilters struct {
	dateFrom  *kernel.Day
	dateTo    *kernel.Day
	timeFrom  *kernel.TimeOfDay
	timeTo    *kernel.TimeOfDay
	status    *order.Status
	orderType *order.Type
}

func parseFilters(f OrderFilters) (parsedFilters, error) {
	parsed := parsedFilters{
		dateFrom: f.DateFrom,
		dateTo:   f.DateTo,
	}

	if f.Status != "" {
		status, err := order.ParseStatus(f.Status)
		if err != nil {
			return parsedFilters{}, err
		}
		parsed.status = &status
	}

	if f.OrderType != "" {
		orderType := order.ParseType(f.OrderType)
		parsed.orderType = &orderType
	}

	if bound, err := kernel.ParseTimeOfDay(f.TimeFrom); err == nil {
		parsed.timeFrom = &bound
	}
	if bound, err := kernel.ParseTimeOfDay(f.TimeTo); err == nil {
		parsed.timeTo = &bound
	}

	return parsed, nil
}

// apply narrows the given orders query with every present filter. The
// time-of-day bounds compare only the time component of created_at, so a
// 09:00-11:00 window matches that window on every day in the date range.
func (f parsedFilters) apply(tx *gorm.DB) *gorm.DB {
	if f.dateFrom != nil {
		tx = tx.Where("order_date >= ?", f.dateFrom.Time())
	}
	if f.dateTo != nil {
		tx = tx.Where("order_date <= ?", f.dateTo.Time())
	}
	if f.timeFrom != nil {
		tx = tx.Where("created_at::time >= ?", f.timeFrom.String())
	}
	if f.timeTo != nil {
		tx = tx.Where("created_at::time <= ?", f.timeTo.String())
	}
	if f.status != nil {
		tx = tx.Where("status = ?", f.status.String())
	}
	if f.orderType != nil {
		tx = tx.Where("order_type = ?", f.orderType.String())
	}
	return tx
}

// loadItems fetches the order_items rows for the given order ids grouped by
// order id, each order's lines in the position they were placed.
func loadItems(tx *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]itemRow, error) {
	grouped := make(map[uuid.UUID][]itemRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var rows []itemRow
	if err := tx.Table("order_items").Where("order_id IN ?", orderIDs).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row)
	}
	return grouped, nil
}

func rowsToAggregate(row orderRow, items []itemRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	domainItems := make([]order.Item, 0, len(items))
	for _, it := range items {
		itemID, itemErr := kernel.UUIDFromBytes(it.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		var menuItemID *kernel.UUID
		if it.MenuItemID != nil {
			mID, menuErr := kernel.UUIDFromBytes((*it.MenuItemID)[:])
			if menuErr != nil {
				return nil, menuErr
			}
			menuItemID = &mID
		}

		item, itemErr := order.RestoreItem(itemID, menuItemID, it.Name, it.Price, it.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		domainItems = append(domainItems, item)
	}

	return order.RestoreOrder(
		id,
		row.OrderNumber,
		kernel.DayOf(row.OrderDate),
		row.CreatedAt,
		order.ParseType(row.OrderType),
		status,
		row.CompletedAt,
		domainItems,
		nil,
	)
}
