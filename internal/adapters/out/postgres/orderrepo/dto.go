// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (order_date, order_number) pair carries a unique index: it is the
// receipt number customers see, and the database enforces that no two orders
// on the same day share one even if the counter discipline is ever bypassed.
type OrderDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderNumber int64             `gorm:"not null;uniqueIndex:idx_orders_date_number"`
	OrderDate   time.Time         `gorm:"type:date;not null;uniqueIndex:idx_orders_date_number;index"`
	CreatedAt   time.Time         `gorm:"not null"`
	OrderType   string            `gorm:"type:varchar(32);not null"`
	Status      string            `gorm:"type:varchar(32);not null;index"`
	CompletedAt *time.Time
	Items       []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. MenuItemID is nullable:
// the snapshot outlives the menu item it was taken from. Position is the
// line's place in the order as the customer placed it; all reads sort by it.
type OrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID *uuid.UUID      `gorm:"type:uuid;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	Position   int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one persisted status-change history row.
// History rows are only ever inserted, never updated or deleted.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for status change entities.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order row together with its line items and history rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		var menuItemID *uuid.UUID
		if id := item.MenuItemID(); id != nil {
			raw := id.Bytes()
			menuItemID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: menuItemID,
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
			Position:   position,
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			ID:        change.ID().Bytes(),
			OrderID:   orderID,
			Status:    change.Status().String(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.Number(),
		OrderDate:   aggregate.Date().Time(),
		CreatedAt:   aggregate.CreatedAt(),
		OrderType:   aggregate.Type().String(),
		Status:      aggregate.Status().String(),
		CompletedAt: aggregate.CompletedAt(),
		Items:       items,
		History:     history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := statusChangeToDomain(changeDTO)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		kernel.DayOf(dto.OrderDate),
		dto.CreatedAt,
		order.ParseType(dto.OrderType),
		status,
		dto.CompletedAt,
		items,
		history,
	)
}

// itemToDomain converts an order line DTO to its domain entity.
func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	var menuItemID *kernel.UUID
	if dto.MenuItemID != nil {
		mID, menuErr := kernel.UUIDFromBytes((*dto.MenuItemID)[:])
		if menuErr != nil {
			return order.Item{}, menuErr
		}
		menuItemID = &mID
	}

	return order.RestoreItem(id, menuItemID, dto.Name, dto.Price, dto.Quantity)
}

// statusChangeToDomain converts a history row DTO to its domain entity.
func statusChangeToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.RestoreStatusChange(id, orderID, status, dto.ChangedAt)
}
