// Package menurepo provides read access to the menu catalog table.
// Menu administration lives elsewhere; this adapter only loads items for
// order validation and snapshotting.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure of a menu catalog row.
type MenuItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	NameEn        string          `gorm:"type:varchar(255)"`
	Description   string          `gorm:"type:text"`
	DescriptionEn string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category      string          `gorm:"type:varchar(64);index"`
	ImageURL      string          `gorm:"type:text"`
	Active        bool            `gorm:"not null;default:true;index"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// toDomain converts a database DTO to the menu item read model.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(
		id,
		menu.NewLocalizedText(dto.Name, dto.NameEn),
		menu.NewLocalizedText(dto.Description, dto.DescriptionEn),
		dto.Price,
		dto.Category,
		dto.ImageURL,
		dto.Active,
	)
}
