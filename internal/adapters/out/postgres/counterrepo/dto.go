// Package counterrepo persists the per-day order number counters.
// One row per calendar day holds the last issued receipt number; issuing the
// next number is a locked read-modify-write so concurrent order creation on
// the same day can never observe the same value.
package counterrepo

import (
	"time"
)

// DailyCounterDTO represents the database structure for a per-day counter row.
type DailyCounterDTO struct {
	CounterDate time.Time `gorm:"type:date;primaryKey"`
	LastNumber  int64     `gorm:"not null"`
}

// TableName specifies the database table name for counter rows.
func (DailyCounterDTO) TableName() string {
	return "daily_order_counters"
}
