package counterrepo

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/keymutex"

	"gorm.io/gorm"
)

// GormDailyCounterRepository implements DailyCounterRepository using GORM.
// Reservation is a single upsert that runs inside the caller's transaction:
// the row lock it takes serializes writers across processes and holds until
// commit, so a rolled-back order creation releases its number. An in-process
// mutex keyed by the calendar date queues same-day callers before they reach
// that row lock.
type GormDailyCounterRepository struct {
	db    *gorm.DB
	locks *keymutex.KeyMutex
}

// NewGormDailyCounterRepository creates a new GORM daily counter repository.
// The key mutex registry should be shared by every repository instance issuing
// numbers against the same database.
func NewGormDailyCounterRepository(db *gorm.DB, locks *keymutex.KeyMutex) *GormDailyCounterRepository {
	return &GormDailyCounterRepository{
		db:    db,
		locks: locks,
	}
}

// NextNumber reserves and returns the next sequence number for the given day.
// The first caller of a day creates the counter row with number 1; every
// later caller increments it under the row lock. The insert and the
// increment are one atomic statement, so two transactions racing on the
// day's first order cannot abort each other: the loser of the insert race
// blocks on the winner's row and lands on the increment path once the winner
// commits, or inserts fresh if the winner rolled back.
func (r *GormDailyCounterRepository) NextNumber(ctx context.Context, day kernel.Day) (int64, error) {
	if err := day.Validate(); err != nil {
		return 0, err
	}

	key := day.String()
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	var number int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO daily_order_counters (counter_date, last_number)
		 VALUES (?, 1)
		 ON CONFLICT (counter_date) DO UPDATE
		 SET last_number = daily_order_counters.last_number + 1
		 RETURNING last_number`,
		day.Time(),
	).Scan(&number).Error
	if err != nil {
		return 0, err
	}

	return number, nil
}
