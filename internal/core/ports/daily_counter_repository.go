package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// DailyCounterRepository issues the per-day sequence numbers printed on
// customer receipts. Numbers for a given day start at 1 and are strictly
// increasing with no gaps or duplicates under concurrent order creation.
type DailyCounterRepository interface {
	// NextNumber reserves and returns the next sequence number for the given
	// day. It must run inside the transaction that creates the order, so the
	// reservation rolls back together with a failed creation and the sequence
	// stays gapless.
	NextNumber(ctx context.Context, day kernel.Day) (int64, error)
}
