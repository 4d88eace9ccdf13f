package queries

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// DefaultSnapshotTTL is the freshness window of the active-orders snapshot.
// Displays poll every second or so; serving a couple-of-seconds-old snapshot
// is fine, hitting the database on every poll is not.
const DefaultSnapshotTTL = 2 * time.Second

// GetActiveOrdersQueryHandler serves the active-orders snapshot from a small
// in-memory cache. A snapshot older than the TTL (or explicitly invalidated
// by a command handler) is recomputed from the database; concurrent stale
// reads converge on a single recompute via singleflight, the rest wait for
// its result. A failed recompute propagates to every waiter rather than
// caching an empty snapshot as if it were valid.
//
// The handler must be shared as a single instance: its cache and its
// Invalidate method only work across callers when they all hold the same
// handler.
type GetActiveOrdersQueryHandler struct {
	db  *gorm.DB
	ttl time.Duration

	group singleflight.Group

	mu         sync.RWMutex
	snapshot   ActiveOrdersSnapshot
	computedAt time.Time
	generation uint64
}

// NewGetActiveOrdersQueryHandler creates a handler for active-orders queries.
// A non-positive ttl falls back to DefaultSnapshotTTL.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, ttl time.Duration) *GetActiveOrdersQueryHandler {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &GetActiveOrdersQueryHandler{
		db:  db,
		ttl: ttl,
	}
}

// Handle returns the current active-orders snapshot, recomputing it when the
// cached one is stale or invalidated.
func (h *GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) (ActiveOrdersSnapshot, error) {
	if err := query.Validate(); err != nil {
		return ActiveOrdersSnapshot{}, err
	}

	if snapshot, ok := h.fresh(); ok {
		return snapshot, nil
	}

	result, err, _ := h.group.Do("active-orders", func() (any, error) {
		// A waiter that lost the race re-checks instead of recomputing.
		if snapshot, ok := h.fresh(); ok {
			return snapshot, nil
		}

		for {
			h.mu.RLock()
			generation := h.generation
			h.mu.RUnlock()

			snapshot, err := h.compute(ctx)
			if err != nil {
				return nil, err
			}

			// An Invalidate that landed while computing means the result may
			// predate the mutation that triggered it. Recompute instead of
			// caching it.
			h.mu.Lock()
			if h.generation != generation {
				h.mu.Unlock()
				continue
			}
			h.snapshot = snapshot
			h.computedAt = time.Now()
			h.mu.Unlock()

			return snapshot, nil
		}
	})
	if err != nil {
		return ActiveOrdersSnapshot{}, err
	}

	return result.(ActiveOrdersSnapshot), nil
}

// Invalidate marks the cached snapshot stale so the next Handle call
// recomputes regardless of its age. Command handlers call this after every
// successful order creation or status change.
func (h *GetActiveOrdersQueryHandler) Invalidate() {
	h.mu.Lock()
	h.computedAt = time.Time{}
	h.generation++
	h.mu.Unlock()
}

func (h *GetActiveOrdersQueryHandler) fresh() (ActiveOrdersSnapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.computedAt.IsZero() || time.Since(h.computedAt) >= h.ttl {
		return ActiveOrdersSnapshot{}, false
	}
	return h.snapshot, true
}

// compute queries the on-screen orders oldest first and derives the
// consistency token over their identifying fields.
func (h *GetActiveOrdersQueryHandler) compute(ctx context.Context) (ActiveOrdersSnapshot, error) {
	statuses := make([]string, 0, len(order.OnScreenStatuses()))
	for _, status := range order.OnScreenStatuses() {
		statuses = append(statuses, status.String())
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("status IN ?", statuses).
		Order("order_date ASC, order_number ASC").
		Find(&rows).Error
	if err != nil {
		return ActiveOrdersSnapshot{}, err
	}

	views := make([]ActiveOrderView, 0, len(rows))
	canonical := make([]string, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ActiveOrdersSnapshot{}, idErr
		}

		views = append(views, ActiveOrderView{
			ID:     id,
			Number: row.OrderNumber,
			Status: row.Status,
		})

		completedAt := ""
		if row.CompletedAt != nil {
			completedAt = row.CompletedAt.UTC().Format(time.RFC3339Nano)
		}
		canonical = append(canonical, fmt.Sprintf(
			"%s|%d|%s|%s|%s",
			id, row.OrderNumber, row.Status, completedAt, row.CreatedAt.UTC().Format(time.RFC3339Nano),
		))
	}

	digest := sha256.Sum256([]byte(strings.Join(canonical, "\n")))

	return ActiveOrdersSnapshot{
		Orders:           views,
		ConsistencyToken: hex.EncodeToString(digest[:]),
	}, nil
}
