package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Pagination bounds for the order search. Out-of-range requests are clamped,
// never rejected: a negative page becomes 0, a non-positive size becomes the
// default, and an oversized page is capped.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery is a paginated search over the order history.
//
// Example:
//
//	query, err := NewGetOrdersQuery(OrderFilters{Status: "Completed"}, 0, 50)
//	if err != nil {
//	    return fmt.Errorf("invalid search filters: %w", err)
//	}
//
//	page, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order search failed: %w", err)
//	}
//	fmt.Printf("%d orders matched\n", page.TotalElements)
type GetOrdersQuery struct {
	filters parsedFilters
	page    int
	size    int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order search query.
// Rejects an unrecognized status filter; every other out-of-range input is
// normalized instead (see the pagination constants and OrderFilters).
func NewGetOrdersQuery(filters OrderFilters, page, size int) (GetOrdersQuery, error) {
	parsed, err := parseFilters(filters)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return GetOrdersQuery{
		filters: parsed,
		page:    page,
		size:    size,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page index.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersQuery) Size() int {
	return q.size
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID *kernel.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// OrderResponse is one order in a query response, with its line items and
// the precomputed total.
type OrderResponse struct {
	ID          kernel.UUID
	Number      int64
	OrderDate   kernel.Day
	CreatedAt   time.Time
	CompletedAt *time.Time
	OrderType   string
	Status      string
	Total       decimal.Decimal
	Items       []OrderItemResponse
}

// PagedOrdersResponse is one page of an order search result. Content is
// sorted by order date descending, ties broken by order number descending,
// so repeated identical queries over unchanged data page identically.
type PagedOrdersResponse struct {
	Content       []OrderResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
