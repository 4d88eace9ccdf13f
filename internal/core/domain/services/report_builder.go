package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ReportPeriod describes the range a report was requested for. The date
// bounds are informational only (the store already filtered by date); the
// time-of-day bounds are re-applied by the builder against each order's
// creation time. Unparsable time bounds are treated as absent, never as
// errors, so a sloppy client input degrades to an unfiltered report.
type ReportPeriod struct {
	DateFrom *kernel.Day
	DateTo   *kernel.Day
	TimeFrom string
	TimeTo   string
}

// ReportRow is one order flattened for rendering. Monetary values carry
// exactly two decimal digits; ServiceTime is "-" when the order has no
// defined service duration.
type ReportRow struct {
	Number      int64
	CreatedAt   time.Time
	CompletedAt *time.Time
	Type        string
	Status      string
	Items       string
	Total       string
	ServiceTime string
}

// ReportStats summarizes the rows of a report. BestSellingItem is the item
// name with the highest summed quantity across all rows ("-" when the report
// is empty); AverageServiceTime averages only orders with a defined duration
// and is "-" when no order has one.
type ReportStats struct {
	OrderCount         int
	BestSellingItem    string
	TotalValue         string
	AverageOrderValue  string
	AverageServiceTime string
}

// Report is the complete shaped result handed to a renderer: range labels,
// one row per order, and the statistics summary.
type Report struct {
	DateRangeLabel string
	TimeRangeLabel string
	Rows           []ReportRow
	Stats          ReportStats
}

// ReportBuilder shapes orders into a Report. It is stateless and safe for
// concurrent use.
type ReportBuilder struct{}

// NewReportBuilder creates a new ReportBuilder instance.
func NewReportBuilder() ReportBuilder {
	return ReportBuilder{}
}

// Build produces the report for the given orders and period. The time-of-day
// bounds in the period are applied against each order's creation timestamp
// (inclusive on both ends), matching that window on every day in the date
// range. Rows keep the order the caller provided.
func (b ReportBuilder) Build(orders []*order.Order, period ReportPeriod) Report {
	filtered := b.filterByTimeOfDay(orders, period)

	rows := make([]ReportRow, 0, len(filtered))
	for _, o := range filtered {
		rows = append(rows, b.buildRow(o))
	}

	return Report{
		DateRangeLabel: rangeLabel(dayLabel(period.DateFrom), dayLabel(period.DateTo)),
		TimeRangeLabel: rangeLabel(timeLabel(period.TimeFrom), timeLabel(period.TimeTo)),
		Rows:           rows,
		Stats:          b.buildStats(filtered),
	}
}

func (b ReportBuilder) filterByTimeOfDay(orders []*order.Order, period ReportPeriod) []*order.Order {
	from, hasFrom := parseBound(period.TimeFrom)
	to, hasTo := parseBound(period.TimeTo)
	if !hasFrom && !hasTo {
		return orders
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		createdAt := kernel.TimeOfDayOf(o.CreatedAt())
		if hasFrom && createdAt.Before(from) {
			continue
		}
		if hasTo && createdAt.After(to) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func (b ReportBuilder) buildRow(o *order.Order) ReportRow {
	names := make([]string, 0, len(o.Items()))
	for _, item := range o.Items() {
		names = append(names, fmt.Sprintf("%s x %d (%s)", item.Name(), item.Quantity(), item.Price().StringFixed(2)))
	}

	serviceTime := "-"
	if duration, ok := o.ServiceDuration(); ok {
		serviceTime = formatDuration(duration)
	}

	return ReportRow{
		Number:      o.Number(),
		CreatedAt:   o.CreatedAt(),
		CompletedAt: o.CompletedAt(),
		Type:        o.Type().String(),
		Status:      o.Status().String(),
		Items:       strings.Join(names, ", "),
		Total:       o.Total().StringFixed(2),
		ServiceTime: serviceTime,
	}
}

func (b ReportBuilder) buildStats(orders []*order.Order) ReportStats {
	stats := ReportStats{
		OrderCount:         len(orders),
		BestSellingItem:    "-",
		TotalValue:         decimal.Zero.StringFixed(2),
		AverageOrderValue:  "-",
		AverageServiceTime: "-",
	}
	if len(orders) == 0 {
		return stats
	}

	total := decimal.Zero
	quantities := map[string]int{}
	var durationSeconds []float64
	for _, o := range orders {
		total = total.Add(o.Total())
		for _, item := range o.Items() {
			quantities[item.Name()] += item.Quantity()
		}
		if duration, ok := o.ServiceDuration(); ok {
			durationSeconds = append(durationSeconds, duration.Seconds())
		}
	}

	stats.TotalValue = total.StringFixed(2)
	stats.AverageOrderValue = total.Div(decimal.NewFromInt(int64(len(orders)))).StringFixed(2)
	stats.BestSellingItem = bestSeller(quantities)

	if len(durationSeconds) > 0 {
		sum := 0.0
		for _, s := range durationSeconds {
			sum += s
		}
		avg := time.Duration(math.Round(sum/float64(len(durationSeconds)))) * time.Second
		stats.AverageServiceTime = formatDuration(avg)
	}

	return stats
}

// bestSeller picks the item name with the highest summed quantity. Ties are
// broken by name so identical inputs always yield the same answer.
func bestSeller(quantities map[string]int) string {
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)

	best := "-"
	bestQuantity := 0
	for _, name := range names {
		if quantities[name] > bestQuantity {
			best = name
			bestQuantity = quantities[name]
		}
	}
	return best
}

func formatDuration(d time.Duration) string {
	seconds := int64(d.Seconds())
	return fmt.Sprintf("%d min %02d s", seconds/60, seconds%60)
}

func parseBound(value string) (kernel.TimeOfDay, bool) {
	if strings.TrimSpace(value) == "" {
		return kernel.TimeOfDay{}, false
	}
	bound, err := kernel.ParseTimeOfDay(value)
	if err != nil {
		return kernel.TimeOfDay{}, false
	}
	return bound, true
}

func dayLabel(day *kernel.Day) string {
	if day == nil {
		return ""
	}
	return day.String()
}

func timeLabel(value string) string {
	bound, ok := parseBound(value)
	if !ok {
		return ""
	}
	return bound.String()
}

func rangeLabel(from, to string) string {
	if from == "" && to == "" {
		return "-"
	}
	return fmt.Sprintf("%s - %s", from, to)
}
