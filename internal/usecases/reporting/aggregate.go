package reporting

import (
	"sort"

	unleasheddomain "github.com/arizon-automation/sales-dashboard/infrastructure/integrator/unleashed/domain"
	"github.com/arizon-automation/sales-dashboard/internal/domain"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

// TopLimit bounds every top list and growth/decline split.
const TopLimit = 10

// ExcludeCustomers drops orders whose customer code is in the exclusion
// set. Runs before any aggregation.
func ExcludeCustomers(orders []unleasheddomain.Order, excluded []string) []unleasheddomain.Order {
	if len(excluded) == 0 {
		return orders
	}

	set := toSet(excluded)
	kept := make([]unleasheddomain.Order, 0, len(orders))
	for _, order := range orders {
		if _, ok := set[order.CustomerCode()]; ok {
			continue
		}
		kept = append(kept, order)
	}

	return kept
}

// ExcludeCreditNoteCustomers drops credit notes whose customer code is
// in the exclusion set.
func ExcludeCreditNoteCustomers(notes []unleasheddomain.CreditNote, excluded []string) []unleasheddomain.CreditNote {
	if len(excluded) == 0 {
		return notes
	}

	set := toSet(excluded)
	kept := make([]unleasheddomain.CreditNote, 0, len(notes))
	for _, note := range notes {
		if _, ok := set[note.CustomerCode()]; ok {
			continue
		}
		kept = append(kept, note)
	}

	return kept
}

// TotalSales sums the pre-tax subtotal across all orders.
func TotalSales(orders []unleasheddomain.Order) float64 {
	var total float64
	for _, order := range orders {
		total += order.SubTotal
	}
	return total
}

// TotalCreditNotes sums the pre-tax subtotal across all credit notes.
func TotalCreditNotes(notes []unleasheddomain.CreditNote) float64 {
	var total float64
	for _, note := range notes {
		total += note.SubTotal
	}
	return total
}

// TopCustomers groups orders by customer code and returns the top
// customers by summed revenue. Ties keep first-appearance order.
func TopCustomers(orders []unleasheddomain.Order, limit int) []domain.CustomerRow {
	byCode := map[string]*domain.CustomerRow{}
	var codes []string

	for _, order := range orders {
		code := order.CustomerCode()
		row, ok := byCode[code]
		if !ok {
			row = &domain.CustomerRow{Code: code, Name: order.CustomerName()}
			byCode[code] = row
			codes = append(codes, code)
		}
		row.Revenue += order.SubTotal
		row.Orders++
	}

	rows := make([]domain.CustomerRow, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, *byCode[code])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	return truncateCustomers(rows, limit)
}

// TopProducts groups order lines by product code and returns the top
// products by summed line revenue.
func TopProducts(orders []unleasheddomain.Order, limit int) []domain.ProductRow {
	byCode := map[string]*domain.ProductRow{}
	var codes []string

	for _, order := range orders {
		for _, line := range order.SalesOrderLines {
			code := line.ProductCode()
			row, ok := byCode[code]
			if !ok {
				row = &domain.ProductRow{Code: code, Description: line.ProductDescription()}
				byCode[code] = row
				codes = append(codes, code)
			}
			row.Revenue += line.LineTotal
			row.Quantity += line.OrderQuantity
		}
	}

	rows := make([]domain.ProductRow, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, *byCode[code])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	return truncateProducts(rows, limit)
}

// TopProductsByMargin aggregates gross margin per product. Unit cost
// falls back from the line's own cost, to the line's product purchase
// price, to its average landed price, to the catalog cost index, to 0.
func TopProductsByMargin(orders []unleasheddomain.Order, catalog []unleasheddomain.Product, limit int) []domain.MarginRow {
	costIndex := map[string]float64{}
	for _, product := range catalog {
		costIndex[product.ProductCode] = product.DefaultPurchasePrice
	}

	byCode := map[string]*domain.MarginRow{}
	var codes []string

	for _, order := range orders {
		for _, line := range order.SalesOrderLines {
			code := line.ProductCode()
			row, ok := byCode[code]
			if !ok {
				row = &domain.MarginRow{Code: code, Description: line.ProductDescription()}
				byCode[code] = row
				codes = append(codes, code)
			}

			cost := unitCost(line, costIndex)
			row.Margin += line.LineTotal - line.OrderQuantity*cost
			row.Revenue += line.LineTotal
		}
	}

	rows := make([]domain.MarginRow, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, *byCode[code])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Margin > rows[j].Margin
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func unitCost(line unleasheddomain.SalesOrderLine, costIndex map[string]float64) float64 {
	if line.AverageLandedPriceAtTimeOfSale != nil && *line.AverageLandedPriceAtTimeOfSale > 0 {
		return *line.AverageLandedPriceAtTimeOfSale
	}
	if line.Product != nil {
		if line.Product.DefaultPurchasePrice > 0 {
			return line.Product.DefaultPurchasePrice
		}
		if line.Product.AverageLandPrice > 0 {
			return line.Product.AverageLandPrice
		}
	}
	if cost, ok := costIndex[line.ProductCode()]; ok && cost > 0 {
		return cost
	}
	return 0
}

// CompareCustomers unions customer codes across both windows, zero
// filling the side a customer is absent from, sorted by current revenue.
func CompareCustomers(current, previous []unleasheddomain.Order) []domain.ComparisonRow {
	currentRows := customerRevenue(current)
	previousRows := customerRevenue(previous)

	return compare(currentRows, previousRows)
}

// CompareProducts is CompareCustomers at the order-line level, keyed by
// product code.
func CompareProducts(current, previous []unleasheddomain.Order) []domain.ComparisonRow {
	currentRows := productRevenue(current)
	previousRows := productRevenue(previous)

	return compare(currentRows, previousRows)
}

// GrowthDecline splits a comparison into the biggest absolute gains and
// the biggest absolute drops, each bounded by limit.
func GrowthDecline(rows []domain.ComparisonRow, limit int) (growing, declining []domain.ComparisonRow) {
	growing = make([]domain.ComparisonRow, len(rows))
	copy(growing, rows)
	sort.SliceStable(growing, func(i, j int) bool {
		return growing[i].Change > growing[j].Change
	})

	declining = make([]domain.ComparisonRow, len(rows))
	copy(declining, rows)
	sort.SliceStable(declining, func(i, j int) bool {
		return declining[i].Change < declining[j].Change
	})

	if limit > 0 && len(growing) > limit {
		growing = growing[:limit]
	}
	if limit > 0 && len(declining) > limit {
		declining = declining[:limit]
	}

	return growing, declining
}

// CompareSalesPersons compares revenue and order counts per salesperson
// across both windows. Orders without a salesperson are skipped. The
// names map resolves a missing name by salesperson id.
func CompareSalesPersons(current, previous []unleasheddomain.Order, names map[string]string) []domain.SalespersonComparisonRow {
	type bucket struct {
		name    string
		revenue float64
		orders  int
	}

	collect := func(orders []unleasheddomain.Order) (map[string]*bucket, []string) {
		buckets := map[string]*bucket{}
		var ids []string
		for _, order := range orders {
			if order.SalesPerson == nil || order.SalesPerson.Guid == "" {
				continue
			}

			id := order.SalesPerson.Guid
			b, ok := buckets[id]
			if !ok {
				b = &bucket{name: order.SalesPerson.FullName}
				buckets[id] = b
				ids = append(ids, id)
			}
			b.revenue += order.SubTotal
			b.orders++
		}
		return buckets, ids
	}

	currentBuckets, keys := collect(current)
	previousBuckets, previousKeys := collect(previous)

	for _, id := range previousKeys {
		if _, ok := currentBuckets[id]; !ok {
			keys = append(keys, id)
		}
	}

	rows := make([]domain.SalespersonComparisonRow, 0, len(keys))
	for _, id := range keys {
		var cur, prev bucket
		if b, ok := currentBuckets[id]; ok {
			cur = *b
		}
		if b, ok := previousBuckets[id]; ok {
			prev = *b
		}

		name := cur.name
		if name == "" {
			name = prev.name
		}
		if name == "" {
			name = names[id]
		}

		rows = append(rows, domain.SalespersonComparisonRow{
			Name:            name,
			CurrentRevenue:  cur.revenue,
			PreviousRevenue: prev.revenue,
			CurrentOrders:   cur.orders,
			PreviousOrders:  prev.orders,
			Change:          cur.revenue - prev.revenue,
			ChangePct:       ChangePct(cur.revenue, prev.revenue),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CurrentRevenue > rows[j].CurrentRevenue
	})

	return rows
}

// ChangePct is the zero-guarded period-over-period percentage change.
func ChangePct(current, previous float64) float64 {
	if previous > 0 {
		return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

type keyedRevenue struct {
	keys  []string
	names map[string]string
	sums  map[string]float64
}

func customerRevenue(orders []unleasheddomain.Order) keyedRevenue {
	r := keyedRevenue{names: map[string]string{}, sums: map[string]float64{}}
	for _, order := range orders {
		code := order.CustomerCode()
		if _, ok := r.sums[code]; !ok {
			r.keys = append(r.keys, code)
			r.names[code] = order.CustomerName()
		}
		r.sums[code] += order.SubTotal
	}
	return r
}

func productRevenue(orders []unleasheddomain.Order) keyedRevenue {
	r := keyedRevenue{names: map[string]string{}, sums: map[string]float64{}}
	for _, order := range orders {
		for _, line := range order.SalesOrderLines {
			code := line.ProductCode()
			if _, ok := r.sums[code]; !ok {
				r.keys = append(r.keys, code)
				r.names[code] = line.ProductDescription()
			}
			r.sums[code] += line.LineTotal
		}
	}
	return r
}

func compare(current, previous keyedRevenue) []domain.ComparisonRow {
	keys := make([]string, 0, len(current.keys)+len(previous.keys))
	keys = append(keys, current.keys...)
	for _, key := range previous.keys {
		if _, ok := current.sums[key]; !ok {
			keys = append(keys, key)
		}
	}

	rows := make([]domain.ComparisonRow, 0, len(keys))
	for _, key := range keys {
		cur := current.sums[key]
		prev := previous.sums[key]

		name := current.names[key]
		if name == "" || name == unleasheddomain.UnknownCode {
			if prevName := previous.names[key]; prevName != "" {
				name = prevName
			}
		}

		rows = append(rows, domain.ComparisonRow{
			Code:      key,
			Name:      name,
			Current:   cur,
			Previous:  prev,
			Change:    cur - prev,
			ChangePct: ChangePct(cur, prev),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Current > rows[j].Current
	})

	return rows
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func truncateCustomers(rows []domain.CustomerRow, limit int) []domain.CustomerRow {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func truncateProducts(rows []domain.ProductRow, limit int) []domain.ProductRow {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
