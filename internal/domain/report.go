package domain

import "github.com/arizon-automation/sales-dashboard/internal/period"

// PeriodTotals are the headline figures for one comparison window.
type PeriodTotals struct {
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	CreditTotal   float64 `json:"creditTotal"`
	CreditCount   int     `json:"creditCount"`
	NetRevenue    float64 `json:"netRevenue"`
}

// Summary compares the current window against the previous one.
type Summary struct {
	Mode           string        `json:"mode"`
	Current        PeriodTotals  `json:"current"`
	Previous       PeriodTotals  `json:"previous"`
	CurrentPeriod  period.Period `json:"currentPeriod"`
	PreviousPeriod period.Period `json:"previousPeriod"`
	Change         float64       `json:"change"`
	ChangePct      float64       `json:"changePct"`
}

// CustomerRow is one customer's revenue in a single window.
type CustomerRow struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ProductRow is one product's revenue and quantity in a single window.
type ProductRow struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Revenue     float64 `json:"revenue"`
	Quantity    float64 `json:"quantity"`
}

// MarginRow is one product's gross margin in a single window.
type MarginRow struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Margin      float64 `json:"margin"`
	Revenue     float64 `json:"revenue"`
}

// ComparisonRow pairs one entity's current and previous revenue.
type ComparisonRow struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"changePct"`
}

// SalespersonComparisonRow compares one salesperson across windows.
type SalespersonComparisonRow struct {
	Name            string  `json:"name"`
	CurrentRevenue  float64 `json:"currentRevenue"`
	PreviousRevenue float64 `json:"previousRevenue"`
	CurrentOrders   int     `json:"currentOrders"`
	PreviousOrders  int     `json:"previousOrders"`
	Change          float64 `json:"change"`
	ChangePct       float64 `json:"changePct"`
}

// CustomerReport is the customer section of the dashboard.
type CustomerReport struct {
	Mode       string          `json:"mode"`
	Top        []CustomerRow   `json:"top"`
	Comparison []ComparisonRow `json:"comparison"`
	Growing    []ComparisonRow `json:"growing"`
	Declining  []ComparisonRow `json:"declining"`
}

// ProductReport is the product section of the dashboard.
type ProductReport struct {
	Mode       string          `json:"mode"`
	Top        []ProductRow    `json:"top"`
	TopMargin  []MarginRow     `json:"topMargin"`
	Comparison []ComparisonRow `json:"comparison"`
}

// SalespersonReport is the salesperson section of the dashboard.
type SalespersonReport struct {
	Mode       string                     `json:"mode"`
	Comparison []SalespersonComparisonRow `json:"comparison"`
}
