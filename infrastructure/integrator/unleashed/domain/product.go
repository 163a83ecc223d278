package domain

// Product is a catalog entry. DefaultPurchasePrice is used as the cost
// fallback when an order line carries no unit cost of its own.
type Product struct {
	Guid                 string  `json:"Guid"`
	ProductCode          string  `json:"ProductCode"`
	ProductDescription   string  `json:"ProductDescription"`
	DefaultPurchasePrice float64 `json:"DefaultPurchasePrice"`
	AverageLandPrice     float64 `json:"AverageLandPrice"`
	IsSellable           bool    `json:"IsSellable"`
}
