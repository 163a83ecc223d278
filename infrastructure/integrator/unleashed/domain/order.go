package domain

// UnknownCode is used when a record carries no customer or product reference.
const UnknownCode = "Unknown"

// CustomerRef is the customer reference embedded in orders and credit notes.
type CustomerRef struct {
	Guid         string `json:"Guid"`
	CustomerCode string `json:"CustomerCode"`
	CustomerName string `json:"CustomerName"`
}

// SalesPersonRef is the salesperson reference embedded in an order.
type SalesPersonRef struct {
	Guid     string `json:"Guid"`
	FullName string `json:"FullName"`
}

// ProductRef is the product reference embedded in an order line.
type ProductRef struct {
	Guid                 string  `json:"Guid"`
	ProductCode          string  `json:"ProductCode"`
	ProductDescription   string  `json:"ProductDescription"`
	DefaultPurchasePrice float64 `json:"DefaultPurchasePrice"`
	AverageLandPrice     float64 `json:"AverageLandPrice"`
}

// SalesOrderLine is one line of a completed sales order.
type SalesOrderLine struct {
	LineNumber    int         `json:"LineNumber"`
	Product       *ProductRef `json:"Product"`
	OrderQuantity float64     `json:"OrderQuantity"`
	UnitPrice     float64     `json:"UnitPrice"`
	LineTotal     float64     `json:"LineTotal"`
	// Per-line unit cost captured by the vendor at sale time; absent on older orders.
	AverageLandedPriceAtTimeOfSale *float64 `json:"AverageLandedPriceAtTimeOfSale"`
}

// ProductCode returns the line's product code, or the Unknown sentinel.
func (l SalesOrderLine) ProductCode() string {
	if l.Product == nil || l.Product.ProductCode == "" {
		return UnknownCode
	}
	return l.Product.ProductCode
}

// ProductDescription returns the line's product description, or the
// Unknown sentinel.
func (l SalesOrderLine) ProductDescription() string {
	if l.Product == nil || l.Product.ProductDescription == "" {
		return UnknownCode
	}
	return l.Product.ProductDescription
}

// Order is a completed sales order as returned by the vendor API.
// Orders are immutable once fetched.
type Order struct {
	OrderNumber     string           `json:"OrderNumber"`
	OrderStatus     string           `json:"OrderStatus"`
	Customer        *CustomerRef     `json:"Customer"`
	SalesPerson     *SalesPersonRef  `json:"SalesPerson"`
	SubTotal        float64          `json:"SubTotal"`
	TaxTotal        float64          `json:"TaxTotal"`
	Total           float64          `json:"Total"`
	CompletedDate   string           `json:"CompletedDate"`
	SalesOrderLines []SalesOrderLine `json:"SalesOrderLines"`
}

// CustomerCode returns the order's customer code, or the Unknown sentinel.
func (o Order) CustomerCode() string {
	if o.Customer == nil || o.Customer.CustomerCode == "" {
		return UnknownCode
	}
	return o.Customer.CustomerCode
}

// CustomerName returns the order's customer name, or the Unknown sentinel.
func (o Order) CustomerName() string {
	if o.Customer == nil || o.Customer.CustomerName == "" {
		return UnknownCode
	}
	return o.Customer.CustomerName
}
