package domain

// SalesPerson is a salesperson identity from the vendor's reference list.
type SalesPerson struct {
	Guid     string `json:"Guid"`
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
	Obsolete bool   `json:"Obsolete"`
}
