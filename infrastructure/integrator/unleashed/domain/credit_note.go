package domain

// CreditNote is a refund or adjustment record, structurally parallel to
// an Order but without lines.
type CreditNote struct {
	CreditNoteNumber string       `json:"CreditNoteNumber"`
	Customer         *CustomerRef `json:"Customer"`
	SubTotal         float64      `json:"SubTotal"`
	TaxTotal         float64      `json:"TaxTotal"`
	Total            float64      `json:"Total"`
	CreatedOn        string       `json:"CreatedOn"`
}

// CustomerCode returns the credit note's customer code, or the Unknown sentinel.
func (c CreditNote) CustomerCode() string {
	if c.Customer == nil || c.Customer.CustomerCode == "" {
		return UnknownCode
	}
	return c.Customer.CustomerCode
}
