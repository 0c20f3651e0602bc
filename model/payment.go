package model

// Payment is one settled invoice line for a property. Amount is in cents.
type Payment struct {
	ID          string        `json:"id"`
	Amount      int           `json:"amount"`
	Date        DateTime      `json:"date"`
	Method      PaymentMethod `json:"method"`
	InvoiceCode string        `json:"invoiceCode"`
}
