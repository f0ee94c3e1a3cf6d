package contract

// InvoiceSummary is the list view, ordered by id ascending.
type InvoiceSummary struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

type InvoiceResponse struct {
	ID       int     `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// InvoiceDetailResponse is the single-invoice view with the parent
// company decomposed into a nested object.
type InvoiceDetailResponse struct {
	ID       int              `json:"id"`
	Amt      float64          `json:"amt"`
	Paid     bool             `json:"paid"`
	AddDate  string           `json:"add_date"`
	PaidDate *string          `json:"paid_date"`
	Company  *CompanyResponse `json:"company"`
}

type InvoiceRequest struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      float64 `json:"amt" validate:"required,gt=0"`
}

type UpdateInvoiceRequest struct {
	Amt float64 `json:"amt" validate:"required,gt=0"`
}
