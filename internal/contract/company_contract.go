package contract

// CompanySummary is the list view: description is intentionally omitted.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse is the single-company view, with the ids of the
// company's invoices attached as a derived, read-only join.
type CompanyDetailResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Invoices    []int  `json:"invoices"`
}

type CompanyRequest struct {
	Code        string `json:"code" validate:"omitempty,max=40"`
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCompanyRequest replaces name and description unconditionally;
// there is no partial-update merge.
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"max=500"`
}
