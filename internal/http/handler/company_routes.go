package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/teakimm/express-biztime/internal/contract"
	"github.com/teakimm/express-biztime/internal/utils/apierror"
)

type CompanyService interface {
	GetAllCompanies() ([]*contract.CompanySummary, apierror.ErrorResponse)
	GetCompanyByCode(code string) (*contract.CompanyDetailResponse, apierror.ErrorResponse)
	CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	UpdateCompany(code string, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	DeleteCompany(code string) apierror.ErrorResponse
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (h *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	companies, apierr := h.CompanyService.GetAllCompanies()
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"companies": companies}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	company, apierr := h.CompanyService.GetCompanyByCode(c.Param("code"))
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"company": company}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return apierror.MalformedJSONError
	}

	company, apierr := h.CompanyService.CreateCompany(&req)
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"company": company}
	return c.JSON(http.StatusCreated, &resp)
}

func (h *DefaultCompanyRoute) UpdateCompany(c echo.Context) error {
	var req contract.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return apierror.MalformedJSONError
	}

	company, apierr := h.CompanyService.UpdateCompany(c.Param("code"), &req)
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"company": company}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCompanyRoute) DeleteCompany(c echo.Context) error {
	if apierr := h.CompanyService.DeleteCompany(c.Param("code")); apierr != nil {
		return apierr
	}

	resp := echo.Map{"status": "deleted"}
	return c.JSON(http.StatusOK, &resp)
}
