package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/teakimm/express-biztime/internal/contract"
	"github.com/teakimm/express-biztime/internal/utils/apierror"
)

type InvoiceService interface {
	GetAllInvoices() ([]*contract.InvoiceSummary, apierror.ErrorResponse)
	GetInvoiceByID(invoiceId int) (*contract.InvoiceDetailResponse, apierror.ErrorResponse)
	CreateInvoice(req *contract.InvoiceRequest) (*contract.InvoiceResponse, apierror.ErrorResponse)
	UpdateInvoice(invoiceId int, req *contract.UpdateInvoiceRequest) (*contract.InvoiceResponse, apierror.ErrorResponse)
	DeleteInvoice(invoiceId int) apierror.ErrorResponse
}

type DefaultInvoiceRoute struct {
	InvoiceService InvoiceService
}

func NewInvoiceDefault(invoiceService InvoiceService) *DefaultInvoiceRoute {
	return &DefaultInvoiceRoute{InvoiceService: invoiceService}
}

func (h *DefaultInvoiceRoute) GetInvoices(c echo.Context) error {
	invoices, apierr := h.InvoiceService.GetAllInvoices()
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"invoices": invoices}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInvoiceRoute) GetInvoice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	invoice, apierr := h.InvoiceService.GetInvoiceByID(id)
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"invoice": invoice}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInvoiceRoute) CreateInvoice(c echo.Context) error {
	var req contract.InvoiceRequest
	if err := c.Bind(&req); err != nil {
		return apierror.MalformedJSONError
	}

	invoice, apierr := h.InvoiceService.CreateInvoice(&req)
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"invoice": invoice}
	return c.JSON(http.StatusCreated, &resp)
}

func (h *DefaultInvoiceRoute) UpdateInvoice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	var req contract.UpdateInvoiceRequest
	if err = c.Bind(&req); err != nil {
		return apierror.MalformedJSONError
	}

	invoice, apierr := h.InvoiceService.UpdateInvoice(id, &req)
	if apierr != nil {
		return apierr
	}

	resp := echo.Map{"invoice": invoice}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInvoiceRoute) DeleteInvoice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	if apierr := h.InvoiceService.DeleteInvoice(id); apierr != nil {
		return apierr
	}

	resp := echo.Map{"status": "deleted"}
	return c.JSON(http.StatusOK, &resp)
}
