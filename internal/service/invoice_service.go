package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/teakimm/express-biztime/internal/contract"
	"github.com/teakimm/express-biztime/internal/domain/entity"
	"github.com/teakimm/express-biztime/internal/utils"
	"github.com/teakimm/express-biztime/internal/utils/apierror"
)

type InvoiceRepository interface {
	FindAll() ([]*entity.Invoice, error)
	FindByID(id int) (*entity.Invoice, error)
	FindByIDWithCompany(id int) (*entity.Invoice, error)
	FindIDsByCompCode(compCode string) ([]int, error)
	Create(invoice *entity.Invoice) error
	Save(invoice *entity.Invoice) error
	Delete(invoice *entity.Invoice) error
}

type DefaultInvoiceService struct {
	InvoiceRepo InvoiceRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewInvoiceService(
	invoiceRepo InvoiceRepository,
	companyRepo CompanyRepository,
	validate *validator.Validate,
) *DefaultInvoiceService {
	return &DefaultInvoiceService{
		InvoiceRepo: invoiceRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (s *DefaultInvoiceService) GetAllInvoices() ([]*contract.InvoiceSummary, apierror.ErrorResponse) {
	invoices, err := s.InvoiceRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch invoices: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.InvoiceSummary, len(invoices))
	for i, invoice := range invoices {
		resp[i] = &contract.InvoiceSummary{
			ID:       invoice.ID,
			CompCode: invoice.CompCode,
		}
	}
	return resp, nil
}

func (s *DefaultInvoiceService) GetInvoiceByID(invoiceId int) (*contract.InvoiceDetailResponse, apierror.ErrorResponse) {
	invoice, err := s.InvoiceRepo.FindByIDWithCompany(invoiceId)
	if err != nil {
		log.Errorf("failed to fetch invoice: %v", err)
		return nil, apierror.InternalServerError
	}

	if invoice == nil {
		return nil, apierror.InvoiceNotFoundError
	}

	return &contract.InvoiceDetailResponse{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  utils.FormatEpoch(invoice.AddDate),
		PaidDate: formatPaidDate(invoice.PaidDate),
		Company: &contract.CompanyResponse{
			Code:        invoice.Company.Code,
			Name:        invoice.Company.Name,
			Description: invoice.Company.Description,
		},
	}, nil
}

// CreateInvoice verifies the referenced company exists before the
// insert, so a missing company is a semantic 404 rather than a raw
// constraint violation bubbling up as a 500.
func (s *DefaultInvoiceService) CreateInvoice(req *contract.InvoiceRequest) (*contract.InvoiceResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByCode(req.CompCode)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyCodeNotFoundError
	}

	invoice := &entity.Invoice{
		CompCode: req.CompCode,
		Amt:      req.Amt,
		Paid:     false,
		AddDate:  utils.NowUTC(),
	}

	if err = s.InvoiceRepo.Create(invoice); err != nil {
		log.Errorf("failed to create invoice: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInvoiceResponse(invoice), nil
}

// UpdateInvoice touches amt only. paid/paid_date are never changed
// here; there is no paid-transition flow in the current API.
func (s *DefaultInvoiceService) UpdateInvoice(invoiceId int, req *contract.UpdateInvoiceRequest) (*contract.InvoiceResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	invoice, err := s.InvoiceRepo.FindByID(invoiceId)
	if err != nil {
		log.Errorf("failed to fetch invoice: %v", err)
		return nil, apierror.InternalServerError
	}

	if invoice == nil {
		return nil, apierror.InvoiceNotFoundError
	}

	invoice.Amt = req.Amt
	if err = s.InvoiceRepo.Save(invoice); err != nil {
		log.Errorf("failed to update invoice: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInvoiceResponse(invoice), nil
}

func (s *DefaultInvoiceService) DeleteInvoice(invoiceId int) apierror.ErrorResponse {
	invoice, err := s.InvoiceRepo.FindByID(invoiceId)
	if err != nil {
		log.Errorf("failed to fetch invoice: %v", err)
		return apierror.InternalServerError
	}

	if invoice == nil {
		return apierror.InvoiceNotFoundError
	}

	if err = s.InvoiceRepo.Delete(invoice); err != nil {
		log.Errorf("failed to delete invoice: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toInvoiceResponse(invoice *entity.Invoice) *contract.InvoiceResponse {
	return &contract.InvoiceResponse{
		ID:       invoice.ID,
		CompCode: invoice.CompCode,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  utils.FormatEpoch(invoice.AddDate),
		PaidDate: formatPaidDate(invoice.PaidDate),
	}
}

func formatPaidDate(millis *int64) *string {
	if millis == nil {
		return nil
	}
	formatted := utils.FormatEpoch(*millis)
	return &formatted
}
