package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/teakimm/express-biztime/internal/contract"
	"github.com/teakimm/express-biztime/internal/domain/entity"
	"github.com/teakimm/express-biztime/internal/utils"
	"github.com/teakimm/express-biztime/internal/utils/apierror"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindAll() ([]*entity.Company, error)
	FindByCode(code string) (*entity.Company, error)
	Create(company *entity.Company) error
	Save(company *entity.Company) error
	Delete(company *entity.Company) error
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	InvoiceRepo InvoiceRepository
	Validate    *validator.Validate
}

func NewCompanyService(
	companyRepo CompanyRepository,
	invoiceRepo InvoiceRepository,
	validate *validator.Validate,
) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: companyRepo,
		InvoiceRepo: invoiceRepo,
		Validate:    validate,
	}
}

func (s *DefaultCompanyService) GetAllCompanies() ([]*contract.CompanySummary, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanySummary, len(companies))
	for i, company := range companies {
		resp[i] = &contract.CompanySummary{
			Code: company.Code,
			Name: company.Name,
		}
	}
	return resp, nil
}

// GetCompanyByCode reads the company, then its invoice ids. The two
// reads are not transactional; an invoice deleted in between simply
// drops out of the join view.
func (s *DefaultCompanyService) GetCompanyByCode(code string) (*contract.CompanyDetailResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByCode(code)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	ids, err := s.InvoiceRepo.FindIDsByCompCode(code)
	if err != nil {
		log.Errorf("failed to fetch invoices for company %s: %v", code, err)
		return nil, apierror.InternalServerError
	}

	if ids == nil {
		ids = []int{}
	}

	return &contract.CompanyDetailResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    ids,
	}, nil
}

func (s *DefaultCompanyService) CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	code := req.Code
	if code == "" {
		code = req.Name
	}

	code = utils.Slugify(code)
	if code == "" {
		return nil, apierror.NewSimple(400, "Company code must contain at least one letter or digit")
	}

	company := &entity.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.CompanyRepo.Create(company); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.DuplicateCompanyError
		}
		log.Errorf("failed to create company: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func (s *DefaultCompanyService) UpdateCompany(code string, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByCode(code)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	// Full replacement, both fields.
	company.Name = req.Name
	company.Description = req.Description

	if err = s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to update company: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func (s *DefaultCompanyService) DeleteCompany(code string) apierror.ErrorResponse {
	company, err := s.CompanyRepo.FindByCode(code)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return apierror.InternalServerError
	}

	if company == nil {
		return apierror.CompanyNotFoundError
	}

	if err = s.CompanyRepo.Delete(company); err != nil {
		log.Errorf("failed to delete company: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toCompanyResponse(company *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
	}
}
