package repository

import (
	"errors"

	"github.com/teakimm/express-biztime/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultInvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *DefaultInvoiceRepository {
	return &DefaultInvoiceRepository{db: db}
}

// FindAll returns every invoice ordered by id ascending. Listing order
// is part of the API contract, not a store default we can lean on.
func (r *DefaultInvoiceRepository) FindAll() ([]*entity.Invoice, error) {
	var invoices []*entity.Invoice
	err := r.db.Order("id").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *DefaultInvoiceRepository) FindByID(id int) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.First(&invoice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindByIDWithCompany loads the invoice and its parent company for the
// nested join view.
func (r *DefaultInvoiceRepository) FindByIDWithCompany(id int) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.
		Preload("Company").
		First(&invoice, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindIDsByCompCode returns the ids of all invoices belonging to the
// given company, ordered by id ascending.
func (r *DefaultInvoiceRepository) FindIDsByCompCode(compCode string) ([]int, error) {
	var ids []int
	err := r.db.
		Model(&entity.Invoice{}).
		Where("comp_code = ?", compCode).
		Order("id").
		Pluck("id", &ids).Error

	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DefaultInvoiceRepository) Create(invoice *entity.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *DefaultInvoiceRepository) Save(invoice *entity.Invoice) error {
	return r.db.Save(invoice).Error
}

func (r *DefaultInvoiceRepository) Delete(invoice *entity.Invoice) error {
	return r.db.Delete(invoice).Error
}
