package repository

import (
	"errors"

	"github.com/teakimm/express-biztime/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindAll() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.Order("code").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByCode(code string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Where("code = ?", code).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) Create(company *entity.Company) error {
	return r.db.Create(company).Error
}

func (r *DefaultCompanyRepository) Save(company *entity.Company) error {
	return r.db.Save(company).Error
}

// Delete removes the company row. Invoices referencing it go with it,
// the relationship is declared ON DELETE CASCADE.
func (r *DefaultCompanyRepository) Delete(company *entity.Company) error {
	return r.db.Delete(company).Error
}
