package entity

type Invoice struct {
	ID       int     `gorm:"primaryKey"`
	CompCode string  `gorm:"not null;index"` // References: companies(code)
	Amt      float64 `gorm:"not null"`
	Paid     bool    `gorm:"not null;default:false"`
	AddDate  int64   `gorm:"not null"`
	PaidDate *int64

	// Relations
	Company Company `gorm:"foreignKey:CompCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
