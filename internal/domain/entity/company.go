package entity

type Company struct {
	Code        string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
}
