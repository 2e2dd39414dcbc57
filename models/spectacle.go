package models

// SpectacleNo tags the physical spectacle unit handed to a customer.
type SpectacleNo struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"index;not null" json:"customer_id"`
	Frame      string `gorm:"size:100" json:"frame"`
	Type       string `gorm:"size:100" json:"type"`
	UniqueNo   string `gorm:"size:100;not null;uniqueIndex" json:"unique_no"`
}

func (SpectacleNo) TableName() string { return "spectacles_no" }
