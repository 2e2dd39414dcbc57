package models

import "time"

const (
	PaymentPaid    = "Paid"
	PaymentNotPaid = "Not Paid"
)

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:180;not null" json:"name"`
	PhoneNo       string    `gorm:"size:20;not null" json:"phone_no"`
	BillNo        string    `gorm:"size:60;not null;uniqueIndex" json:"bill_no"`
	OrderDate     time.Time `gorm:"not null" json:"order_date"`
	DOB           time.Time `gorm:"column:dob" json:"dob"`
	Frame         string    `gorm:"size:100" json:"frame"`
	Type          string    `gorm:"size:100" json:"type"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	Discount      float64   `gorm:"not null;default:0" json:"discount"`
	AdvanceAmount float64   `gorm:"not null;default:0" json:"advance_amount"`
	BalanceAmount float64   `gorm:"not null;default:0" json:"balance_amount"`
	Lens          string    `gorm:"size:180" json:"lens"`
	Payment       string    `gorm:"size:20;not null" json:"payment"`
	Remark        string    `gorm:"size:255" json:"remark"`

	Prescriptions []EyePrescription `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"prescriptions,omitempty"`
	Spectacle     *SpectacleNo      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"spectacle,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
