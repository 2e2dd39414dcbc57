package models

const (
	EyeDistance = "Distance"
	EyeReading  = "Reading"
)

// One row per eye type; every customer gets a Distance and a Reading row.
type EyePrescription struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"not null;uniqueIndex:idx_eye_customer_type" json:"customer_id"`
	EyeType    string  `gorm:"size:20;not null;uniqueIndex:idx_eye_customer_type" json:"eye_type"`
	ReSph      float64 `json:"re_sph"`
	ReCyl      float64 `json:"re_cyl"`
	ReAxis     float64 `json:"re_axis"`
	LeSph      float64 `json:"le_sph"`
	LeCyl      float64 `json:"le_cyl"`
	LeAxis     float64 `json:"le_axis"`
}
