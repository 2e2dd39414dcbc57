package models

import "time"

type Stock struct {
	No    uint      `gorm:"primaryKey;column:no" json:"no"`
	Frame string    `gorm:"size:100;not null;uniqueIndex:idx_stocks_frame_type" json:"frame"`
	Type  string    `gorm:"size:100;not null;uniqueIndex:idx_stocks_frame_type" json:"type"`
	Count int       `gorm:"not null" json:"count"`
	Date  time.Time `json:"date"`
}

func (Stock) TableName() string { return "stocks" }
