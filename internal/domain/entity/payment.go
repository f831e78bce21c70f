package entity

import "time"

// Payment records a completed transaction.
type Payment struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Amount float64   `gorm:"not null" json:"amount"`
	PaidAt time.Time `gorm:"not null;index" json:"paidAt"`
}
