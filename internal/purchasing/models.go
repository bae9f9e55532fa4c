// Package purchasing stores the purchasing department's requests.
package purchasing

import (
	"time"

	"gorm.io/gorm"
)

// PurchaseRequest is one request raised from the po creation form.
type PurchaseRequest struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Number     string `gorm:"uniqueIndex;not null" json:"number"`
	Requester  string `gorm:"not null" json:"requester"`
	Department string `json:"department"`
	Item       string `gorm:"not null" json:"item"`
	Quantity   int    `gorm:"not null" json:"quantity"`

	EstimatedPrice float64    `json:"estimated_price"`
	NeededBy       *time.Time `json:"needed_by"`
	Justification  string     `json:"justification"`
	Status         string     `gorm:"default:draft" json:"status"` // draft, submitted, approved
}
