package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem: snapshot item menu saat checkout, supaya riwayat order tidak
// berubah kalau merchant mengedit menunya
type OrderItem struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID    string `gorm:"size:36;index"`
	MenuItemID string `gorm:"size:36;index"`
	MenuItem   MenuItem

	Name      string          `gorm:"size:255"`
	BasePrice decimal.Decimal `gorm:"type:decimal(16,2)"`
	Qty       int
	SubTotal  decimal.Decimal `gorm:"type:decimal(16,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	return nil
}
