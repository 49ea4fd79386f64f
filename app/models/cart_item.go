package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Cart       Cart
	CartID     string `gorm:"size:36;index"`
	MenuItem   MenuItem
	MenuItemID string `gorm:"size:36;index"`

	Qty       int
	BasePrice decimal.Decimal `gorm:"type:decimal(16,2)"`
	SubTotal  decimal.Decimal `gorm:"type:decimal(16,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return nil
}

func (c *CartItem) GetByID(db *gorm.DB, id string) (*CartItem, error) {
	var item CartItem

	err := db.
		Preload("MenuItem").
		Model(&CartItem{}).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}

	return &item, nil
}
