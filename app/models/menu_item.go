package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	MerchantID string `gorm:"size:36;index"`
	Merchant   Merchant

	Name        string          `gorm:"size:255"`
	Slug        string          `gorm:"size:255;index"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2)"`
	Description string          `gorm:"type:text"`
	Image       string          `gorm:"size:255"`
	IsAvailable bool            `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	return nil
}

func (m *MenuItem) FindByID(db *gorm.DB, id string) (*MenuItem, error) {
	var item MenuItem

	err := db.Preload("Merchant").Model(&MenuItem{}).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// GetLatestMenuItems: menu terbaru dari merchant yang buka, utk beranda
func (m *MenuItem) GetLatestMenuItems(db *gorm.DB, limit int) ([]MenuItem, error) {
	var items []MenuItem

	err := db.
		Preload("Merchant").
		Joins("JOIN merchants ON merchants.id = menu_items.merchant_id").
		Where("menu_items.is_available = ? AND merchants.status = ? AND merchants.is_open = ?",
			true, PartnerStatusApproved, true).
		Order("menu_items.created_at desc").
		Limit(limit).
		Find(&items).Error

	return items, err
}

func (m MenuItem) PriceFloat() float64 {
	return m.Price.InexactFloat64()
}
