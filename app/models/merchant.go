package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant: mitra warung/resto. Lifecycle kemitraannya sama persis dengan
// driver, cuma flag liveness-nya IsOpen (buka/tutup toko).
type Merchant struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name    string `gorm:"size:100"`
	Slug    string `gorm:"size:120;index"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"size:30"`

	Status PartnerStatus `gorm:"size:20;index;default:pending"`
	IsOpen bool          `gorm:"default:false"`

	MenuItems []MenuItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	return nil
}

func (m *Merchant) FindByID(db *gorm.DB, id string) (*Merchant, error) {
	var merchant Merchant

	err := db.Model(&Merchant{}).Where("id = ?", id).First(&merchant).Error
	if err != nil {
		return nil, err
	}

	return &merchant, nil
}

func (m *Merchant) FindBySlug(db *gorm.DB, slug string) (*Merchant, error) {
	var merchant Merchant

	err := db.
		Preload("MenuItems", "is_available = ?", true).
		Model(&Merchant{}).Where("slug = ?", slug).
		First(&merchant).Error
	if err != nil {
		return nil, err
	}

	return &merchant, nil
}

func (m *Merchant) GetMerchants(db *gorm.DB) ([]Merchant, error) {
	var merchants []Merchant

	err := db.Order("created_at desc").Find(&merchants).Error
	if err != nil {
		return nil, err
	}

	return merchants, nil
}

// GetOpenMerchants: daftar merchant yang tampil di beranda customer —
// hanya yang sudah approved dan sedang buka
func (m *Merchant) GetOpenMerchants(db *gorm.DB) ([]Merchant, error) {
	var merchants []Merchant

	err := db.
		Where("status = ? AND is_open = ?", PartnerStatusApproved, true).
		Order("name asc").
		Find(&merchants).Error
	if err != nil {
		return nil, err
	}

	return merchants, nil
}

// ApplyTransition: sama dengan Driver.ApplyTransition, liveness-nya is_open
func (m *Merchant) ApplyTransition(db *gorm.DB, action PartnerAction) error {
	next, err := Transition(m.Status, action)
	if err != nil {
		return err
	}

	isOpen := next == PartnerStatusApproved

	if err := db.Model(m).Updates(map[string]interface{}{
		"status":     next,
		"is_open":    isOpen,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	m.Status = next
	m.IsOpen = isOpen

	return nil
}

func (m *Merchant) Approve(db *gorm.DB) error {
	if m.Status != PartnerStatusPending {
		return ErrInvalidTransition
	}

	if err := db.Model(m).Updates(map[string]interface{}{
		"status":     PartnerStatusApproved,
		"is_open":    true,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	m.Status = PartnerStatusApproved
	m.IsOpen = true

	return nil
}
