package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver: mitra pengantar. Record tidak pernah dihapus fisik — status
// terminated jadi end-state supaya riwayat ordernya tetap bisa ditelusuri.
type Driver struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name         string `gorm:"size:100"`
	Phone        string `gorm:"size:30"`
	VehiclePlate string `gorm:"size:20"`

	Status PartnerStatus `gorm:"size:20;index;default:pending"`

	// IsActive: boleh ditawari order baru atau tidak. Dipaksa false waktu
	// suspend/terminate, true lagi waktu reactivate.
	IsActive bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return nil
}

func (d *Driver) FindByID(db *gorm.DB, id string) (*Driver, error) {
	var driver Driver

	err := db.Model(&Driver{}).Where("id = ?", id).First(&driver).Error
	if err != nil {
		return nil, err
	}

	return &driver, nil
}

func (d *Driver) GetDrivers(db *gorm.DB) ([]Driver, error) {
	var drivers []Driver

	err := db.Order("created_at desc").Find(&drivers).Error
	if err != nil {
		return nil, err
	}

	return drivers, nil
}

// ApplyTransition: validasi transisi lifecycle lalu tulis status + flag aktif
// dalam satu update. Kalau transisinya tidak valid, DB tidak disentuh.
func (d *Driver) ApplyTransition(db *gorm.DB, action PartnerAction) error {
	next, err := Transition(d.Status, action)
	if err != nil {
		return err
	}

	isActive := next == PartnerStatusApproved

	if err := db.Model(d).Updates(map[string]interface{}{
		"status":     next,
		"is_active":  isActive,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	d.Status = next
	d.IsActive = isActive

	return nil
}

// Approve: alur verifikasi pendaftaran (pending -> approved).
// Di luar state machine Transition karena cuma berlaku sekali di awal.
func (d *Driver) Approve(db *gorm.DB) error {
	if d.Status != PartnerStatusPending {
		return ErrInvalidTransition
	}

	if err := db.Model(d).Updates(map[string]interface{}{
		"status":     PartnerStatusApproved,
		"is_active":  true,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	d.Status = PartnerStatusApproved
	d.IsActive = true

	return nil
}
