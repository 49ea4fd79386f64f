package models

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gandarasa/goantar/app/consts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Code       string `gorm:"size:50;index"`
	UserID     string `gorm:"size:36;index"`
	User       User
	MerchantID string `gorm:"size:36;index"`
	Merchant   Merchant

	// DriverID kosong = belum ada driver yang mengantar
	DriverID string `gorm:"size:36;index"`
	Driver   Driver

	OrderItems []OrderItem

	// TOTAL & BIAYA
	ItemsSubtotal decimal.Decimal `gorm:"type:decimal(16,2)"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(16,2)"`
	AmountTotal   decimal.Decimal `gorm:"type:decimal(16,2)"`

	// ServiceFee: potongan jasa aplikasi dalam rupiah bulat.
	// Sengaja int64 (bukan decimal) karena jadi satuan hitung setoran COD.
	ServiceFee int64

	// PAYMENT
	PaymentMethod string       `gorm:"size:20;index"` // cod / transfer / wallet
	PaymentStatus string       `gorm:"size:20;index"` // unpaid / paid
	PaidAt        sql.NullTime `gorm:"type:timestamp"`

	// PENGANTARAN
	DeliveryStatus  string `gorm:"size:20;index"`
	RecipientName   string `gorm:"size:100"`
	RecipientPhone  string `gorm:"size:30"`
	DeliveryAddress string `gorm:"type:text"`
	Note            string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (o *Order) BeforeCreate(db *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	if o.Code == "" {
		o.Code = generateOrderCode()
	}

	return nil
}

// generateOrderCode: kode order unik utk ditampilkan ke user & admin,
// contoh: GA-20261125-163245-1234
func generateOrderCode() string {
	now := time.Now()
	return "GA-" + now.Format("20060102-150405") + "-" + strconv.FormatInt(now.UnixNano()%10000, 10)
}

func (o *Order) CreateOrder(db *gorm.DB, order *Order) (*Order, error) {
	result := db.Create(order)
	if result.Error != nil {
		return nil, result.Error
	}

	return order, nil
}

func (o *Order) FindByID(db *gorm.DB, id string) (*Order, error) {
	var order Order

	err := db.
		Preload("OrderItems").
		Preload("Merchant").
		Preload("Driver").
		Preload("User").
		Model(&Order{}).Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CashOrdersForDay: query ke store order untuk pass settlement —
// semua order COD yang dibuat dalam [awal hari, sekarang], plus nama driver.
func (o *Order) CashOrdersForDay(db *gorm.DB, day time.Time) ([]Order, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var orders []Order
	err := db.
		Preload("Driver").
		Where("payment_method = ? AND created_at >= ? AND created_at < ?",
			consts.PaymentMethodCOD, dayStart, dayStart.Add(24*time.Hour)).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Order) IsPaid() bool {
	return o.PaidAt.Valid || o.PaymentStatus == consts.OrderPaymentStatusPaid
}

// IsDeliveryDone: order sudah sampai di customer (fee tunainya dianggap
// ikut tersetor kalau paymentnya juga sudah paid)
func (o *Order) IsDeliveryDone() bool {
	return o.DeliveryStatus == consts.DeliveryStatusDelivered ||
		o.DeliveryStatus == consts.DeliveryStatusCompleted
}

func (o *Order) IsCOD() bool {
	return o.PaymentMethod == consts.PaymentMethodCOD
}

// MarkAsPaid: menandai order sudah dibayar / fee tunainya sudah disetor
func (o *Order) MarkAsPaid(db *gorm.DB) error {
	now := time.Now()
	o.PaidAt = sql.NullTime{Time: now, Valid: true}
	o.PaymentStatus = consts.OrderPaymentStatusPaid

	return db.Model(o).Updates(map[string]interface{}{
		"paid_at":        o.PaidAt,
		"payment_status": consts.OrderPaymentStatusPaid,
		"updated_at":     now,
	}).Error
}

// ServiceFeeFor: potongan jasa aplikasi = 10% dari subtotal item,
// dibulatkan ke rupiah terdekat
func ServiceFeeFor(itemsSubtotal decimal.Decimal) int64 {
	fee := itemsSubtotal.Mul(decimal.NewFromInt(consts.ServiceFeePercent)).Div(decimal.NewFromInt(100))
	return fee.Round(0).IntPart()
}

// DeliveryStatusText: label status pengantaran untuk tampilan
func (o Order) DeliveryStatusText() string {
	switch o.DeliveryStatus {
	case consts.DeliveryStatusPending:
		return "Menunggu Konfirmasi"
	case consts.DeliveryStatusPreparing:
		return "Disiapkan"
	case consts.DeliveryStatusDelivering:
		return "Diantar"
	case consts.DeliveryStatusDelivered:
		return "Sampai"
	case consts.DeliveryStatusCompleted:
		return "Selesai"
	case consts.DeliveryStatusCancelled:
		return "Dibatalkan"
	default:
		return "Unknown"
	}
}

func (o Order) PaymentStatusText() string {
	switch o.PaymentStatus {
	case consts.OrderPaymentStatusUnpaid:
		return "Belum Dibayar"
	case consts.OrderPaymentStatusPaid:
		return "Lunas"
	default:
		return "Unknown"
	}
}

func (o Order) PaymentMethodText() string {
	switch o.PaymentMethod {
	case consts.PaymentMethodCOD:
		return "Tunai (COD)"
	case consts.PaymentMethodTransfer:
		return "Transfer Bank"
	case consts.PaymentMethodWallet:
		return "Dompet Digital"
	default:
		return o.PaymentMethod
	}
}

// StatusStep: dipakai untuk stepper tracking di halaman detail pesanan (1–4)
func (o Order) StatusStep() int {
	switch o.DeliveryStatus {
	case consts.DeliveryStatusPending:
		return 1
	case consts.DeliveryStatusPreparing:
		return 2
	case consts.DeliveryStatusDelivering:
		return 3
	case consts.DeliveryStatusDelivered, consts.DeliveryStatusCompleted:
		return 4
	default:
		return 1
	}
}

func (o Order) AmountTotalFloat() float64 {
	return o.AmountTotal.InexactFloat64()
}

func (o Order) SubtotalFloat() float64 {
	return o.ItemsSubtotal.InexactFloat64()
}

func (o Order) DeliveryFeeFloat() float64 {
	return o.DeliveryFee.InexactFloat64()
}
