package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart: keranjang belanja, diidentifikasi lewat session cookie
type Cart struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CartItems []CartItem

	ItemsSubtotal decimal.Decimal `gorm:"type:decimal(16,2)"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(16,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return nil
}

func (c *Cart) GetCart(db *gorm.DB, cartID string) (*Cart, error) {
	var cart Cart

	err := db.
		Preload("CartItems").
		Preload("CartItems.MenuItem").
		Preload("CartItems.MenuItem.Merchant").
		Model(&Cart{}).Where("id = ?", cartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (c *Cart) CreateCart(db *gorm.DB, cartID string) (*Cart, error) {
	cart := &Cart{
		ID:            cartID,
		ItemsSubtotal: decimal.Zero,
		GrandTotal:    decimal.Zero,
	}

	if err := db.Create(cart).Error; err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *Cart) GetItems(db *gorm.DB, cartID string) ([]CartItem, error) {
	var items []CartItem

	err := db.
		Preload("MenuItem").
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// AddItem: tambah menu ke keranjang; kalau menunya sudah ada, qty-nya ditambah
func (c *Cart) AddItem(db *gorm.DB, cartID string, item *MenuItem, qty int) error {
	var existing CartItem

	err := db.Where("cart_id = ? AND menu_item_id = ?", cartID, item.ID).First(&existing).Error
	if err == nil {
		existing.Qty += qty
		existing.SubTotal = item.Price.Mul(decimal.NewFromInt(int64(existing.Qty)))
		if err := db.Save(&existing).Error; err != nil {
			return err
		}

		return c.RecalculateTotals(db, cartID)
	}

	cartItem := CartItem{
		CartID:     cartID,
		MenuItemID: item.ID,
		BasePrice:  item.Price,
		Qty:        qty,
		SubTotal:   item.Price.Mul(decimal.NewFromInt(int64(qty))),
	}

	if err := db.Create(&cartItem).Error; err != nil {
		return err
	}

	return c.RecalculateTotals(db, cartID)
}

func (c *Cart) UpdateItemQty(db *gorm.DB, itemID string, qty int) error {
	var item CartItem

	if err := db.Preload("MenuItem").Where("id = ?", itemID).First(&item).Error; err != nil {
		return err
	}

	if qty <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return err
		}

		return c.RecalculateTotals(db, item.CartID)
	}

	item.Qty = qty
	item.SubTotal = item.BasePrice.Mul(decimal.NewFromInt(int64(qty)))
	if err := db.Save(&item).Error; err != nil {
		return err
	}

	return c.RecalculateTotals(db, item.CartID)
}

func (c *Cart) RemoveItem(db *gorm.DB, itemID string) error {
	var item CartItem

	if err := db.Where("id = ?", itemID).First(&item).Error; err != nil {
		return err
	}

	if err := db.Delete(&item).Error; err != nil {
		return err
	}

	return c.RecalculateTotals(db, item.CartID)
}

// RecalculateTotals: hitung ulang subtotal keranjang dari item-itemnya
func (c *Cart) RecalculateTotals(db *gorm.DB, cartID string) error {
	items, err := c.GetItems(db, cartID)
	if err != nil {
		return err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.SubTotal)
	}

	return db.Model(&Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"items_subtotal": subtotal,
		"grand_total":    subtotal,
		"updated_at":     time.Now(),
	}).Error
}

func (c *Cart) ClearCart(db *gorm.DB, cartID string) error {
	if err := db.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
		return err
	}

	return db.Model(&Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"items_subtotal": decimal.Zero,
		"grand_total":    decimal.Zero,
		"updated_at":     time.Now(),
	}).Error
}
