package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gandarasa/goantar/app/consts"
	"github.com/gandarasa/goantar/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// ongkir flat; cukup untuk layanan antar dalam kota
var flatDeliveryFee = decimal.NewFromInt(8000)

// POST /orders/checkout
func (server *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	if !IsLoggedIn(r) {
		SetFlash(w, r, "error", "Anda perlu login!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user := server.CurrentUser(w, r)

	cartID := GetCartSessionID(w, r)
	cartModel := models.Cart{}
	cart, err := cartModel.GetCart(server.DB, cartID)
	if err != nil || len(cart.CartItems) == 0 {
		SetFlash(w, r, "error", "Keranjang masih kosong")
		http.Redirect(w, r, "/carts", http.StatusSeeOther)
		return
	}

	paymentMethod := r.FormValue("payment_method")
	switch paymentMethod {
	case consts.PaymentMethodCOD, consts.PaymentMethodTransfer, consts.PaymentMethodWallet:
	default:
		SetFlash(w, r, "error", "Metode pembayaran tidak valid")
		http.Redirect(w, r, "/carts", http.StatusSeeOther)
		return
	}

	recipientName := r.FormValue("recipient_name")
	recipientPhone := r.FormValue("recipient_phone")
	address := r.FormValue("address")
	if recipientName == "" || recipientPhone == "" || address == "" {
		SetFlash(w, r, "error", "Nama penerima, nomor HP, dan alamat wajib diisi")
		http.Redirect(w, r, "/carts", http.StatusSeeOther)
		return
	}

	order, err := server.SaveOrder(user, cart, paymentMethod, recipientName, recipientPhone, address, r.FormValue("note"))
	if err != nil {
		SetFlash(w, r, "error", "Proses checkout gagal: "+err.Error())
		http.Redirect(w, r, "/carts", http.StatusSeeOther)
		return
	}

	_ = cartModel.ClearCart(server.DB, cartID)

	SetFlash(w, r, "success", "Pesanan berhasil dibuat")
	http.Redirect(w, r, "/orders/"+order.ID, http.StatusSeeOther)
}

// SaveOrder: bentuk order dari isi keranjang. Satu order per merchant —
// semua item keranjang harus dari warung yang sama.
func (server *Server) SaveOrder(user *models.User, cart *models.Cart, paymentMethod, recipientName, recipientPhone, address, note string) (*models.Order, error) {
	orderID := uuid.New().String()

	var orderItems []models.OrderItem
	merchantID := ""

	for _, cartItem := range cart.CartItems {
		if merchantID == "" {
			merchantID = cartItem.MenuItem.MerchantID
		}

		orderItems = append(orderItems, models.OrderItem{
			OrderID:    orderID,
			MenuItemID: cartItem.MenuItemID,
			Name:       cartItem.MenuItem.Name,
			BasePrice:  cartItem.BasePrice,
			Qty:        cartItem.Qty,
			SubTotal:   cartItem.SubTotal,
		})
	}

	subtotal := cart.ItemsSubtotal
	serviceFee := models.ServiceFeeFor(subtotal)
	amountTotal := subtotal.Add(flatDeliveryFee)

	orderData := &models.Order{
		ID:              orderID,
		UserID:          user.ID,
		MerchantID:      merchantID,
		OrderItems:      orderItems,
		ItemsSubtotal:   subtotal,
		DeliveryFee:     flatDeliveryFee,
		AmountTotal:     amountTotal,
		ServiceFee:      serviceFee,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   consts.OrderPaymentStatusUnpaid,
		DeliveryStatus:  consts.DeliveryStatusPending,
		RecipientName:   recipientName,
		RecipientPhone:  recipientPhone,
		DeliveryAddress: address,
		Note:            note,
	}

	orderModel := models.Order{}
	return orderModel.CreateOrder(server.DB, orderData)
}

// GET /orders/{id}
func (server *Server) ShowOrder(w http.ResponseWriter, r *http.Request) {
	ren := userRender()
	vars := mux.Vars(r)
	id := vars["id"]

	if !IsLoggedIn(r) {
		SetFlash(w, r, "error", "Silakan login untuk melihat detail pesanan.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user := server.CurrentUser(w, r)

	var order models.Order
	err := server.DB.
		Preload("OrderItems").
		Preload("Merchant").
		Preload("Driver").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&order).Error
	if err != nil {
		SetFlash(w, r, "error", "Pesanan tidak ditemukan.")
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	_ = ren.HTML(w, http.StatusOK, "order_detail", map[string]interface{}{
		"user":      user,
		"isAdmin":   IsAdminUser(user),
		"order":     order,
		"cartCount": server.GetCartCount(w, r),
		"success":   GetFlash(w, r, "success"),
		"error":     GetFlash(w, r, "error"),
	})
}

// GET /orders
// Daftar pesanan user dengan filter status/pembayaran/tanggal + pagination
func (server *Server) OrdersIndex(w http.ResponseWriter, r *http.Request) {
	ren := userRender()

	if !IsLoggedIn(r) {
		SetFlash(w, r, "error", "Anda perlu login dulu untuk melihat pesanan.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user := server.CurrentUser(w, r)

	// --- filter ---
	q := server.DB.Model(&models.Order{}).
		Preload("OrderItems").
		Preload("Merchant").
		Where("user_id = ?", user.ID)

	statusFilter := r.URL.Query().Get("status")
	if statusFilter != "" && statusFilter != "all" {
		q = q.Where("delivery_status = ?", statusFilter)
	}

	paymentFilter := r.URL.Query().Get("payment")
	if paymentFilter != "" && paymentFilter != "all" {
		q = q.Where("payment_status = ?", paymentFilter)
	}

	dateFrom := r.URL.Query().Get("date_from")
	dateTo := r.URL.Query().Get("date_to")
	if dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			// tambah 1 hari biar inclusive
			q = q.Where("created_at < ?", t.Add(24*time.Hour))
		}
	}

	// --- pagination ---
	const perPage = 10
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	var total int64
	_ = q.Count(&total).Error

	totalPages := totalPagesFor(total, perPage)
	if page > totalPages {
		page = totalPages
	}

	var orders []models.Order
	err := q.
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&orders).Error
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data pesanan.")
	}

	_ = ren.HTML(w, http.StatusOK, "orders", map[string]interface{}{
		"user":          user,
		"isAdmin":       IsAdminUser(user),
		"orders":        orders,
		"cartCount":     server.GetCartCount(w, r),
		"success":       GetFlash(w, r, "success"),
		"error":         GetFlash(w, r, "error"),
		"currentPage":   page,
		"totalPages":    totalPages,
		"statusFilter":  statusFilter,
		"paymentFilter": paymentFilter,
		"dateFrom":      dateFrom,
		"dateTo":        dateTo,
		"query":         r.URL.Query(),
	})
}
