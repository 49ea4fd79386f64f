package controllers

import (
	"log"
	"net/http"

	"github.com/gandarasa/goantar/app/consts"
	"github.com/gandarasa/goantar/app/models"
	"github.com/gorilla/mux"
)

// GET /admin/orders
func (server *Server) AdminOrdersIndex(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	q := server.DB.Model(&models.Order{}).
		Preload("Merchant").
		Preload("Driver").
		Order("created_at desc")

	// filter metode pembayaran, dipakai halaman rekonsiliasi utk lihat cod saja
	if method := r.URL.Query().Get("method"); method != "" && method != "all" {
		q = q.Where("payment_method = ?", method)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data order")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_orders", map[string]interface{}{
		"orders":  orders,
		"user":    admin,
		"isAdmin": true,
		"success": GetFlash(w, r, "success"),
		"error":   GetFlash(w, r, "error"),
	})
}

// GET /admin/orders/{id}
func (server *Server) AdminOrdersShow(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	orderModel := models.Order{}
	order, err := orderModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Order tidak ditemukan")
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_order_show", map[string]interface{}{
		"order":   order,
		"user":    admin,
		"isAdmin": true,
		"success": GetFlash(w, r, "success"),
		"error":   GetFlash(w, r, "error"),
	})
}

// POST /admin/orders/{id}/status
func (server *Server) AdminUpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		SetFlash(w, r, "error", "Gagal membaca status.")
		http.Redirect(w, r, "/admin/orders/"+id, http.StatusSeeOther)
		return
	}

	newStatus := r.FormValue("status")
	switch newStatus {
	case consts.DeliveryStatusPending,
		consts.DeliveryStatusPreparing,
		consts.DeliveryStatusDelivering,
		consts.DeliveryStatusDelivered,
		consts.DeliveryStatusCompleted,
		consts.DeliveryStatusCancelled:
	default:
		SetFlash(w, r, "error", "Status tidak valid.")
		http.Redirect(w, r, "/admin/orders/"+id, http.StatusSeeOther)
		return
	}

	var order models.Order
	if err := server.DB.Where("id = ?", id).First(&order).Error; err != nil {
		log.Println("AdminUpdateDeliveryStatus: gagal menemukan order:", err)
		SetFlash(w, r, "error", "Pesanan tidak ditemukan.")
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}

	// Update hanya kolom status (lebih aman daripada Save seluruh struct)
	if err := server.DB.Model(&order).Update("delivery_status", newStatus).Error; err != nil {
		log.Println("AdminUpdateDeliveryStatus: gagal update status:", err)
		SetFlash(w, r, "error", "Gagal menyimpan status.")
		http.Redirect(w, r, "/admin/orders/"+id, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Status pesanan berhasil diperbarui.")
	http.Redirect(w, r, "/admin/orders/"+id, http.StatusSeeOther)
}

// POST /admin/orders/{id}/deposit
// Catat fee tunai order COD ini sudah disetor driver ke kasir
func (server *Server) AdminMarkFeeDeposited(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	orderModel := models.Order{}
	order, err := orderModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Order tidak ditemukan")
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}

	if !order.IsCOD() {
		SetFlash(w, r, "error", "Bukan order tunai, tidak ada setoran COD")
		http.Redirect(w, r, "/admin/orders/"+order.ID, http.StatusSeeOther)
		return
	}

	if order.IsPaid() {
		SetFlash(w, r, "success", "Setoran order ini sudah tercatat sebelumnya")
		http.Redirect(w, r, "/admin/orders/"+order.ID, http.StatusSeeOther)
		return
	}

	if err := order.MarkAsPaid(server.DB); err != nil {
		SetFlash(w, r, "error", "Gagal mencatat setoran")
		http.Redirect(w, r, "/admin/orders/"+order.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Setoran tercatat, order ditandai lunas")
	http.Redirect(w, r, "/admin/orders/"+order.ID, http.StatusSeeOther)
}
