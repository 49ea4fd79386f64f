package controllers

import (
	"net/http"
	"strconv"

	"github.com/gandarasa/goantar/app/models"
	"github.com/google/uuid"
)

// GetCartSessionID: ambil id keranjang dari session, buat baru kalau belum ada
func GetCartSessionID(w http.ResponseWriter, r *http.Request) string {
	if store == nil {
		return ""
	}

	session, _ := store.Get(r, sessionCart)
	if session.Values["cart-id"] == nil {
		session.Values["cart-id"] = uuid.New().String()
		_ = session.Save(r, w)
	}

	return session.Values["cart-id"].(string)
}

// getOrCreateCart: keranjang di DB mengikuti id di session
func (server *Server) getOrCreateCart(w http.ResponseWriter, r *http.Request) (*models.Cart, error) {
	cartID := GetCartSessionID(w, r)

	cartModel := models.Cart{}
	cart, err := cartModel.GetCart(server.DB, cartID)
	if err != nil {
		return cartModel.CreateCart(server.DB, cartID)
	}

	return cart, nil
}

// GET /carts
func (server *Server) GetCart(w http.ResponseWriter, r *http.Request) {
	ren := userRender()
	user := server.CurrentUser(w, r)

	cart, err := server.getOrCreateCart(w, r)
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil keranjang")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	serviceFee := models.ServiceFeeFor(cart.ItemsSubtotal)

	_ = ren.HTML(w, http.StatusOK, "cart", map[string]interface{}{
		"user":       user,
		"isAdmin":    IsAdminUser(user),
		"cart":       cart,
		"items":      cart.CartItems,
		"serviceFee": serviceFee,
		"cartCount":  len(cart.CartItems),
		"success":    GetFlash(w, r, "success"),
		"error":      GetFlash(w, r, "error"),
	})
}

// POST /carts
func (server *Server) AddItemToCart(w http.ResponseWriter, r *http.Request) {
	menuItemID := r.FormValue("menu_item_id")
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil || qty < 1 {
		qty = 1
	}

	menuModel := models.MenuItem{}
	item, err := menuModel.FindByID(server.DB, menuItemID)
	if err != nil {
		SetFlash(w, r, "error", "Menu tidak ditemukan")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !item.IsAvailable {
		SetFlash(w, r, "error", "Menu sedang tidak tersedia")
		http.Redirect(w, r, "/warung/"+item.Merchant.Slug, http.StatusSeeOther)
		return
	}

	cart, err := server.getOrCreateCart(w, r)
	if err != nil {
		SetFlash(w, r, "error", "Gagal menyiapkan keranjang")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	cartModel := models.Cart{}
	if err := cartModel.AddItem(server.DB, cart.ID, item, qty); err != nil {
		SetFlash(w, r, "error", "Gagal menambahkan ke keranjang")
		http.Redirect(w, r, "/warung/"+item.Merchant.Slug, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", item.Name+" masuk keranjang")
	http.Redirect(w, r, "/carts", http.StatusSeeOther)
}

// POST /carts/update
func (server *Server) UpdateCartItemQty(w http.ResponseWriter, r *http.Request) {
	itemID := r.FormValue("item_id")
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil {
		SetFlash(w, r, "error", "Jumlah tidak valid")
		http.Redirect(w, r, "/carts", http.StatusSeeOther)
		return
	}

	cartModel := models.Cart{}
	if err := cartModel.UpdateItemQty(server.DB, itemID, qty); err != nil {
		SetFlash(w, r, "error", "Gagal mengubah jumlah item")
	}

	http.Redirect(w, r, "/carts", http.StatusSeeOther)
}

// POST /carts/remove
func (server *Server) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.FormValue("item_id")

	cartModel := models.Cart{}
	if err := cartModel.RemoveItem(server.DB, itemID); err != nil {
		SetFlash(w, r, "error", "Gagal menghapus item")
	} else {
		SetFlash(w, r, "success", "Item dihapus dari keranjang")
	}

	http.Redirect(w, r, "/carts", http.StatusSeeOther)
}
