package controllers

import (
	"net/http"

	"github.com/gandarasa/goantar/app/models"
	"github.com/gorilla/mux"
)

// GET /
// Beranda customer: daftar warung yang buka + menu terbaru
func (server *Server) Home(w http.ResponseWriter, r *http.Request) {
	ren := userRender()
	user := server.CurrentUser(w, r)

	merchantModel := models.Merchant{}
	merchants, err := merchantModel.GetOpenMerchants(server.DB)
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data warung")
	}

	menuModel := models.MenuItem{}
	latestMenu, err := menuModel.GetLatestMenuItems(server.DB, 8)
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data menu")
	}

	_ = ren.HTML(w, http.StatusOK, "home", map[string]interface{}{
		"user":       user,
		"isAdmin":    IsAdminUser(user),
		"merchants":  merchants,
		"latestMenu": latestMenu,
		"cartCount":  server.GetCartCount(w, r),
		"success":    GetFlash(w, r, "success"),
		"error":      GetFlash(w, r, "error"),
	})
}

// GET /warung/{slug}
func (server *Server) MerchantShow(w http.ResponseWriter, r *http.Request) {
	ren := userRender()
	user := server.CurrentUser(w, r)

	slug := mux.Vars(r)["slug"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindBySlug(server.DB, slug)
	if err != nil {
		SetFlash(w, r, "error", "Warung tidak ditemukan")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// warung yang belum approved / sudah diputus tidak boleh tampil ke customer
	if merchant.Status != models.PartnerStatusApproved {
		SetFlash(w, r, "error", "Warung tidak tersedia")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_ = ren.HTML(w, http.StatusOK, "merchant", map[string]interface{}{
		"user":      user,
		"isAdmin":   IsAdminUser(user),
		"merchant":  merchant,
		"menuItems": merchant.MenuItems,
		"cartCount": server.GetCartCount(w, r),
		"success":   GetFlash(w, r, "success"),
		"error":     GetFlash(w, r, "error"),
	})
}
