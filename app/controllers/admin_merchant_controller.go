package controllers

import (
	"errors"
	"net/http"

	"github.com/gandarasa/goantar/app/models"
	"github.com/gorilla/mux"
)

// GET /admin/merchants
func (server *Server) AdminMerchantsIndex(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	merchantModel := models.Merchant{}
	merchants, err := merchantModel.GetMerchants(server.DB)
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data merchant")
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_merchants", map[string]interface{}{
		"merchants": merchants,
		"user":      admin,
		"isAdmin":   true,
		"success":   GetFlash(w, r, "success"),
		"error":     GetFlash(w, r, "error"),
	})
}

// GET /admin/merchants/{id}
func (server *Server) AdminMerchantsShow(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Merchant tidak ditemukan")
		http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
		return
	}

	var orders []models.Order
	_ = server.DB.
		Preload("Driver").
		Where("merchant_id = ?", merchant.ID).
		Order("created_at desc").
		Limit(20).
		Find(&orders).Error

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_merchant_show", map[string]interface{}{
		"merchant": merchant,
		"orders":   orders,
		"user":     admin,
		"isAdmin":  true,
		"success":  GetFlash(w, r, "success"),
		"error":    GetFlash(w, r, "error"),
	})
}

// POST /admin/merchants/{id}/approve
func (server *Server) AdminMerchantApprove(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Merchant tidak ditemukan")
		http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
		return
	}

	if err := merchant.Approve(server.DB); err != nil {
		SetFlash(w, r, "error", "Merchant tidak bisa diverifikasi dari status "+merchant.Status.StatusLabel())
		http.Redirect(w, r, "/admin/merchants/"+merchant.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Merchant "+merchant.Name+" diverifikasi dan buka")
	http.Redirect(w, r, "/admin/merchants/"+merchant.ID, http.StatusSeeOther)
}

// POST /admin/merchants/{id}/suspend
func (server *Server) AdminMerchantSuspend(w http.ResponseWriter, r *http.Request) {
	server.merchantTransition(w, r, models.PartnerActionSuspend, "Merchant ditangguhkan, tokonya ditutup sementara")
}

// POST /admin/merchants/{id}/reactivate
func (server *Server) AdminMerchantReactivate(w http.ResponseWriter, r *http.Request) {
	server.merchantTransition(w, r, models.PartnerActionReactivate, "Merchant diaktifkan kembali")
}

func (server *Server) merchantTransition(w http.ResponseWriter, r *http.Request, action models.PartnerAction, successMsg string) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Merchant tidak ditemukan")
		http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
		return
	}

	if err := merchant.ApplyTransition(server.DB, action); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			SetFlash(w, r, "error", "Aksi tidak valid untuk status "+merchant.Status.StatusLabel())
		} else {
			SetFlash(w, r, "error", "Gagal menyimpan perubahan status")
		}
		http.Redirect(w, r, "/admin/merchants/"+merchant.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", successMsg)
	http.Redirect(w, r, "/admin/merchants/"+merchant.ID, http.StatusSeeOther)
}

// GET /admin/merchants/{id}/terminate
func (server *Server) AdminMerchantTerminateForm(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Merchant tidak ditemukan")
		http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
		return
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_terminate_confirm", map[string]interface{}{
		"partnerName":    merchant.Name,
		"partnerType":    "merchant",
		"expectedPhrase": models.TerminationPhrase(merchant.Name),
		"actionURL":      "/admin/merchants/" + merchant.ID + "/terminate",
		"backURL":        "/admin/merchants/" + merchant.ID,
		"user":           admin,
		"isAdmin":        true,
		"error":          GetFlash(w, r, "error"),
	})
}

// POST /admin/merchants/{id}/terminate
func (server *Server) AdminMerchantTerminate(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	merchantModel := models.Merchant{}
	merchant, err := merchantModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Merchant tidak ditemukan")
		http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
		return
	}

	challenge := models.NewTerminationChallenge(merchant.Name, r.FormValue("confirmation_phrase"))
	if !challenge.IsConfirmed() {
		SetFlash(w, r, "error", "Frasa konfirmasi tidak cocok. Ketik persis: "+challenge.ExpectedPhrase)
		http.Redirect(w, r, "/admin/merchants/"+merchant.ID+"/terminate", http.StatusSeeOther)
		return
	}

	// TODO: simpan siapa yang konfirmasi + alasan pemutusan untuk audit;
	// field reason di form sekarang belum ditulis ke mana-mana
	if err := merchant.ApplyTransition(server.DB, models.PartnerActionTerminate); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			SetFlash(w, r, "error", "Kemitraan tidak bisa diputus dari status "+merchant.Status.StatusLabel())
		} else {
			SetFlash(w, r, "error", "Gagal memutus kemitraan")
		}
		http.Redirect(w, r, "/admin/merchants/"+merchant.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Kemitraan dengan "+merchant.Name+" diputus permanen")
	http.Redirect(w, r, "/admin/merchants", http.StatusSeeOther)
}
