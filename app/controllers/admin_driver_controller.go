package controllers

import (
	"errors"
	"net/http"

	"github.com/gandarasa/goantar/app/models"
	"github.com/gorilla/mux"
)

// GET /admin/drivers
func (server *Server) AdminDriversIndex(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	driverModel := models.Driver{}
	drivers, err := driverModel.GetDrivers(server.DB)
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data driver")
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_drivers", map[string]interface{}{
		"drivers": drivers,
		"user":    admin,
		"isAdmin": true,
		"success": GetFlash(w, r, "success"),
		"error":   GetFlash(w, r, "error"),
	})
}

// GET /admin/drivers/{id}
func (server *Server) AdminDriversShow(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	driverModel := models.Driver{}
	driver, err := driverModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Driver tidak ditemukan")
		http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
		return
	}

	// riwayat order terakhir driver ini (termasuk setelah diputus,
	// riwayat tetap bisa dilihat)
	var orders []models.Order
	_ = server.DB.
		Preload("Merchant").
		Where("driver_id = ?", driver.ID).
		Order("created_at desc").
		Limit(20).
		Find(&orders).Error

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_driver_show", map[string]interface{}{
		"driver":  driver,
		"orders":  orders,
		"user":    admin,
		"isAdmin": true,
		"success": GetFlash(w, r, "success"),
		"error":   GetFlash(w, r, "error"),
	})
}

// POST /admin/drivers/{id}/approve
// Verifikasi pendaftaran: hanya dari status pending
func (server *Server) AdminDriverApprove(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	driverModel := models.Driver{}
	driver, err := driverModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Driver tidak ditemukan")
		http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
		return
	}

	if err := driver.Approve(server.DB); err != nil {
		SetFlash(w, r, "error", "Driver tidak bisa diverifikasi dari status "+driver.Status.StatusLabel())
		http.Redirect(w, r, "/admin/drivers/"+driver.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Driver "+driver.Name+" diverifikasi dan aktif")
	http.Redirect(w, r, "/admin/drivers/"+driver.ID, http.StatusSeeOther)
}

// POST /admin/drivers/{id}/suspend
func (server *Server) AdminDriverSuspend(w http.ResponseWriter, r *http.Request) {
	server.driverTransition(w, r, models.PartnerActionSuspend, "Driver ditangguhkan, tidak akan ditawari order baru")
}

// POST /admin/drivers/{id}/reactivate
func (server *Server) AdminDriverReactivate(w http.ResponseWriter, r *http.Request) {
	server.driverTransition(w, r, models.PartnerActionReactivate, "Driver diaktifkan kembali")
}

func (server *Server) driverTransition(w http.ResponseWriter, r *http.Request, action models.PartnerAction, successMsg string) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	driverModel := models.Driver{}
	driver, err := driverModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Driver tidak ditemukan")
		http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
		return
	}

	if err := driver.ApplyTransition(server.DB, action); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			SetFlash(w, r, "error", "Aksi tidak valid untuk status "+driver.Status.StatusLabel())
		} else {
			SetFlash(w, r, "error", "Gagal menyimpan perubahan status")
		}
		http.Redirect(w, r, "/admin/drivers/"+driver.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", successMsg)
	http.Redirect(w, r, "/admin/drivers/"+driver.ID, http.StatusSeeOther)
}

// GET /admin/drivers/{id}/terminate
// Form konfirmasi: admin harus mengetik frasa persis sebelum memutus kemitraan
func (server *Server) AdminDriverTerminateForm(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	driverModel := models.Driver{}
	driver, err := driverModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Driver tidak ditemukan")
		http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
		return
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_terminate_confirm", map[string]interface{}{
		"partnerName":    driver.Name,
		"partnerType":    "driver",
		"expectedPhrase": models.TerminationPhrase(driver.Name),
		"actionURL":      "/admin/drivers/" + driver.ID + "/terminate",
		"backURL":        "/admin/drivers/" + driver.ID,
		"user":           admin,
		"isAdmin":        true,
		"error":          GetFlash(w, r, "error"),
	})
}

// POST /admin/drivers/{id}/terminate
func (server *Server) AdminDriverTerminate(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	id := mux.Vars(r)["id"]

	driverModel := models.Driver{}
	driver, err := driverModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Driver tidak ditemukan")
		http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
		return
	}

	// gate konfirmasi dicek sebelum transisi; kalau tidak lolos, DB tidak disentuh
	challenge := models.NewTerminationChallenge(driver.Name, r.FormValue("confirmation_phrase"))
	if !challenge.IsConfirmed() {
		SetFlash(w, r, "error", "Frasa konfirmasi tidak cocok. Ketik persis: "+challenge.ExpectedPhrase)
		http.Redirect(w, r, "/admin/drivers/"+driver.ID+"/terminate", http.StatusSeeOther)
		return
	}

	// TODO: simpan siapa yang konfirmasi + alasan pemutusan untuk audit;
	// field reason di form sekarang belum ditulis ke mana-mana
	if err := driver.ApplyTransition(server.DB, models.PartnerActionTerminate); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			SetFlash(w, r, "error", "Kemitraan tidak bisa diputus dari status "+driver.Status.StatusLabel())
		} else {
			SetFlash(w, r, "error", "Gagal memutus kemitraan")
		}
		http.Redirect(w, r, "/admin/drivers/"+driver.ID, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Kemitraan dengan "+driver.Name+" diputus permanen")
	http.Redirect(w, r, "/admin/drivers", http.StatusSeeOther)
}
