package controllers

import (
	"net/http"

	"github.com/gandarasa/goantar/app/models"
)

// GET /admin/dashboard
// Ringkasan harian: jumlah order, mitra, dan angka setoran COD hari ini
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	admin := s.requireAdmin(w, r)
	if admin == nil {
		return
	}

	var orderCount int64
	_ = s.DB.Model(&models.Order{}).Count(&orderCount).Error

	var pendingDrivers int64
	_ = s.DB.Model(&models.Driver{}).Where("status = ?", models.PartnerStatusPending).Count(&pendingDrivers).Error

	var pendingMerchants int64
	_ = s.DB.Model(&models.Merchant{}).Where("status = ?", models.PartnerStatusPending).Count(&pendingMerchants).Error

	lines, _, totals, err := s.loadTodaySettlement()
	if err != nil {
		SetFlash(w, r, "error", "Gagal memuat ringkasan setoran COD")
		lines = nil
		totals = models.SettlementTotals{}
	}

	// hitung driver yang lewat ambang utk badge peringatan
	overLimitCount := 0
	for _, line := range lines {
		if line.OverLimit {
			overLimitCount++
		}
	}

	ren := adminRender()
	_ = ren.HTML(w, http.StatusOK, "admin_dashboard", map[string]interface{}{
		"user":             admin,
		"isAdmin":          true,
		"orderCount":       orderCount,
		"pendingDrivers":   pendingDrivers,
		"pendingMerchants": pendingMerchants,
		"codTotals":        totals,
		"overLimitCount":   overLimitCount,
		"success":          GetFlash(w, r, "success"),
		"error":            GetFlash(w, r, "error"),
	})
}
