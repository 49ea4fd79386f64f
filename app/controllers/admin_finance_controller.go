package controllers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gandarasa/goantar/app/models"
	"github.com/xuri/excelize/v2"
)

// loadTodaySettlement: satu pass agregasi setoran COD hari ini.
// Error query diteruskan apa adanya ke caller — halaman menampilkan state
// kosong + pesan retry, bukan data basi separuh.
func (server *Server) loadTodaySettlement() ([]models.SettlementLine, []models.Order, models.SettlementTotals, error) {
	orderModel := models.Order{}
	orders, err := orderModel.CashOrdersForDay(server.DB, time.Now())
	if err != nil {
		return nil, nil, models.SettlementTotals{}, err
	}

	lines := models.ComputeSettlement(orders, server.AppConfig.CashLimit)

	// anomali setoran (deposit > fee terkumpul) dicatat di sini,
	// bukan di dalam agregator, supaya agregatornya tetap murni
	for _, line := range lines {
		if line.Anomaly {
			log.Printf("setoran driver %s (%s) melebihi fee terkumpul, perlu ditinjau", line.DriverName, line.DriverID)
		}
	}

	return lines, orders, models.SumSettlement(lines, orders), nil
}

// GET /admin/finance/cod
// Ledger setoran tunai per driver untuk hari ini, hutang terbesar di atas
func (server *Server) AdminCodSettlement(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	ren := adminRender()

	lines, _, totals, err := server.loadTodaySettlement()
	if err != nil {
		// state kosong + retry, jangan render ledger separuh
		_ = ren.HTML(w, http.StatusOK, "admin_finance_cod", map[string]interface{}{
			"user":       admin,
			"isAdmin":    true,
			"lines":      []models.SettlementLine{},
			"totals":     models.SettlementTotals{},
			"cashLimit":  server.AppConfig.CashLimit,
			"loadFailed": true,
			"error":      []string{"Gagal mengambil data order hari ini. Coba muat ulang."},
		})
		return
	}

	_ = ren.HTML(w, http.StatusOK, "admin_finance_cod", map[string]interface{}{
		"user":      admin,
		"isAdmin":   true,
		"lines":     lines,
		"totals":    totals,
		"cashLimit": server.AppConfig.CashLimit,
		"success":   GetFlash(w, r, "success"),
		"error":     GetFlash(w, r, "error"),
	})
}

// GET /admin/finance/cod/export.csv
func (server *Server) AdminCodSettlementExportCSV(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	lines, _, totals, err := server.loadTodaySettlement()
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data setoran")
		http.Redirect(w, r, "/admin/finance/cod", http.StatusSeeOther)
		return
	}

	filename := "setoran-cod-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	_ = writer.Write([]string{"Driver", "Fee Terkumpul", "Fee Tersetor", "Sisa Setoran", "Status", "Over Limit"})
	for _, line := range lines {
		overLimit := ""
		if line.OverLimit {
			overLimit = "YA"
		}
		_ = writer.Write([]string{
			line.DriverName,
			strconv.FormatInt(line.FeeCollected, 10),
			strconv.FormatInt(line.FeeDeposited, 10),
			strconv.FormatInt(line.FeeOutstanding, 10),
			line.Status.Label(),
			overLimit,
		})
	}
	_ = writer.Write([]string{
		"TOTAL",
		strconv.FormatInt(totals.TotalFee, 10),
		strconv.FormatInt(totals.TotalDeposited, 10),
		strconv.FormatInt(totals.TotalOutstanding, 10),
		"",
		"",
	})

	writer.Flush()
}

// GET /admin/finance/cod/export.xlsx
func (server *Server) AdminCodSettlementExportXLSX(w http.ResponseWriter, r *http.Request) {
	admin := server.requireAdmin(w, r)
	if admin == nil {
		return
	}

	lines, _, totals, err := server.loadTodaySettlement()
	if err != nil {
		SetFlash(w, r, "error", "Gagal mengambil data setoran")
		http.Redirect(w, r, "/admin/finance/cod", http.StatusSeeOther)
		return
	}

	f := excelize.NewFile()
	sheet := "Setoran COD"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Setoran COD "+time.Now().Format("2006-01-02"))
	_ = f.SetCellValue(sheet, "A2", "Total Fee")
	_ = f.SetCellValue(sheet, "B2", totals.TotalFee)
	_ = f.SetCellValue(sheet, "A3", "Total Tersetor")
	_ = f.SetCellValue(sheet, "B3", totals.TotalDeposited)
	_ = f.SetCellValue(sheet, "A4", "Total Sisa")
	_ = f.SetCellValue(sheet, "B4", totals.TotalOutstanding)
	_ = f.SetCellValue(sheet, "A5", "Transaksi Tunai")
	_ = f.SetCellValue(sheet, "B5", totals.TransactionCount)

	_ = f.SetCellValue(sheet, "A7", "Driver")
	_ = f.SetCellValue(sheet, "B7", "Fee Terkumpul")
	_ = f.SetCellValue(sheet, "C7", "Fee Tersetor")
	_ = f.SetCellValue(sheet, "D7", "Sisa Setoran")
	_ = f.SetCellValue(sheet, "E7", "Status")
	_ = f.SetCellValue(sheet, "F7", "Over Limit")

	for i, line := range lines {
		row := i + 8
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.DriverName)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.FeeCollected)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.FeeDeposited)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.FeeOutstanding)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.Status.Label())
		if line.OverLimit {
			_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), "YA")
		}
	}

	filename := "setoran-cod-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := f.Write(w); err != nil {
		log.Println("export xlsx error:", err)
	}
}
