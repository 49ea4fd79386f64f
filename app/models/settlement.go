package models

import (
	"sort"

	"github.com/gandarasa/goantar/app/consts"
)

// SettlementStatus: klasifikasi setoran tunai per driver.
// Dibuat tipe tertutup (bukan string lepas) supaya switch-nya bisa dicek compiler.
type SettlementStatus int

const (
	// SettlementLunas: semua fee tunai sudah disetor
	SettlementLunas SettlementStatus = iota
	// SettlementParsial: sebagian sudah disetor
	SettlementParsial
	// SettlementBelumSetor: belum ada setoran sama sekali
	SettlementBelumSetor
)

func (s SettlementStatus) Label() string {
	switch s {
	case SettlementLunas:
		return "Lunas"
	case SettlementParsial:
		return "Parsial"
	case SettlementBelumSetor:
		return "Belum Setor"
	default:
		return "Unknown"
	}
}

// SettlementLine: satu baris ledger setoran COD per driver.
// Dihitung ulang setiap pass dari order hari ini, tidak pernah disimpan ke DB.
type SettlementLine struct {
	DriverID       string
	DriverName     string
	FeeCollected   int64
	FeeDeposited   int64
	FeeOutstanding int64
	Status         SettlementStatus
	OverLimit      bool

	// Anomaly: setoran tercatat lebih besar dari fee terkumpul (race input data).
	// Outstanding di-clamp ke 0, caller yang mencatat kejadian ini ke log.
	Anomaly bool
}

// SettlementTotals: angka ringkasan untuk kartu di halaman keuangan admin
type SettlementTotals struct {
	TotalFee         int64
	TotalDeposited   int64
	TotalOutstanding int64
	TransactionCount int
}

// ComputeSettlement mengelompokkan order tunai per driver dan menghitung
// fee terkumpul / tersetor / sisa, lalu mengurutkan dari hutang terbesar.
//
// Caller sudah memfilter orders ke jendela waktu yang diinginkan (biasanya
// hari ini) dan payment_method = cod; order tanpa driver dilewati di sini.
// Seluruh penjumlahan pakai rupiah bulat (int64), tanpa floating point.
// Fungsi ini murni: tidak ada I/O, hasil identik untuk input yang sama.
func ComputeSettlement(orders []Order, limit int64) []SettlementLine {
	type bucket struct {
		line  *SettlementLine
		order int // urutan kemunculan pertama, untuk sort yang stabil
	}

	buckets := map[string]*bucket{}
	var driverIDs []string

	for _, o := range orders {
		if o.DriverID == "" {
			continue
		}

		b, ok := buckets[o.DriverID]
		if !ok {
			b = &bucket{
				line: &SettlementLine{
					DriverID:   o.DriverID,
					DriverName: o.Driver.Name,
				},
				order: len(driverIDs),
			}
			buckets[o.DriverID] = b
			driverIDs = append(driverIDs, o.DriverID)
		}

		// baris rusak (fee kosong/negatif) dihitung nol, jangan gugurkan
		// driver lain gara-gara satu row jelek
		fee := o.ServiceFee
		if fee < 0 {
			fee = 0
		}

		b.line.FeeCollected += fee
		if o.PaymentStatus == consts.OrderPaymentStatusPaid && o.IsDeliveryDone() {
			b.line.FeeDeposited += fee
		}
	}

	lines := make([]SettlementLine, 0, len(driverIDs))
	for _, id := range driverIDs {
		line := *buckets[id].line

		line.FeeOutstanding, line.Anomaly = OutstandingFee(line.FeeCollected, line.FeeDeposited)

		switch {
		case line.FeeOutstanding == 0:
			line.Status = SettlementLunas
		case line.FeeDeposited == 0:
			line.Status = SettlementBelumSetor
		default:
			line.Status = SettlementParsial
		}

		line.OverLimit = line.FeeOutstanding > limit

		lines = append(lines, line)
	}

	// hutang terbesar di atas: admin lihat akun paling berisiko duluan.
	// SliceStable supaya urutan input dipertahankan kalau nilainya sama.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].FeeOutstanding > lines[j].FeeOutstanding
	})

	return lines
}

// OutstandingFee: sisa setoran = terkumpul dikurangi tersetor, di-clamp ke 0.
// Setoran melebihi fee terkumpul seharusnya tidak terjadi; kalau kejadian
// (race input data), jangan tampilkan hutang negatif — tandai sebagai anomali
// supaya bisa ditinjau, jangan gugurkan pass agregasi.
func OutstandingFee(collected, deposited int64) (outstanding int64, anomaly bool) {
	outstanding = collected - deposited
	if outstanding < 0 {
		return 0, true
	}

	return outstanding, false
}

// SumSettlement menjumlahkan ledger jadi angka ringkasan harian.
// TransactionCount dihitung dari orders (jumlah transaksi tunai), bukan
// jumlah baris ledger.
func SumSettlement(lines []SettlementLine, orders []Order) SettlementTotals {
	var totals SettlementTotals

	for _, l := range lines {
		totals.TotalFee += l.FeeCollected
		totals.TotalDeposited += l.FeeDeposited
		totals.TotalOutstanding += l.FeeOutstanding
	}

	for _, o := range orders {
		if o.DriverID != "" {
			totals.TransactionCount++
		}
	}

	return totals
}
