package models

import (
	"reflect"
	"testing"

	"github.com/gandarasa/goantar/app/consts"
)

func codOrder(driverID, driverName string, fee int64, paid bool, deliveryStatus string) Order {
	paymentStatus := consts.OrderPaymentStatusUnpaid
	if paid {
		paymentStatus = consts.OrderPaymentStatusPaid
	}

	return Order{
		DriverID:       driverID,
		Driver:         Driver{ID: driverID, Name: driverName},
		ServiceFee:     fee,
		PaymentMethod:  consts.PaymentMethodCOD,
		PaymentStatus:  paymentStatus,
		DeliveryStatus: deliveryStatus,
	}
}

func TestComputeSettlement_PartialDeposit(t *testing.T) {
	// driver D: tiga order tunai, dua sudah paid+delivered, satu belum
	orders := []Order{
		codOrder("d1", "Driver D", 20000, true, consts.DeliveryStatusDelivered),
		codOrder("d1", "Driver D", 30000, true, consts.DeliveryStatusCompleted),
		codOrder("d1", "Driver D", 25000, false, consts.DeliveryStatusDelivering),
	}

	lines := ComputeSettlement(orders, 150000)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}

	line := lines[0]
	if line.FeeCollected != 75000 {
		t.Errorf("FeeCollected = %d, want 75000", line.FeeCollected)
	}
	if line.FeeDeposited != 50000 {
		t.Errorf("FeeDeposited = %d, want 50000", line.FeeDeposited)
	}
	if line.FeeOutstanding != 25000 {
		t.Errorf("FeeOutstanding = %d, want 25000", line.FeeOutstanding)
	}
	if line.Status != SettlementParsial {
		t.Errorf("Status = %s, want Parsial", line.Status.Label())
	}
	if line.OverLimit {
		t.Error("OverLimit = true, want false (25000 <= 150000)")
	}
}

func TestComputeSettlement_OverLimit(t *testing.T) {
	// driver E: satu order tunai besar, belum disetor sama sekali
	orders := []Order{
		codOrder("e1", "Driver E", 200000, false, consts.DeliveryStatusDelivering),
	}

	lines := ComputeSettlement(orders, 150000)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}

	line := lines[0]
	if line.Status != SettlementBelumSetor {
		t.Errorf("Status = %s, want Belum Setor", line.Status.Label())
	}
	if !line.OverLimit {
		t.Error("OverLimit = false, want true (200000 > 150000)")
	}
}

func TestComputeSettlement_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		orders []Order
		want   SettlementStatus
	}{
		{
			"lunas: semua paid dan delivered",
			[]Order{
				codOrder("a", "A", 10000, true, consts.DeliveryStatusDelivered),
				codOrder("a", "A", 15000, true, consts.DeliveryStatusCompleted),
			},
			SettlementLunas,
		},
		{
			"belum setor: tidak ada yang paid",
			[]Order{
				codOrder("a", "A", 10000, false, consts.DeliveryStatusDelivering),
			},
			SettlementBelumSetor,
		},
		{
			"parsial: sebagian paid",
			[]Order{
				codOrder("a", "A", 10000, true, consts.DeliveryStatusDelivered),
				codOrder("a", "A", 15000, false, consts.DeliveryStatusDelivering),
			},
			SettlementParsial,
		},
		{
			"paid tapi belum delivered belum dihitung setor",
			[]Order{
				codOrder("a", "A", 10000, true, consts.DeliveryStatusDelivering),
			},
			SettlementBelumSetor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := ComputeSettlement(tt.orders, 150000)
			if len(lines) != 1 {
				t.Fatalf("len(lines) = %d, want 1", len(lines))
			}
			if lines[0].Status != tt.want {
				t.Errorf("Status = %s, want %s", lines[0].Status.Label(), tt.want.Label())
			}
		})
	}
}

func TestComputeSettlement_OutstandingInvariant(t *testing.T) {
	orders := []Order{
		codOrder("a", "A", 10000, true, consts.DeliveryStatusDelivered),
		codOrder("a", "A", 20000, false, consts.DeliveryStatusDelivering),
		codOrder("b", "B", 5000, true, consts.DeliveryStatusCompleted),
		codOrder("c", "C", 7000, false, consts.DeliveryStatusPending),
	}

	for _, line := range ComputeSettlement(orders, 150000) {
		want := line.FeeCollected - line.FeeDeposited
		if want < 0 {
			want = 0
		}
		if line.FeeOutstanding != want {
			t.Errorf("driver %s: FeeOutstanding = %d, want %d", line.DriverID, line.FeeOutstanding, want)
		}
		if line.FeeOutstanding < 0 {
			t.Errorf("driver %s: FeeOutstanding negatif", line.DriverID)
		}
	}
}

func TestComputeSettlement_SortedByOutstandingDescStable(t *testing.T) {
	orders := []Order{
		codOrder("a", "A", 10000, false, consts.DeliveryStatusDelivering),
		codOrder("b", "B", 50000, false, consts.DeliveryStatusDelivering),
		// c dan d sama-sama 30000 outstanding; c muncul duluan di input
		codOrder("c", "C", 30000, false, consts.DeliveryStatusDelivering),
		codOrder("d", "D", 30000, false, consts.DeliveryStatusDelivering),
	}

	lines := ComputeSettlement(orders, 150000)

	var gotIDs []string
	for _, l := range lines {
		gotIDs = append(gotIDs, l.DriverID)
	}

	wantIDs := []string{"b", "c", "d", "a"}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("urutan ledger = %v, want %v", gotIDs, wantIDs)
	}
}

func TestComputeSettlement_Idempotent(t *testing.T) {
	orders := []Order{
		codOrder("a", "A", 10000, true, consts.DeliveryStatusDelivered),
		codOrder("b", "B", 50000, false, consts.DeliveryStatusDelivering),
		codOrder("a", "A", 20000, false, consts.DeliveryStatusPending),
	}

	first := ComputeSettlement(orders, 150000)
	second := ComputeSettlement(orders, 150000)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("dua pass di input yang sama beda hasil:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestComputeSettlement_SkipsOrdersWithoutDriver(t *testing.T) {
	orders := []Order{
		codOrder("", "", 10000, false, consts.DeliveryStatusPending),
		codOrder("a", "A", 20000, false, consts.DeliveryStatusDelivering),
	}

	lines := ComputeSettlement(orders, 150000)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1 (order tanpa driver harus dilewati)", len(lines))
	}
	if lines[0].DriverID != "a" {
		t.Errorf("DriverID = %q, want %q", lines[0].DriverID, "a")
	}
	if lines[0].FeeCollected != 20000 {
		t.Errorf("FeeCollected = %d, want 20000", lines[0].FeeCollected)
	}
}

func TestComputeSettlement_NegativeFeeCountsAsZero(t *testing.T) {
	orders := []Order{
		codOrder("a", "A", -5000, false, consts.DeliveryStatusPending),
		codOrder("a", "A", 20000, false, consts.DeliveryStatusDelivering),
		codOrder("b", "B", 10000, false, consts.DeliveryStatusDelivering),
	}

	lines := ComputeSettlement(orders, 150000)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (row jelek tidak boleh menggugurkan ledger)", len(lines))
	}
	// a tetap di ledger dengan fee negatif dihitung nol
	if lines[0].DriverID != "a" || lines[0].FeeCollected != 20000 {
		t.Errorf("baris pertama = %+v, want driver a dengan FeeCollected 20000", lines[0])
	}
}

func TestOutstandingFee_ClampsNegative(t *testing.T) {
	tests := []struct {
		name            string
		collected       int64
		deposited       int64
		wantOutstanding int64
		wantAnomaly     bool
	}{
		{"normal", 75000, 50000, 25000, false},
		{"lunas", 50000, 50000, 0, false},
		{"setoran melebihi fee terkumpul", 50000, 60000, 0, true},
		{"kosong", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outstanding, anomaly := OutstandingFee(tt.collected, tt.deposited)
			if outstanding != tt.wantOutstanding {
				t.Errorf("outstanding = %d, want %d", outstanding, tt.wantOutstanding)
			}
			if anomaly != tt.wantAnomaly {
				t.Errorf("anomaly = %v, want %v", anomaly, tt.wantAnomaly)
			}
		})
	}
}

func TestSumSettlement(t *testing.T) {
	orders := []Order{
		codOrder("a", "A", 20000, true, consts.DeliveryStatusDelivered),
		codOrder("a", "A", 30000, false, consts.DeliveryStatusDelivering),
		codOrder("b", "B", 50000, false, consts.DeliveryStatusDelivering),
		codOrder("", "", 5000, false, consts.DeliveryStatusPending), // tanpa driver
	}

	lines := ComputeSettlement(orders, 150000)
	totals := SumSettlement(lines, orders)

	if totals.TotalFee != 100000 {
		t.Errorf("TotalFee = %d, want 100000", totals.TotalFee)
	}
	if totals.TotalDeposited != 20000 {
		t.Errorf("TotalDeposited = %d, want 20000", totals.TotalDeposited)
	}
	if totals.TotalOutstanding != 80000 {
		t.Errorf("TotalOutstanding = %d, want 80000", totals.TotalOutstanding)
	}
	if totals.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3 (order tanpa driver tidak dihitung)", totals.TransactionCount)
	}
}

func TestSettlementStatusLabels(t *testing.T) {
	if SettlementLunas.Label() != "Lunas" {
		t.Errorf("Lunas label = %q", SettlementLunas.Label())
	}
	if SettlementParsial.Label() != "Parsial" {
		t.Errorf("Parsial label = %q", SettlementParsial.Label())
	}
	if SettlementBelumSetor.Label() != "Belum Setor" {
		t.Errorf("Belum Setor label = %q", SettlementBelumSetor.Label())
	}
}
