package models

import (
	"testing"

	"github.com/gandarasa/goantar/app/consts"
	"github.com/shopspring/decimal"
)

func TestServiceFeeFor(t *testing.T) {
	tests := []struct {
		subtotal string
		want     int64
	}{
		{"250000", 25000},
		{"75000", 7500},
		{"0", 0},
		{"12345", 1235}, // 1234.5 dibulatkan ke atas
	}

	for _, tt := range tests {
		subtotal, err := decimal.NewFromString(tt.subtotal)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q): %v", tt.subtotal, err)
		}

		if got := ServiceFeeFor(subtotal); got != tt.want {
			t.Errorf("ServiceFeeFor(%s) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func TestOrderIsDeliveryDone(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{consts.DeliveryStatusPending, false},
		{consts.DeliveryStatusPreparing, false},
		{consts.DeliveryStatusDelivering, false},
		{consts.DeliveryStatusDelivered, true},
		{consts.DeliveryStatusCompleted, true},
		{consts.DeliveryStatusCancelled, false},
	}

	for _, tt := range tests {
		o := Order{DeliveryStatus: tt.status}
		if got := o.IsDeliveryDone(); got != tt.want {
			t.Errorf("IsDeliveryDone(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestOrderIsPaid(t *testing.T) {
	o := Order{PaymentStatus: consts.OrderPaymentStatusUnpaid}
	if o.IsPaid() {
		t.Error("order unpaid tidak boleh IsPaid")
	}

	o.PaymentStatus = consts.OrderPaymentStatusPaid
	if !o.IsPaid() {
		t.Error("order paid harus IsPaid")
	}
}
