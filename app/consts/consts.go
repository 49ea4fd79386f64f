package consts

// Metode pembayaran order
const (
	PaymentMethodCOD      = "cod"
	PaymentMethodTransfer = "transfer"
	PaymentMethodWallet   = "wallet"
)

// Status pembayaran order
const (
	OrderPaymentStatusUnpaid = "unpaid"
	OrderPaymentStatusPaid   = "paid"
)

// Status pengantaran order
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusPreparing  = "preparing"
	DeliveryStatusDelivering = "delivering"
	DeliveryStatusDelivered  = "delivered"
	DeliveryStatusCompleted  = "completed"
	DeliveryStatusCancelled  = "cancelled"
)

// ServiceFeePercent: potongan jasa aplikasi dari subtotal item (persen)
const ServiceFeePercent = 10

// DefaultCashLimit: batas default setoran tunai harian per driver (rupiah),
// bisa dioverride lewat env COD_CASH_LIMIT
const DefaultCashLimit int64 = 150000
