package models

import (
	"errors"
	"fmt"
)

// PartnerStatus: status kemitraan untuk driver dan merchant.
// Disimpan sebagai string di DB supaya gampang dibaca waktu debug.
type PartnerStatus string

const (
	PartnerStatusPending    PartnerStatus = "pending"
	PartnerStatusApproved   PartnerStatus = "approved"
	PartnerStatusSuspended  PartnerStatus = "suspended"
	PartnerStatusTerminated PartnerStatus = "terminated"
)

// PartnerAction: aksi lifecycle yang bisa diminta admin.
// Approve (pending -> approved) sengaja TIDAK ada di sini karena itu bagian
// alur verifikasi pendaftaran, bukan operasi lifecycle biasa.
type PartnerAction string

const (
	PartnerActionSuspend    PartnerAction = "suspend"
	PartnerActionReactivate PartnerAction = "reactivate"
	PartnerActionTerminate  PartnerAction = "terminate"
)

var ErrInvalidTransition = errors.New("invalid partner transition")

// Transition: validasi state machine kemitraan.
//
//	approved  --(suspend)-->    suspended
//	suspended --(reactivate)--> approved
//	approved  --(terminate)-->  terminated
//	suspended --(terminate)-->  terminated
//
// terminated bersifat final: semua aksi dari sana ditolak. Fungsi ini murni,
// tidak menyentuh DB; penulisan status + flag aktif dilakukan caller SETELAH
// transisi dinyatakan valid.
func Transition(current PartnerStatus, action PartnerAction) (PartnerStatus, error) {
	switch action {
	case PartnerActionSuspend:
		if current == PartnerStatusApproved {
			return PartnerStatusSuspended, nil
		}
	case PartnerActionReactivate:
		if current == PartnerStatusSuspended {
			return PartnerStatusApproved, nil
		}
	case PartnerActionTerminate:
		if current == PartnerStatusApproved || current == PartnerStatusSuspended {
			return PartnerStatusTerminated, nil
		}
	}

	return current, fmt.Errorf("%w: %s dari status %s", ErrInvalidTransition, action, current)
}

// StatusLabel: label Indonesia untuk badge di halaman admin
func (s PartnerStatus) StatusLabel() string {
	switch s {
	case PartnerStatusPending:
		return "Menunggu Verifikasi"
	case PartnerStatusApproved:
		return "Aktif"
	case PartnerStatusSuspended:
		return "Ditangguhkan"
	case PartnerStatusTerminated:
		return "Diputus"
	default:
		return "Unknown"
	}
}
