package models

// TerminationPhrasePrefix dipakai untuk membangun frasa konfirmasi
// pemutusan kemitraan. Case dan spasi harus persis.
const TerminationPhrasePrefix = "PUTUS KEMITRAAN "

// ConfirmationChallenge: gate konfirmasi untuk aksi destruktif.
// Hidup hanya selama dialog terminate terbuka, tidak pernah disimpan.
type ConfirmationChallenge struct {
	ExpectedPhrase string
	TypedPhrase    string
}

// TerminationPhrase: frasa yang wajib diketik admin sebelum memutus kemitraan,
// contoh: "PUTUS KEMITRAAN Warung Sejahtera"
func TerminationPhrase(partnerName string) string {
	return TerminationPhrasePrefix + partnerName
}

func NewTerminationChallenge(partnerName, typed string) ConfirmationChallenge {
	return ConfirmationChallenge{
		ExpectedPhrase: TerminationPhrase(partnerName),
		TypedPhrase:    typed,
	}
}

// IsConfirmed: true hanya kalau ketikan sama persis dengan frasa yang diminta.
// Sengaja tanpa TrimSpace / case folding supaya tidak bisa lolos karena
// autocomplete atau salah ketik.
func (c ConfirmationChallenge) IsConfirmed() bool {
	return c.TypedPhrase == c.ExpectedPhrase
}
