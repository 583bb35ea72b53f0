package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrInvalidID        ErrCode = "INVALID_ID"
	ErrInvalidTipe      ErrCode = "INVALID_TYPE_DOKUMEN"
	ErrMissingReference ErrCode = "REFERENCED_DATA_MISSING"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrDosenNotFound   ErrCode = "DOSEN_NOT_FOUND"
	ErrDokumenNotFound ErrCode = "DOKUMEN_NOT_FOUND"
	ErrProdiNotFound   ErrCode = "PRODI_NOT_FOUND"
	ErrNoDosen         ErrCode = "NO_DOSEN_FOUND"
	ErrNoDokumen       ErrCode = "NO_DOKUMEN_FOUND"
	ErrNoProdi         ErrCode = "NO_PRODI_FOUND"
	ErrConflict        ErrCode = "CONFLICT"
	ErrStillReferenced ErrCode = "DEPENDENCY_EXISTS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Nama lengkap atau NIP salah."
	case ErrTokenRequired:
		return "Token autentikasi diperlukan."
	case ErrTokenInvalid:
		return "Token autentikasi tidak valid atau kedaluwarsa."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validasi gagal. Silakan periksa masukan Anda."
	case ErrInvalidID:
		return "Format ID tidak valid."
	case ErrInvalidTipe:
		return "type_dokumen harus 'file' atau 'url'."
	case ErrMissingReference:
		return "Data yang direferensikan tidak ditemukan."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrDosenNotFound:
		return "Data dosen tidak ditemukan."
	case ErrDokumenNotFound:
		return "Dokumen tidak ditemukan."
	case ErrProdiNotFound:
		return "Program studi tidak ditemukan."
	case ErrNoDosen:
		return "Belum ada data dosen."
	case ErrNoDokumen:
		return "Belum ada dokumen."
	case ErrNoProdi:
		return "Belum ada program studi."
	case ErrConflict:
		return "Data dengan kunci yang sama sudah ada."
	case ErrStillReferenced:
		return "Data tidak dapat dihapus karena masih digunakan oleh data lain."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Terlalu banyak permintaan. Silakan coba lagi nanti."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Terjadi kesalahan server internal."
	default:
		return "Terjadi kesalahan yang tidak terduga."
	}
}
