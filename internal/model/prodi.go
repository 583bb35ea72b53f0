package model

// Prodi represents a program of study (program studi).
// KodeProdi is unique across all rows.
type Prodi struct {
	ID        int    `json:"id"`
	KodeProdi string `json:"kode_prodi"`
	NamaProdi string `json:"nama_prodi"`
}
