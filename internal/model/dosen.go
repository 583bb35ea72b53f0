package model

// Dosen represents a lecturer, keyed by NIP (the national lecturer
// identification number).
type Dosen struct {
	NIP         string `json:"nip"`
	NamaLengkap string `json:"nama_lengkap"`
	ProdiID     int    `json:"prodi_id"`
}
