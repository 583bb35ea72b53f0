package model

// DokumenType enumerates the two kinds of artifacts a document row may
// describe: an uploaded file reference or an external URL.
type DokumenType string

const (
	DokumenTypeFile DokumenType = "file"
	DokumenTypeURL  DokumenType = "url"
)

// Valid reports whether t is one of the known document types.
func (t DokumenType) Valid() bool {
	return t == DokumenTypeFile || t == DokumenTypeURL
}

// Dokumen is the metadata record for a file-or-URL artifact owned by a
// lecturer. Only metadata is persisted; no file content is stored.
type Dokumen struct {
	ID          int         `json:"id"`
	NIP         string      `json:"nip"`
	TypeDokumen DokumenType `json:"type_dokumen"`
	NamaDokumen string      `json:"nama_dokumen"`
	NamaFile    string      `json:"nama_file"`
}
