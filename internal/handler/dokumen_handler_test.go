package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodosen/repositori-backend/internal/model"
)

func TestDokumenCreateReturns201(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPost, "/document", gin.H{
		"nip": "ADM", "type_dokumen": "file",
		"nama_dokumen": "Sertifikat", "nama_file": "sertifikat.pdf",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	var dokumen model.Dokumen
	require.NoError(t, json.Unmarshal(resp.Data["dokumen"], &dokumen))
	assert.Equal(t, 1, dokumen.ID)
	assert.Equal(t, model.DokumenTypeFile, dokumen.TypeDokumen)
}

func TestDokumenCreateRejectsUnknownType(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPost, "/document", gin.H{
		"nip": "ADM", "type_dokumen": "pdf",
		"nama_dokumen": "Sertifikat", "nama_file": "sertifikat.pdf",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "type_dokumen")
	assert.Empty(t, e.store.dokumen, "a rejected dokumen must never be persisted")
}

func TestDokumenCreateDanglingNIP(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPost, "/document", gin.H{
		"nip": "D404", "type_dokumen": "url",
		"nama_dokumen": "Publikasi", "nama_file": "https://example.com/paper",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "REFERENCED_DATA_MISSING", resp.Error.Code)
}

func TestDokumenListEmpty(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodGet, "/document", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_DOKUMEN_FOUND", resp.Error.Code)
}

func TestDokumenUpdateKeyedByID(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	e.seedDosen("D001", "Ada", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPost, "/document", gin.H{
		"nip": "ADM", "type_dokumen": "file",
		"nama_dokumen": "Sertifikat", "nama_file": "sertifikat.pdf",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The path id selects the row; the body may move it to another dosen.
	rec = e.do(t, http.MethodPut, "/document/1", gin.H{
		"nip": "D001", "type_dokumen": "url",
		"nama_dokumen": "Publikasi", "nama_file": "https://example.com/paper",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored := e.store.dokumen[1]
	assert.Equal(t, "D001", stored.NIP)
	assert.Equal(t, model.DokumenTypeURL, stored.TypeDokumen)
	assert.Equal(t, "Publikasi", stored.NamaDokumen)
}

func TestDokumenUpdateMissing(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPut, "/document/42", gin.H{
		"nip": "ADM", "type_dokumen": "file",
		"nama_dokumen": "Sertifikat", "nama_file": "sertifikat.pdf",
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDokumenDeleteThenGet(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("ADM", "Admin", 1)
	token := e.login(t, "Admin", "ADM")

	rec := e.do(t, http.MethodPost, "/document", gin.H{
		"nip": "ADM", "type_dokumen": "file",
		"nama_dokumen": "Sertifikat", "nama_file": "sertifikat.pdf",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, http.MethodDelete, "/document/1", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/document/1", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(t, http.MethodDelete, "/document/1", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
