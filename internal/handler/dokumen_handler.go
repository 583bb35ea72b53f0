package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/response"
	"github.com/repodosen/repositori-backend/internal/service"
	"github.com/repodosen/repositori-backend/internal/validator"
)

type DokumenHandler struct {
	dokumenService service.DokumenService
}

func NewDokumenHandler(dokumenService service.DokumenService) *DokumenHandler {
	return &DokumenHandler{dokumenService: dokumenService}
}

// Create and update share one field set; update is keyed by the path id,
// consistent with get and delete.
type dokumenRequest struct {
	NIP         string `json:"nip" binding:"required"`
	TypeDokumen string `json:"type_dokumen" binding:"required,oneof=file url"`
	NamaDokumen string `json:"nama_dokumen" binding:"required"`
	NamaFile    string `json:"nama_file" binding:"required"`
}

func (h *DokumenHandler) GetAll(c *gin.Context) {
	list, err := h.dokumenService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if len(list) == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNoDokumen)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dokumen": list})
}

func (h *DokumenHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	dokumen, err := h.dokumenService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrDokumenNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dokumen": dokumen})
}

func (h *DokumenHandler) Create(c *gin.Context) {
	var req dokumenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	dokumen, err := h.dokumenService.Create(
		c.Request.Context(),
		req.NIP,
		model.DokumenType(req.TypeDokumen),
		req.NamaDokumen,
		req.NamaFile,
	)
	if err != nil {
		failDokumenWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Dokumen berhasil dibuat.",
		"dokumen": dokumen,
	})
}

func (h *DokumenHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req dokumenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	dokumen, err := h.dokumenService.Update(
		c.Request.Context(),
		id,
		req.NIP,
		model.DokumenType(req.TypeDokumen),
		req.NamaDokumen,
		req.NamaFile,
	)
	if err != nil {
		failDokumenWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Dokumen berhasil diperbarui.",
		"dokumen": dokumen,
	})
}

func (h *DokumenHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.dokumenService.Delete(c.Request.Context(), id); err != nil {
		failDokumenWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Dokumen berhasil dihapus."})
}

// failDokumenWrite maps domain errors from dokumen mutations onto HTTP statuses.
func failDokumenWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrDokumenNotFound)
	case errors.Is(err, service.ErrInvalidValue):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidTipe)
	case errors.Is(err, service.ErrMissingReference):
		response.Fail(c, http.StatusBadRequest, response.ErrMissingReference)
	case errors.Is(err, service.ErrDuplicateKey):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
