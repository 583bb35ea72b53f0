package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/repodosen/repositori-backend/internal/response"
	"github.com/repodosen/repositori-backend/internal/service"
	"github.com/repodosen/repositori-backend/internal/validator"
)

type DosenHandler struct {
	dosenService service.DosenService
}

func NewDosenHandler(dosenService service.DosenService) *DosenHandler {
	return &DosenHandler{dosenService: dosenService}
}

type dosenCreateRequest struct {
	NIP         string `json:"nip" binding:"required"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	ProdiID     int    `json:"prodi_id" binding:"required"`
}

type dosenUpdateRequest struct {
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	ProdiID     int    `json:"prodi_id" binding:"required"`
}

func (h *DosenHandler) GetAll(c *gin.Context) {
	list, err := h.dosenService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	// Empty is a 404, not 200 with []: the API treats "no rows yet" as absence.
	if len(list) == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNoDosen)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dosen": list})
}

func (h *DosenHandler) Get(c *gin.Context) {
	dosen, err := h.dosenService.GetByNIP(c.Request.Context(), c.Param("nip"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrDosenNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dosen": dosen})
}

func (h *DosenHandler) Create(c *gin.Context) {
	var req dosenCreateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	dosen, err := h.dosenService.Create(c.Request.Context(), req.NIP, req.NamaLengkap, req.ProdiID)
	if err != nil {
		failDosenWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Dosen berhasil dibuat.",
		"dosen":   dosen,
	})
}

func (h *DosenHandler) Update(c *gin.Context) {
	var req dosenUpdateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	dosen, err := h.dosenService.Update(c.Request.Context(), c.Param("nip"), req.NamaLengkap, req.ProdiID)
	if err != nil {
		failDosenWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Dosen berhasil diperbarui.",
		"dosen":   dosen,
	})
}

func (h *DosenHandler) Delete(c *gin.Context) {
	if err := h.dosenService.Delete(c.Request.Context(), c.Param("nip")); err != nil {
		failDosenWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Dosen berhasil dihapus."})
}

// failDosenWrite maps domain errors from dosen mutations onto HTTP statuses.
func failDosenWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrDosenNotFound)
	case errors.Is(err, service.ErrDuplicateKey):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrMissingReference):
		response.Fail(c, http.StatusBadRequest, response.ErrMissingReference)
	case errors.Is(err, service.ErrStillReferenced):
		response.Fail(c, http.StatusConflict, response.ErrStillReferenced)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
