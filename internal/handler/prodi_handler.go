package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/repodosen/repositori-backend/internal/response"
	"github.com/repodosen/repositori-backend/internal/service"
	"github.com/repodosen/repositori-backend/internal/validator"
)

type ProdiHandler struct {
	prodiService service.ProdiService
}

func NewProdiHandler(prodiService service.ProdiService) *ProdiHandler {
	return &ProdiHandler{prodiService: prodiService}
}

type prodiRequest struct {
	KodeProdi string `json:"kode_prodi" binding:"required"`
	NamaProdi string `json:"nama_prodi" binding:"required"`
}

func (h *ProdiHandler) GetAll(c *gin.Context) {
	list, err := h.prodiService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if len(list) == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNoProdi)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"prodi": list})
}

func (h *ProdiHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	prodi, err := h.prodiService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrProdiNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"prodi": prodi})
}

func (h *ProdiHandler) Create(c *gin.Context) {
	var req prodiRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	prodi, err := h.prodiService.Create(c.Request.Context(), req.KodeProdi, req.NamaProdi)
	if err != nil {
		failProdiWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Prodi berhasil dibuat.",
		"prodi":   prodi,
	})
}

func (h *ProdiHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req prodiRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	prodi, err := h.prodiService.Update(c.Request.Context(), id, req.KodeProdi, req.NamaProdi)
	if err != nil {
		failProdiWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Prodi berhasil diperbarui.",
		"prodi":   prodi,
	})
}

func (h *ProdiHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.prodiService.Delete(c.Request.Context(), id); err != nil {
		failProdiWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Prodi berhasil dihapus."})
}

// failProdiWrite maps domain errors from prodi mutations onto HTTP statuses.
func failProdiWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrProdiNotFound)
	case errors.Is(err, service.ErrDuplicateKey):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrStillReferenced):
		response.Fail(c, http.StatusConflict, response.ErrStillReferenced)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
