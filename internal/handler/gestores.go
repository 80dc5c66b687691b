package handler

import (
	"net/http"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/middleware"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type GestoresHandler struct{ svc service.GestorService }

func NewGestoresHandler(svc service.GestorService) *GestoresHandler {
	return &GestoresHandler{svc: svc}
}

func (h *GestoresHandler) BuscarPorID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GestoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Perfil returns the profile of the authenticated gestor.
func (h *GestoresHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.BuscarPorID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GestoresHandler) Atualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarGestorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
