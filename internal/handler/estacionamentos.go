package handler

import (
	"net/http"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/middleware"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type EstacionamentosHandler struct{ svc service.EstacionamentoService }

func NewEstacionamentosHandler(svc service.EstacionamentoService) *EstacionamentosHandler {
	return &EstacionamentosHandler{svc: svc}
}

func (h *EstacionamentosHandler) Criar(c *gin.Context) {
	var req dto.CriarEstacionamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Criar(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EstacionamentosHandler) BuscarPorID(c *gin.Context) {
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

// Listar returns every lot: the cliente-facing search screen.
func (h *EstacionamentosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMeus returns only the lots of the authenticated gestor.
func (h *EstacionamentosHandler) ListarMeus(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListarPorGestor(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentosHandler) Atualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarEstacionamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Atualizar(c.Request.Context(), id, claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentosHandler) Remover(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Remover(c.Request.Context(), id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
