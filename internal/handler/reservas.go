package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/apierror"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/middleware"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservasHandler struct{ svc service.ReservaService }

func NewReservasHandler(svc service.ReservaService) *ReservasHandler {
	return &ReservasHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar uma reserva
// @Description  Reserva uma vaga para uma janela de tempo. Falha se a janela conflita com outra reserva ATIVA da mesma vaga.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarReservaRequest true "Dados da reserva"
// @Success      201  {object} dto.ReservaResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reservas [post]
func (h *ReservasHandler) Criar(c *gin.Context) {
	var req dto.CriarReservaRequest
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

// Disponibilidade godoc
// @Summary      Verificar disponibilidade de uma vaga
// @Description  Responde se a janela pedida esta livre de conflitos com reservas ATIVAS da vaga naquela data.
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Param        vaga_id     query int    true "ID da vaga"
// @Param        data        query string true "Data (YYYY-MM-DD)"
// @Param        hora_inicio query string true "Inicio (HH:MM)"
// @Param        hora_fim    query string true "Fim (HH:MM)"
// @Success      200 {object} dto.DisponibilidadeResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reservas/disponibilidade [get]
func (h *ReservasHandler) Disponibilidade(c *gin.Context) {
	vagaID, err := strconv.ParseUint(c.Query("vaga_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametro_invalido", "vaga_id invalido"))
		return
	}
	data, err := time.Parse("2006-01-02", c.Query("data"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametro_invalido", "data invalida, use YYYY-MM-DD"))
		return
	}
	inicio, fim := c.Query("hora_inicio"), c.Query("hora_fim")
	if inicio == "" || fim == "" {
		c.JSON(http.StatusBadRequest, apierror.New("parametro_invalido", "hora_inicio e hora_fim sao obrigatorios"))
		return
	}

	livre, err := h.svc.VerificarDisponibilidade(c.Request.Context(), uint(vagaID), data, inicio, fim, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DisponibilidadeResponse{Disponivel: livre})
}

// Listar godoc
// @Summary      Listar reservas do cliente autenticado
// @Description  Ordenadas por status (ATIVA, CONCLUIDA, demais) e data/hora decrescentes.
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ReservaResponse
// @Router       /v1/reservas [get]
func (h *ReservasHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Remarcar uma reserva ATIVA
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da reserva"
// @Param        body body dto.AtualizarReservaRequest true "Nova janela"
// @Success      200  {object} dto.ReservaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/reservas/{id} [put]
func (h *ReservasHandler) Atualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarReservaRequest
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

// Cancelar godoc
// @Summary      Cancelar uma reserva ATIVA
// @Description  Marca a reserva como CANCELADA e libera a vaga na mesma transacao.
// @Tags         reservas
// @Security     BearerAuth
// @Param        id path int true "ID da reserva"
// @Success      204
// @Failure      403 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/reservas/{id} [delete]
func (h *ReservasHandler) Cancelar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Cancelar(c.Request.Context(), id, claims.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
