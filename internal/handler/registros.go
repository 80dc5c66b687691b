package handler

import (
	"net/http"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/middleware"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type RegistrosHandler struct{ svc service.RegistroAcessoService }

func NewRegistrosHandler(svc service.RegistroAcessoService) *RegistrosHandler {
	return &RegistrosHandler{svc: svc}
}

// RegistrarEntrada godoc
// @Summary      Registrar entrada de veiculo
// @Description  Abre um registro de acesso e ocupa a vaga na mesma transacao.
// @Tags         registros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarEntradaRequest true "Veiculo e vaga"
// @Success      201  {object} dto.RegistroAcessoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/registros/entrada [post]
func (h *RegistrosHandler) RegistrarEntrada(c *gin.Context) {
	var req dto.RegistrarEntradaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.RegistrarEntrada(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarSaida godoc
// @Summary      Registrar saida de veiculo
// @Description  Fecha o registro, calcula o valor por hora iniciada e libera a vaga.
// @Tags         registros
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do registro"
// @Success      200 {object} dto.RegistroAcessoResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/registros/{id}/saida [post]
func (h *RegistrosHandler) RegistrarSaida(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.RegistrarSaida(c.Request.Context(), claims.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RegistrosHandler) ListarAbertos(c *gin.Context) {
	resp, err := h.svc.ListarAbertos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
