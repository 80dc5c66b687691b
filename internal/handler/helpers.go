package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/apierror"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("json_invalido", "JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// paramID parses a numeric path parameter. Writes the 400 response itself.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id_invalido", "ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service sentinel errors to HTTP statuses. Unknown
// errors are logged and answered with a generic 500 so internals never
// leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("nao_encontrado", err.Error()))
	case errors.Is(err, service.ErrEmailDuplicado),
		errors.Is(err, service.ErrCNPJDuplicado),
		errors.Is(err, service.ErrPlacaDuplicada),
		errors.Is(err, service.ErrTarifaExiste):
		c.JSON(http.StatusConflict, apierror.New("conflito", err.Error()))
	case errors.Is(err, service.ErrEstadoInvalido):
		c.JSON(http.StatusConflict, apierror.New("estado_invalido", err.Error()))
	case errors.Is(err, service.ErrNaoAutorizado):
		c.JSON(http.StatusForbidden, apierror.New("nao_autorizado", err.Error()))
	case errors.Is(err, service.ErrValidacao), errors.Is(err, service.ErrPerfilDesconhecido):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("validacao", err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("erro interno")
		c.JSON(http.StatusInternalServerError, apierror.New("erro_interno", "Erro interno do servidor"))
	}
}
