package dto

import "github.com/shopspring/decimal"

type CriarVagaRequest struct {
	Identificacao    string `json:"identificacao"     validate:"required,max=10"`
	Tipo             string `json:"tipo"              validate:"required,oneof=CARRO MOTO VAN"`
	EstacionamentoID uint   `json:"estacionamento_id" validate:"required"`
}

type AtualizarVagaRequest struct {
	Identificacao string `json:"identificacao" validate:"required,max=10"`
	Tipo          string `json:"tipo"          validate:"required,oneof=CARRO MOTO VAN"`
}

type VagaResponse struct {
	ID               uint   `json:"id"`
	Identificacao    string `json:"identificacao"`
	Tipo             string `json:"tipo"`
	Status           string `json:"status"`
	EstacionamentoID uint   `json:"estacionamento_id"`
}

type CriarTarifaRequest struct {
	EstacionamentoID uint            `json:"estacionamento_id" validate:"required"`
	TipoVaga         string          `json:"tipo_vaga"         validate:"required,oneof=CARRO MOTO VAN"`
	ValorHora        decimal.Decimal `json:"valor_hora"        validate:"required,gt=0"`
}

type AtualizarTarifaRequest struct {
	ValorHora decimal.Decimal `json:"valor_hora" validate:"required,gt=0"`
}

type TarifaResponse struct {
	ID               uint            `json:"id"`
	EstacionamentoID uint            `json:"estacionamento_id"`
	TipoVaga         string          `json:"tipo_vaga"`
	ValorHora        decimal.Decimal `json:"valor_hora"`
}
