package dto

import "github.com/shopspring/decimal"

type RegistrarEntradaRequest struct {
	VeiculoID uint `json:"veiculo_id" validate:"required"`
	VagaID    uint `json:"vaga_id"    validate:"required"`
}

type RegistroAcessoResponse struct {
	ID        uint             `json:"id"`
	VeiculoID uint             `json:"veiculo_id"`
	Placa     string           `json:"placa,omitempty"`
	VagaID    uint             `json:"vaga_id"`
	Entrada   string           `json:"entrada"`
	Saida     *string          `json:"saida,omitempty"`
	Valor     *decimal.Decimal `json:"valor,omitempty"`
}
