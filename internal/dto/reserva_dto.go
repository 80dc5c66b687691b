package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarReservaRequest struct {
	Data       string `json:"data"        validate:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFim    string `json:"hora_fim"    validate:"required,datetime=15:04"`
	VeiculoID  uint   `json:"veiculo_id"  validate:"required"`
	VagaID     uint   `json:"vaga_id"     validate:"required"`
}

type AtualizarReservaRequest struct {
	Data       string `json:"data"        validate:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFim    string `json:"hora_fim"    validate:"required,datetime=15:04"`
	VeiculoID  uint   `json:"veiculo_id"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DisponibilidadeResponse struct {
	Disponivel bool `json:"disponivel"`
}

// ReservaLocal flattens the joined vaga/estacionamento/endereco data that the
// listing screen shows next to each reservation.
type ReservaLocal struct {
	VagaID         uint              `json:"vaga_id"`
	Identificacao  string            `json:"identificacao"`
	Estacionamento string            `json:"estacionamento"`
	Endereco       *EnderecoResponse `json:"endereco,omitempty"`
}

type ReservaResponse struct {
	ID         uint             `json:"id"`
	Data       string           `json:"data"`
	HoraInicio string           `json:"hora_inicio"`
	HoraFim    string           `json:"hora_fim"`
	Status     string           `json:"status"`
	ClienteID  uint             `json:"cliente_id"`
	Veiculo    *VeiculoResponse `json:"veiculo,omitempty"`
	Local      *ReservaLocal    `json:"local,omitempty"`
}
