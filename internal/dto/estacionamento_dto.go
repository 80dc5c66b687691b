package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type EnderecoRequest struct {
	Logradouro string `json:"logradouro" validate:"required,max=150"`
	Numero     string `json:"numero"     validate:"required,max=10"`
	Bairro     string `json:"bairro"     validate:"omitempty,max=100"`
	Cidade     string `json:"cidade"     validate:"required,max=100"`
	Estado     string `json:"estado"     validate:"required,len=2,uppercase"`
	CEP        string `json:"cep"        validate:"required,len=8,numeric"`
}

type CriarEstacionamentoRequest struct {
	Nome      string          `json:"nome"      validate:"required,min=2,max=100"`
	CNPJ      string          `json:"cnpj"      validate:"required,len=14,numeric"`
	Endereco  EnderecoRequest `json:"endereco"  validate:"required"`
	Telefones []string        `json:"telefones" validate:"omitempty,dive,min=8,max=15"`
}

type AtualizarEstacionamentoRequest struct {
	Nome      string          `json:"nome"      validate:"required,min=2,max=100"`
	Endereco  EnderecoRequest `json:"endereco"  validate:"required"`
	Telefones []string        `json:"telefones" validate:"omitempty,dive,min=8,max=15"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EnderecoResponse struct {
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro,omitempty"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"`
	CEP        string `json:"cep"`
}

type EstacionamentoResponse struct {
	ID        uint              `json:"id"`
	Nome      string            `json:"nome"`
	CNPJ      string            `json:"cnpj"`
	GestorID  uint              `json:"gestor_id"`
	Endereco  *EnderecoResponse `json:"endereco,omitempty"`
	Telefones []string          `json:"telefones,omitempty"`
	Vagas     []VagaResponse    `json:"vagas,omitempty"`
	Tarifas   []TarifaResponse  `json:"tarifas,omitempty"`
}
