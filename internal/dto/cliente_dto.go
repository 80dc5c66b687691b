package dto

// AtualizarClienteRequest carries the full profile — the update path always
// re-validates the email and re-hashes the submitted password.
type AtualizarClienteRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=8"`
}

type ClienteResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type AtualizarGestorRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=8"`
	CNPJ  string `json:"cnpj"  validate:"required,len=14,numeric"`
}

type GestorResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CNPJ  string `json:"cnpj"`
}
