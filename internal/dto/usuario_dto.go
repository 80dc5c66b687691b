package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarUsuarioRequest struct {
	Perfil string  `json:"perfil" validate:"required,oneof=CLIENTE GESTOR"`
	Nome   string  `json:"nome"   validate:"required,min=2,max=100"`
	Email  string  `json:"email"  validate:"required,email"`
	Senha  string  `json:"senha"  validate:"required,min=8"`
	// CNPJ only applies to (and is required for) GESTOR profiles.
	CNPJ *string `json:"cnpj" validate:"required_if=Perfil GESTOR,omitempty,len=14,numeric"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     uint    `json:"id"`
	Perfil string  `json:"perfil"`
	Nome   string  `json:"nome"`
	Email  string  `json:"email"`
	CNPJ   *string `json:"cnpj,omitempty"`
}
