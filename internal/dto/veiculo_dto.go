package dto

type CriarVeiculoRequest struct {
	Placa  string `json:"placa"  validate:"required,min=7,max=8"`
	Modelo string `json:"modelo" validate:"required,max=50"`
	Cor    string `json:"cor"    validate:"omitempty,max=30"`
	Tipo   string `json:"tipo"   validate:"required,oneof=CARRO MOTO VAN"`
}

type AtualizarVeiculoRequest struct {
	Placa  string `json:"placa"  validate:"required,min=7,max=8"`
	Modelo string `json:"modelo" validate:"required,max=50"`
	Cor    string `json:"cor"    validate:"omitempty,max=30"`
	Tipo   string `json:"tipo"   validate:"required,oneof=CARRO MOTO VAN"`
}

type VeiculoResponse struct {
	ID        uint   `json:"id"`
	Placa     string `json:"placa"`
	Modelo    string `json:"modelo"`
	Cor       string `json:"cor,omitempty"`
	Tipo      string `json:"tipo"`
	ClienteID uint   `json:"cliente_id"`
}
