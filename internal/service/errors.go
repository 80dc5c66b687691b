package service

import "errors"

// Domain failure sentinels. Services wrap them with fmt.Errorf("%w: …") for
// context; handlers map them to HTTP status codes via errors.Is. No retries
// anywhere — every failure is synchronous and final.
var (
	ErrNaoEncontrado  = errors.New("registro não encontrado")
	ErrEmailDuplicado = errors.New("e-mail já cadastrado")
	ErrCNPJDuplicado  = errors.New("CNPJ já cadastrado")
	ErrPlacaDuplicada = errors.New("placa já cadastrada")
	ErrTarifaExiste   = errors.New("tarifa já cadastrada para este tipo de vaga")
	ErrNaoAutorizado  = errors.New("operação não autorizada")
	ErrEstadoInvalido = errors.New("estado inválido para a operação")
	ErrValidacao      = errors.New("dados inválidos")

	// ErrPerfilDesconhecido flags a corrupted discriminator: an identity row
	// whose perfil matches neither profile table.
	ErrPerfilDesconhecido = errors.New("perfil de usuário desconhecido")
)
