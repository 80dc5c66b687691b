package service

import (
	"context"
	"testing"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildUsuarioSvc() (UsuarioService, *stubUsuarioRepo, *stubClienteRepo, *stubGestorRepo) {
	usuarioRepo := newStubUsuarioRepo()
	clienteRepo := newStubClienteRepo()
	gestorRepo := newStubGestorRepo()
	svc := NewUsuarioService(usuarioRepo, clienteRepo, gestorRepo)
	return svc, usuarioRepo, clienteRepo, gestorRepo
}

func criarCliente(t *testing.T, svc UsuarioService, nome, email string) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Perfil: "CLIENTE",
		Nome:   nome,
		Email:  email,
		Senha:  "segredo-forte",
	})
	require.NoError(t, err)
	return resp
}

func criarGestor(t *testing.T, svc UsuarioService, nome, email, cnpj string) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Perfil: "GESTOR",
		Nome:   nome,
		Email:  email,
		Senha:  "segredo-forte",
		CNPJ:   &cnpj,
	})
	require.NoError(t, err)
	return resp
}

func TestCriarUsuario_ClienteRoundTrip(t *testing.T) {
	svc, _, clienteRepo, _ := buildUsuarioSvc()

	resp := criarCliente(t, svc, "Ana Souza", "ana@exemplo.com")
	require.NotZero(t, resp.ID)
	assert.Equal(t, "CLIENTE", resp.Perfil)
	assert.Nil(t, resp.CNPJ)

	// password is stored hashed, never in the clear
	cliente, err := clienteRepo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo-forte", cliente.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cliente.SenhaHash), []byte("segredo-forte")))

	found, err := svc.BuscarPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana Souza", found.Nome)
	assert.Equal(t, "ana@exemplo.com", found.Email)
}

func TestCriarUsuario_GestorRoundTrip(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()

	resp := criarGestor(t, svc, "Carlos Lima", "carlos@exemplo.com", "12345678000199")
	require.NotZero(t, resp.ID)

	found, err := svc.BuscarPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "GESTOR", found.Perfil)
	require.NotNil(t, found.CNPJ)
	assert.Equal(t, "12345678000199", *found.CNPJ)
}

func TestCriarUsuario_EmailDuplicadoNoMesmoPerfil(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()
	criarCliente(t, svc, "Ana", "ana@exemplo.com")

	_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Perfil: "CLIENTE",
		Nome:   "Outra Ana",
		Email:  "ANA@exemplo.com", // uniqueness is case-insensitive
		Senha:  "segredo-forte",
	})
	assert.ErrorIs(t, err, ErrEmailDuplicado)
}

func TestCriarUsuario_EmailLivreEntrePerfis(t *testing.T) {
	// cliente and gestor emails live in separate namespaces
	svc, _, _, _ := buildUsuarioSvc()
	criarCliente(t, svc, "Ana", "ana@exemplo.com")
	criarGestor(t, svc, "Ana Gestora", "ana@exemplo.com", "12345678000199")
}

func TestCriarUsuario_CNPJDuplicado(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()
	criarGestor(t, svc, "Carlos", "carlos@exemplo.com", "12345678000199")

	cnpj := "12345678000199"
	_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Perfil: "GESTOR",
		Nome:   "Outro Carlos",
		Email:  "outro@exemplo.com",
		Senha:  "segredo-forte",
		CNPJ:   &cnpj,
	})
	assert.ErrorIs(t, err, ErrCNPJDuplicado)
}

func TestCriarUsuario_PerfilInvalido(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()
	_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Perfil: "ADMIN",
		Nome:   "Intruso",
		Email:  "x@exemplo.com",
		Senha:  "segredo-forte",
	})
	assert.ErrorIs(t, err, ErrValidacao)
}

func TestBuscarPorID_InexistenteRetornaNilNil(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()
	found, err := svc.BuscarPorID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRemoverUsuario_ApagaIdentidadeEPerfil(t *testing.T) {
	svc, usuarioRepo, clienteRepo, _ := buildUsuarioSvc()
	resp := criarCliente(t, svc, "Ana", "ana@exemplo.com")

	require.NoError(t, svc.Remover(context.Background(), resp.ID))

	_, err := usuarioRepo.FindByID(context.Background(), resp.ID)
	assert.Error(t, err)
	_, err = clienteRepo.FindByID(context.Background(), resp.ID)
	assert.Error(t, err)
}

func TestRemoverUsuario_Inexistente(t *testing.T) {
	svc, _, _, _ := buildUsuarioSvc()
	err := svc.Remover(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
