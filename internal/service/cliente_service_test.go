package service

import (
	"context"
	"testing"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAtualizarCliente(t *testing.T) {
	repo := newStubClienteRepo()
	repo.clientes[1] = &model.Cliente{ID: 1, Nome: "Ana", Email: "ana@exemplo.com", SenhaHash: "antigo"}
	repo.clientes[2] = &model.Cliente{ID: 2, Nome: "Bia", Email: "bia@exemplo.com", SenhaHash: "x"}
	svc := NewClienteService(repo)

	resp, err := svc.Atualizar(context.Background(), 1, dto.AtualizarClienteRequest{
		Nome: "Ana Silva", Email: "ana.silva@exemplo.com", Senha: "senha-nova-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", resp.Nome)
	assert.Equal(t, "ana.silva@exemplo.com", resp.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.clientes[1].SenhaHash), []byte("senha-nova-123")))

	// keeping one's own email is not a conflict
	_, err = svc.Atualizar(context.Background(), 1, dto.AtualizarClienteRequest{
		Nome: "Ana Silva", Email: "ana.silva@exemplo.com", Senha: "senha-nova-123",
	})
	assert.NoError(t, err)

	// taking another cliente's email is
	_, err = svc.Atualizar(context.Background(), 1, dto.AtualizarClienteRequest{
		Nome: "Ana Silva", Email: "bia@exemplo.com", Senha: "senha-nova-123",
	})
	assert.ErrorIs(t, err, ErrEmailDuplicado)

	_, err = svc.Atualizar(context.Background(), 42, dto.AtualizarClienteRequest{
		Nome: "Ninguem", Email: "n@exemplo.com", Senha: "senha-nova-123",
	})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestAtualizarGestor_CNPJDuplicado(t *testing.T) {
	repo := newStubGestorRepo()
	repo.gestores[1] = &model.Gestor{ID: 1, Nome: "Carlos", Email: "carlos@exemplo.com", CNPJ: "11111111000111"}
	repo.gestores[2] = &model.Gestor{ID: 2, Nome: "Dora", Email: "dora@exemplo.com", CNPJ: "22222222000122"}
	svc := NewGestorService(repo)

	_, err := svc.Atualizar(context.Background(), 1, dto.AtualizarGestorRequest{
		Nome: "Carlos", Email: "carlos@exemplo.com", Senha: "senha-nova-123", CNPJ: "22222222000122",
	})
	assert.ErrorIs(t, err, ErrCNPJDuplicado)

	// keeping one's own CNPJ is fine
	resp, err := svc.Atualizar(context.Background(), 1, dto.AtualizarGestorRequest{
		Nome: "Carlos Lima", Email: "carlos@exemplo.com", Senha: "senha-nova-123", CNPJ: "11111111000111",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Lima", resp.Nome)
}
