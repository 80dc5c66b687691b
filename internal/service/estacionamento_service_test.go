package service

import (
	"context"
	"testing"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enderecoDemo() dto.EnderecoRequest {
	return dto.EnderecoRequest{
		Logradouro: "Av. Paulista", Numero: "1000", Bairro: "Bela Vista",
		Cidade: "Sao Paulo", Estado: "SP", CEP: "01310100",
	}
}

func TestEstacionamentoService_CicloCompleto(t *testing.T) {
	repo := newStubEstacionamentoRepo()
	svc := NewEstacionamentoService(repo)

	resp, err := svc.Criar(context.Background(), 10, dto.CriarEstacionamentoRequest{
		Nome: "Central Park", CNPJ: "12345678000199",
		Endereco:  enderecoDemo(),
		Telefones: []string{"11999990000", "1133334444"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), resp.GestorID)
	require.NotNil(t, resp.Endereco)
	assert.Equal(t, "Sao Paulo", resp.Endereco.Cidade)
	assert.Len(t, resp.Telefones, 2)

	// only the owner updates
	_, err = svc.Atualizar(context.Background(), resp.ID, 99, dto.AtualizarEstacionamentoRequest{
		Nome: "Outro Nome", Endereco: enderecoDemo(),
	})
	assert.ErrorIs(t, err, ErrNaoAutorizado)

	updated, err := svc.Atualizar(context.Background(), resp.ID, 10, dto.AtualizarEstacionamentoRequest{
		Nome: "Central Park II", Endereco: enderecoDemo(),
		Telefones: []string{"11888887777"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Central Park II", updated.Nome)
	assert.Equal(t, []string{"11888887777"}, updated.Telefones)

	err = svc.Remover(context.Background(), resp.ID, 99)
	assert.ErrorIs(t, err, ErrNaoAutorizado)
	require.NoError(t, svc.Remover(context.Background(), resp.ID, 10))

	_, err = svc.BuscarPorID(context.Background(), resp.ID)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
