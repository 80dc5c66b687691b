package service

import (
	"context"
	"testing"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarVeiculo_NormalizaPlaca(t *testing.T) {
	repo := newStubVeiculoRepo()
	svc := NewVeiculoService(repo)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarVeiculoRequest{
		Placa: "abc-1d23", Modelo: "Onix", Tipo: "CARRO",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", resp.Placa)

	// same plate in a different spelling collides
	_, err = svc.Criar(context.Background(), 2, dto.CriarVeiculoRequest{
		Placa: "ABC1D23", Modelo: "Gol", Tipo: "CARRO",
	})
	assert.ErrorIs(t, err, ErrPlacaDuplicada)
}

func TestAtualizarVeiculo_Propriedade(t *testing.T) {
	repo := newStubVeiculoRepo()
	svc := NewVeiculoService(repo)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarVeiculoRequest{
		Placa: "ABC1D23", Modelo: "Onix", Tipo: "CARRO",
	})
	require.NoError(t, err)

	// another cliente cannot touch it
	_, err = svc.Atualizar(context.Background(), resp.ID, 2, dto.AtualizarVeiculoRequest{
		Placa: "ABC1D23", Modelo: "Onix LT", Tipo: "CARRO",
	})
	assert.ErrorIs(t, err, ErrNaoAutorizado)

	// the owner keeping the same plate is not a conflict
	updated, err := svc.Atualizar(context.Background(), resp.ID, 1, dto.AtualizarVeiculoRequest{
		Placa: "abc1d23", Modelo: "Onix LT", Tipo: "CARRO",
	})
	require.NoError(t, err)
	assert.Equal(t, "Onix LT", updated.Modelo)

	err = svc.Remover(context.Background(), resp.ID, 2)
	assert.ErrorIs(t, err, ErrNaoAutorizado)
	assert.NoError(t, svc.Remover(context.Background(), resp.ID, 1))
}
