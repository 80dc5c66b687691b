package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"gorm.io/gorm"
)

type TarifaService interface {
	Criar(ctx context.Context, gestorID uint, req dto.CriarTarifaRequest) (*dto.TarifaResponse, error)
	ListarPorEstacionamento(ctx context.Context, estacionamentoID uint) ([]dto.TarifaResponse, error)
	Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarTarifaRequest) (*dto.TarifaResponse, error)
	Remover(ctx context.Context, id, gestorID uint) error
}

type tarifaService struct {
	repo    repository.TarifaRepository
	estRepo repository.EstacionamentoRepository
}

func NewTarifaService(repo repository.TarifaRepository, estRepo repository.EstacionamentoRepository) TarifaService {
	return &tarifaService{repo: repo, estRepo: estRepo}
}

func (s *tarifaService) Criar(ctx context.Context, gestorID uint, req dto.CriarTarifaRequest) (*dto.TarifaResponse, error) {
	est, err := s.estRepo.FindByID(ctx, req.EstacionamentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: estacionamento %d", ErrNaoEncontrado, req.EstacionamentoID)
		}
		return nil, err
	}
	if est.GestorID != gestorID {
		return nil, fmt.Errorf("%w: estacionamento de outro gestor", ErrNaoAutorizado)
	}

	tipo := model.TipoVaga(req.TipoVaga)
	if _, err := s.repo.FindByEstacionamentoETipo(ctx, est.ID, tipo); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTarifaExiste, tipo)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tarifa := &model.Tarifa{
		EstacionamentoID: est.ID,
		TipoVaga:         tipo,
		ValorHora:        req.ValorHora,
	}
	if err := s.repo.Create(ctx, tarifa); err != nil {
		return nil, err
	}
	return tarifaToResponse(tarifa), nil
}

func (s *tarifaService) ListarPorEstacionamento(ctx context.Context, estacionamentoID uint) ([]dto.TarifaResponse, error) {
	tarifas, err := s.repo.ListByEstacionamento(ctx, estacionamentoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TarifaResponse, len(tarifas))
	for i := range tarifas {
		resp[i] = *tarifaToResponse(&tarifas[i])
	}
	return resp, nil
}

func (s *tarifaService) Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarTarifaRequest) (*dto.TarifaResponse, error) {
	tarifa, err := s.buscarDoGestor(ctx, id, gestorID)
	if err != nil {
		return nil, err
	}
	tarifa.ValorHora = req.ValorHora
	if err := s.repo.Update(ctx, tarifa); err != nil {
		return nil, err
	}
	return tarifaToResponse(tarifa), nil
}

func (s *tarifaService) Remover(ctx context.Context, id, gestorID uint) error {
	if _, err := s.buscarDoGestor(ctx, id, gestorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *tarifaService) buscarDoGestor(ctx context.Context, id, gestorID uint) (*model.Tarifa, error) {
	tarifa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tarifa %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	est, err := s.estRepo.FindByID(ctx, tarifa.EstacionamentoID)
	if err != nil {
		return nil, err
	}
	if est.GestorID != gestorID {
		return nil, fmt.Errorf("%w: tarifa de outro gestor", ErrNaoAutorizado)
	}
	return tarifa, nil
}

func tarifaToResponse(t *model.Tarifa) *dto.TarifaResponse {
	return &dto.TarifaResponse{
		ID:               t.ID,
		EstacionamentoID: t.EstacionamentoID,
		TipoVaga:         string(t.TipoVaga),
		ValorHora:        t.ValorHora,
	}
}
