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

type VagaService interface {
	Criar(ctx context.Context, gestorID uint, req dto.CriarVagaRequest) (*dto.VagaResponse, error)
	ListarPorEstacionamento(ctx context.Context, estacionamentoID uint) ([]dto.VagaResponse, error)
	Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarVagaRequest) (*dto.VagaResponse, error)
	Remover(ctx context.Context, id, gestorID uint) error
}

type vagaService struct {
	repo    repository.VagaRepository
	estRepo repository.EstacionamentoRepository
}

func NewVagaService(repo repository.VagaRepository, estRepo repository.EstacionamentoRepository) VagaService {
	return &vagaService{repo: repo, estRepo: estRepo}
}

func (s *vagaService) Criar(ctx context.Context, gestorID uint, req dto.CriarVagaRequest) (*dto.VagaResponse, error) {
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

	vaga := &model.Vaga{
		Identificacao:    req.Identificacao,
		Tipo:             model.TipoVaga(req.Tipo),
		Status:           model.VagaDisponivel,
		EstacionamentoID: est.ID,
	}
	if err := s.repo.Create(ctx, vaga); err != nil {
		return nil, err
	}
	return vagaToResponse(vaga), nil
}

func (s *vagaService) ListarPorEstacionamento(ctx context.Context, estacionamentoID uint) ([]dto.VagaResponse, error) {
	vagas, err := s.repo.ListByEstacionamento(ctx, estacionamentoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VagaResponse, len(vagas))
	for i := range vagas {
		resp[i] = *vagaToResponse(&vagas[i])
	}
	return resp, nil
}

func (s *vagaService) Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarVagaRequest) (*dto.VagaResponse, error) {
	vaga, err := s.buscarDoGestor(ctx, id, gestorID)
	if err != nil {
		return nil, err
	}
	vaga.Identificacao = req.Identificacao
	vaga.Tipo = model.TipoVaga(req.Tipo)
	if err := s.repo.Update(ctx, vaga); err != nil {
		return nil, err
	}
	return vagaToResponse(vaga), nil
}

// Remover rejects spaces that are currently occupied — release them first.
func (s *vagaService) Remover(ctx context.Context, id, gestorID uint) error {
	vaga, err := s.buscarDoGestor(ctx, id, gestorID)
	if err != nil {
		return err
	}
	if vaga.Status != model.VagaDisponivel {
		return fmt.Errorf("%w: vaga ocupada", ErrEstadoInvalido)
	}
	return s.repo.Delete(ctx, id)
}

func (s *vagaService) buscarDoGestor(ctx context.Context, id, gestorID uint) (*model.Vaga, error) {
	vaga, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vaga %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	if vaga.Estacionamento == nil || vaga.Estacionamento.GestorID != gestorID {
		return nil, fmt.Errorf("%w: vaga de outro gestor", ErrNaoAutorizado)
	}
	return vaga, nil
}

func vagaToResponse(v *model.Vaga) *dto.VagaResponse {
	return &dto.VagaResponse{
		ID:               v.ID,
		Identificacao:    v.Identificacao,
		Tipo:             string(v.Tipo),
		Status:           string(v.Status),
		EstacionamentoID: v.EstacionamentoID,
	}
}
