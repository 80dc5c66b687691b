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

type EstacionamentoService interface {
	Criar(ctx context.Context, gestorID uint, req dto.CriarEstacionamentoRequest) (*dto.EstacionamentoResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.EstacionamentoResponse, error)
	Listar(ctx context.Context) ([]dto.EstacionamentoResponse, error)
	ListarPorGestor(ctx context.Context, gestorID uint) ([]dto.EstacionamentoResponse, error)
	Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarEstacionamentoRequest) (*dto.EstacionamentoResponse, error)
	Remover(ctx context.Context, id, gestorID uint) error
}

type estacionamentoService struct {
	repo repository.EstacionamentoRepository
}

func NewEstacionamentoService(repo repository.EstacionamentoRepository) EstacionamentoService {
	return &estacionamentoService{repo: repo}
}

// Criar persists the lot with its endereco and telefones as one unit; GORM
// writes the association graph inside a single transaction.
func (s *estacionamentoService) Criar(ctx context.Context, gestorID uint, req dto.CriarEstacionamentoRequest) (*dto.EstacionamentoResponse, error) {
	est := &model.Estacionamento{
		Nome:     req.Nome,
		CNPJ:     req.CNPJ,
		GestorID: gestorID,
		Endereco: &model.Endereco{
			Logradouro: req.Endereco.Logradouro,
			Numero:     req.Endereco.Numero,
			Bairro:     req.Endereco.Bairro,
			Cidade:     req.Endereco.Cidade,
			Estado:     req.Endereco.Estado,
			CEP:        req.Endereco.CEP,
		},
	}
	for _, numero := range req.Telefones {
		est.Telefones = append(est.Telefones, model.Telefone{Numero: numero})
	}

	if err := s.repo.Create(ctx, est); err != nil {
		return nil, err
	}
	return estacionamentoToResponse(est), nil
}

func (s *estacionamentoService) BuscarPorID(ctx context.Context, id uint) (*dto.EstacionamentoResponse, error) {
	est, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return estacionamentoToResponse(est), nil
}

func (s *estacionamentoService) Listar(ctx context.Context) ([]dto.EstacionamentoResponse, error) {
	lots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lotsToResponses(lots), nil
}

func (s *estacionamentoService) ListarPorGestor(ctx context.Context, gestorID uint) ([]dto.EstacionamentoResponse, error) {
	lots, err := s.repo.ListByGestor(ctx, gestorID)
	if err != nil {
		return nil, err
	}
	return lotsToResponses(lots), nil
}

func (s *estacionamentoService) Atualizar(ctx context.Context, id, gestorID uint, req dto.AtualizarEstacionamentoRequest) (*dto.EstacionamentoResponse, error) {
	est, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if est.GestorID != gestorID {
		return nil, fmt.Errorf("%w: estacionamento de outro gestor", ErrNaoAutorizado)
	}

	est.Nome = req.Nome
	if est.Endereco == nil {
		est.Endereco = &model.Endereco{EstacionamentoID: est.ID}
	}
	est.Endereco.Logradouro = req.Endereco.Logradouro
	est.Endereco.Numero = req.Endereco.Numero
	est.Endereco.Bairro = req.Endereco.Bairro
	est.Endereco.Cidade = req.Endereco.Cidade
	est.Endereco.Estado = req.Endereco.Estado
	est.Endereco.CEP = req.Endereco.CEP

	if err := s.repo.Update(ctx, est); err != nil {
		return nil, err
	}

	telefones := make([]model.Telefone, 0, len(req.Telefones))
	for _, numero := range req.Telefones {
		telefones = append(telefones, model.Telefone{Numero: numero})
	}
	if err := s.repo.ReplaceTelefones(ctx, est.ID, telefones); err != nil {
		return nil, err
	}
	est.Telefones = telefones

	return estacionamentoToResponse(est), nil
}

func (s *estacionamentoService) Remover(ctx context.Context, id, gestorID uint) error {
	est, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if est.GestorID != gestorID {
		return fmt.Errorf("%w: estacionamento de outro gestor", ErrNaoAutorizado)
	}
	return s.repo.Delete(ctx, id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *estacionamentoService) buscar(ctx context.Context, id uint) (*model.Estacionamento, error) {
	est, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: estacionamento %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	return est, nil
}

func lotsToResponses(lots []model.Estacionamento) []dto.EstacionamentoResponse {
	resp := make([]dto.EstacionamentoResponse, len(lots))
	for i := range lots {
		resp[i] = *estacionamentoToResponse(&lots[i])
	}
	return resp
}

func estacionamentoToResponse(e *model.Estacionamento) *dto.EstacionamentoResponse {
	resp := &dto.EstacionamentoResponse{
		ID:       e.ID,
		Nome:     e.Nome,
		CNPJ:     e.CNPJ,
		GestorID: e.GestorID,
	}
	if e.Endereco != nil {
		resp.Endereco = &dto.EnderecoResponse{
			Logradouro: e.Endereco.Logradouro,
			Numero:     e.Endereco.Numero,
			Bairro:     e.Endereco.Bairro,
			Cidade:     e.Endereco.Cidade,
			Estado:     e.Endereco.Estado,
			CEP:        e.Endereco.CEP,
		}
	}
	for _, tel := range e.Telefones {
		resp.Telefones = append(resp.Telefones, tel.Numero)
	}
	for _, v := range e.Vagas {
		resp.Vagas = append(resp.Vagas, dto.VagaResponse{
			ID:               v.ID,
			Identificacao:    v.Identificacao,
			Tipo:             string(v.Tipo),
			Status:           string(v.Status),
			EstacionamentoID: v.EstacionamentoID,
		})
	}
	for _, t := range e.Tarifas {
		resp.Tarifas = append(resp.Tarifas, dto.TarifaResponse{
			ID:               t.ID,
			EstacionamentoID: t.EstacionamentoID,
			TipoVaga:         string(t.TipoVaga),
			ValorHora:        t.ValorHora,
		})
	}
	return resp
}
