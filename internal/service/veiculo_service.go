package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"gorm.io/gorm"
)

type VeiculoService interface {
	Criar(ctx context.Context, clienteID uint, req dto.CriarVeiculoRequest) (*dto.VeiculoResponse, error)
	ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.VeiculoResponse, error)
	Atualizar(ctx context.Context, id, clienteID uint, req dto.AtualizarVeiculoRequest) (*dto.VeiculoResponse, error)
	Remover(ctx context.Context, id, clienteID uint) error
}

type veiculoService struct {
	repo repository.VeiculoRepository
}

func NewVeiculoService(repo repository.VeiculoRepository) VeiculoService {
	return &veiculoService{repo: repo}
}

// normalizaPlaca uppercases and strips the optional hyphen ("abc-1234" and
// "ABC1234" are the same plate).
func normalizaPlaca(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(placa, "-", ""))
}

func (s *veiculoService) Criar(ctx context.Context, clienteID uint, req dto.CriarVeiculoRequest) (*dto.VeiculoResponse, error) {
	placa := normalizaPlaca(req.Placa)
	existe, err := s.repo.ExistePlaca(ctx, placa, 0)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: %s", ErrPlacaDuplicada, placa)
	}

	veiculo := &model.Veiculo{
		Placa:     placa,
		Modelo:    req.Modelo,
		Cor:       req.Cor,
		Tipo:      model.TipoVaga(req.Tipo),
		ClienteID: clienteID,
	}
	if err := s.repo.Create(ctx, veiculo); err != nil {
		return nil, err
	}
	return veiculoToResponse(veiculo), nil
}

func (s *veiculoService) ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.VeiculoResponse, error) {
	veiculos, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VeiculoResponse, len(veiculos))
	for i := range veiculos {
		resp[i] = *veiculoToResponse(&veiculos[i])
	}
	return resp, nil
}

func (s *veiculoService) Atualizar(ctx context.Context, id, clienteID uint, req dto.AtualizarVeiculoRequest) (*dto.VeiculoResponse, error) {
	veiculo, err := s.buscarDoCliente(ctx, id, clienteID)
	if err != nil {
		return nil, err
	}

	placa := normalizaPlaca(req.Placa)
	existe, err := s.repo.ExistePlaca(ctx, placa, id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: %s", ErrPlacaDuplicada, placa)
	}

	veiculo.Placa = placa
	veiculo.Modelo = req.Modelo
	veiculo.Cor = req.Cor
	veiculo.Tipo = model.TipoVaga(req.Tipo)
	if err := s.repo.Update(ctx, veiculo); err != nil {
		return nil, err
	}
	return veiculoToResponse(veiculo), nil
}

func (s *veiculoService) Remover(ctx context.Context, id, clienteID uint) error {
	if _, err := s.buscarDoCliente(ctx, id, clienteID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *veiculoService) buscarDoCliente(ctx context.Context, id, clienteID uint) (*model.Veiculo, error) {
	veiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: veículo %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	if veiculo.ClienteID != clienteID {
		return nil, fmt.Errorf("%w: veículo de outro cliente", ErrNaoAutorizado)
	}
	return veiculo, nil
}

func veiculoToResponse(v *model.Veiculo) *dto.VeiculoResponse {
	return &dto.VeiculoResponse{
		ID:        v.ID,
		Placa:     v.Placa,
		Modelo:    v.Modelo,
		Cor:       v.Cor,
		Tipo:      string(v.Tipo),
		ClienteID: v.ClienteID,
	}
}
