package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RegistroAcessoService interface {
	RegistrarEntrada(ctx context.Context, gestorID uint, req dto.RegistrarEntradaRequest) (*dto.RegistroAcessoResponse, error)
	RegistrarSaida(ctx context.Context, gestorID, registroID uint) (*dto.RegistroAcessoResponse, error)
	ListarAbertos(ctx context.Context) ([]dto.RegistroAcessoResponse, error)
}

type registroService struct {
	repo        repository.RegistroAcessoRepository
	veiculoRepo repository.VeiculoRepository
	vagaRepo    repository.VagaRepository
	tarifaRepo  repository.TarifaRepository
	now         func() time.Time
}

func NewRegistroAcessoService(
	repo repository.RegistroAcessoRepository,
	veiculoRepo repository.VeiculoRepository,
	vagaRepo repository.VagaRepository,
	tarifaRepo repository.TarifaRepository,
) RegistroAcessoService {
	return &registroService{
		repo:        repo,
		veiculoRepo: veiculoRepo,
		vagaRepo:    vagaRepo,
		tarifaRepo:  tarifaRepo,
		now:         time.Now,
	}
}

func (s *registroService) RegistrarEntrada(ctx context.Context, gestorID uint, req dto.RegistrarEntradaRequest) (*dto.RegistroAcessoResponse, error) {
	veiculo, err := s.veiculoRepo.FindByID(ctx, req.VeiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: veiculo %d", ErrNaoEncontrado, req.VeiculoID)
		}
		return nil, err
	}
	vaga, err := s.vagaRepo.FindByID(ctx, req.VagaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vaga %d", ErrNaoEncontrado, req.VagaID)
		}
		return nil, err
	}
	if vaga.Estacionamento != nil && vaga.Estacionamento.GestorID != gestorID {
		return nil, fmt.Errorf("%w: vaga de outro gestor", ErrNaoAutorizado)
	}
	if vaga.Status != model.VagaDisponivel {
		return nil, fmt.Errorf("%w: vaga %s ocupada", ErrEstadoInvalido, vaga.Identificacao)
	}
	if veiculo.Tipo != vaga.Tipo {
		return nil, fmt.Errorf("%w: veiculo %s nao cabe em vaga %s", ErrValidacao, veiculo.Tipo, vaga.Tipo)
	}

	reg := &model.RegistroAcesso{
		VeiculoID: veiculo.ID,
		VagaID:    vaga.ID,
		Entrada:   s.now(),
	}
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, reg); err != nil {
			return err
		}
		return s.vagaRepo.UpdateStatusTx(tx, vaga.ID, model.VagaOcupada)
	})
	if err != nil {
		return nil, err
	}
	reg.Veiculo = veiculo
	return registroToResponse(reg), nil
}

func (s *registroService) RegistrarSaida(ctx context.Context, gestorID, registroID uint) (*dto.RegistroAcessoResponse, error) {
	reg, err := s.repo.FindByID(ctx, registroID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: registro %d", ErrNaoEncontrado, registroID)
		}
		return nil, err
	}
	if reg.Saida != nil {
		return nil, fmt.Errorf("%w: saida ja registrada", ErrEstadoInvalido)
	}
	vaga, err := s.vagaRepo.FindByID(ctx, reg.VagaID)
	if err != nil {
		return nil, err
	}
	if vaga.Estacionamento != nil && vaga.Estacionamento.GestorID != gestorID {
		return nil, fmt.Errorf("%w: vaga de outro gestor", ErrNaoAutorizado)
	}
	tarifa, err := s.tarifaRepo.FindByEstacionamentoETipo(ctx, vaga.EstacionamentoID, vaga.Tipo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tarifa %s do estacionamento %d", ErrNaoEncontrado, vaga.Tipo, vaga.EstacionamentoID)
		}
		return nil, err
	}

	saida := s.now()
	valor := calculaValor(reg.Entrada, saida, tarifa.ValorHora)
	reg.Saida = &saida
	reg.Valor = &valor

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, reg); err != nil {
			return err
		}
		return s.vagaRepo.UpdateStatusTx(tx, vaga.ID, model.VagaDisponivel)
	})
	if err != nil {
		return nil, err
	}
	return registroToResponse(reg), nil
}

func (s *registroService) ListarAbertos(ctx context.Context) ([]dto.RegistroAcessoResponse, error) {
	regs, err := s.repo.ListAbertos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RegistroAcessoResponse, len(regs))
	for i := range regs {
		resp[i] = *registroToResponse(&regs[i])
	}
	return resp, nil
}

// calculaValor charges whole hours: any started hour counts, with a
// one hour minimum.
func calculaValor(entrada, saida time.Time, valorHora decimal.Decimal) decimal.Decimal {
	dur := saida.Sub(entrada)
	horas := int64(dur / time.Hour)
	if dur%time.Hour > 0 {
		horas++
	}
	if horas < 1 {
		horas = 1
	}
	return valorHora.Mul(decimal.NewFromInt(horas))
}

func registroToResponse(r *model.RegistroAcesso) *dto.RegistroAcessoResponse {
	resp := &dto.RegistroAcessoResponse{
		ID:        r.ID,
		VeiculoID: r.VeiculoID,
		VagaID:    r.VagaID,
		Entrada:   r.Entrada.Format(time.RFC3339),
		Valor:     r.Valor,
	}
	if r.Veiculo != nil {
		resp.Placa = r.Veiculo.Placa
	}
	if r.Saida != nil {
		saida := r.Saida.Format(time.RFC3339)
		resp.Saida = &saida
	}
	return resp
}
