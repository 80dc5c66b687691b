package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/worker"

	"gorm.io/gorm"
)

type ReservaService interface {
	Criar(ctx context.Context, clienteID uint, req dto.CriarReservaRequest) (*dto.ReservaResponse, error)
	Atualizar(ctx context.Context, id, clienteID uint, req dto.AtualizarReservaRequest) (*dto.ReservaResponse, error)
	// VerificarDisponibilidade returns true when no ATIVA reservation for the
	// vaga on the date overlaps the proposed window. excetoReservaID (0 = none)
	// removes a reservation from the conflict set — the update-in-place path.
	VerificarDisponibilidade(ctx context.Context, vagaID uint, data time.Time, horaInicio, horaFim string, excetoReservaID uint) (bool, error)
	Cancelar(ctx context.Context, reservaID, clienteID uint) error
	Listar(ctx context.Context, clienteID uint) ([]dto.ReservaResponse, error)
}

type reservaService struct {
	repo        repository.ReservaRepository
	vagaRepo    repository.VagaRepository
	veiculoRepo repository.VeiculoRepository
	clienteRepo repository.ClienteRepository
	dispatcher  *worker.Dispatcher
}

func NewReservaService(
	repo repository.ReservaRepository,
	vagaRepo repository.VagaRepository,
	veiculoRepo repository.VeiculoRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher *worker.Dispatcher,
) ReservaService {
	return &reservaService{
		repo:        repo,
		vagaRepo:    vagaRepo,
		veiculoRepo: veiculoRepo,
		clienteRepo: clienteRepo,
		dispatcher:  dispatcher,
	}
}

// janelasConflitam applies the three-clause overlap rule against one existing
// reservation. Boundary inclusion is asymmetric: touching endpoints
// (existente.HoraFim == inicio, or fim == existente.HoraInicio) never count
// as overlap.
// Times are zero-padded "HH:MM:SS" strings, so string order is time order.
func janelasConflitam(existente *model.Reserva, inicio, fim string) bool {
	switch {
	case existente.HoraInicio <= inicio && existente.HoraFim > inicio:
		return true // new start falls inside the existing window
	case existente.HoraInicio < fim && existente.HoraFim >= fim:
		return true // new end falls inside the existing window
	case existente.HoraInicio >= inicio && existente.HoraFim <= fim:
		return true // new window fully contains the existing one
	}
	return false
}

func (s *reservaService) VerificarDisponibilidade(ctx context.Context, vagaID uint, data time.Time, horaInicio, horaFim string, excetoReservaID uint) (bool, error) {
	// Stored times are "HH:MM:SS"; callers may pass "HH:MM".
	horaInicio = normalizaHora(horaInicio)
	horaFim = normalizaHora(horaFim)

	ativas, err := s.repo.ListAtivasPorVagaEData(ctx, vagaID, data)
	if err != nil {
		return false, err
	}
	for i := range ativas {
		if excetoReservaID != 0 && ativas[i].ID == excetoReservaID {
			continue
		}
		if janelasConflitam(&ativas[i], horaInicio, horaFim) {
			return false, nil
		}
	}
	return true, nil
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// The availability check and the insert are two steps; the EXCLUDE constraint
// installed by infra.applySchemaPatches is what actually closes the window
// against a concurrent insert.

func (s *reservaService) Criar(ctx context.Context, clienteID uint, req dto.CriarReservaRequest) (*dto.ReservaResponse, error) {
	data, horaInicio, horaFim, err := parseJanela(req.Data, req.HoraInicio, req.HoraFim)
	if err != nil {
		return nil, err
	}

	veiculo, err := s.veiculoRepo.FindByID(ctx, req.VeiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: veículo %d", ErrNaoEncontrado, req.VeiculoID)
		}
		return nil, err
	}
	if veiculo.ClienteID != clienteID {
		return nil, fmt.Errorf("%w: veículo de outro cliente", ErrNaoAutorizado)
	}

	vaga, err := s.vagaRepo.FindByID(ctx, req.VagaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vaga %d", ErrNaoEncontrado, req.VagaID)
		}
		return nil, err
	}
	if veiculo.Tipo != vaga.Tipo {
		return nil, fmt.Errorf("%w: vaga %s não comporta veículo %s", ErrEstadoInvalido, vaga.Tipo, veiculo.Tipo)
	}

	disponivel, err := s.VerificarDisponibilidade(ctx, vaga.ID, data, horaInicio, horaFim, 0)
	if err != nil {
		return nil, err
	}
	if !disponivel {
		return nil, fmt.Errorf("%w: vaga %s em %s", ErrEstadoInvalido, vaga.Identificacao, req.Data)
	}

	reserva := &model.Reserva{
		Data:       data,
		HoraInicio: horaInicio,
		HoraFim:    horaFim,
		Status:     model.ReservaAtiva,
		ClienteID:  clienteID,
		VeiculoID:  veiculo.ID,
		VagaID:     vaga.ID,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, reserva); err != nil {
			return err
		}
		return s.vagaRepo.UpdateStatusTx(tx, vaga.ID, model.VagaOcupada)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notificar(ctx, clienteID, "Reserva confirmada",
		fmt.Sprintf("Sua reserva da vaga %s em %s, das %s às %s, foi confirmada.",
			vaga.Identificacao, req.Data, req.HoraInicio, req.HoraFim))

	reserva.Veiculo = veiculo
	reserva.Vaga = vaga
	return reservaToResponse(reserva), nil
}

// ── Atualizar ─────────────────────────────────────────────────────────────────

func (s *reservaService) Atualizar(ctx context.Context, id, clienteID uint, req dto.AtualizarReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reserva %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	if reserva.ClienteID != clienteID {
		return nil, fmt.Errorf("%w: reserva de outro cliente", ErrNaoAutorizado)
	}
	if reserva.Status != model.ReservaAtiva {
		return nil, fmt.Errorf("%w: reserva %s", ErrEstadoInvalido, reserva.Status)
	}

	data, horaInicio, horaFim, err := parseJanela(req.Data, req.HoraInicio, req.HoraFim)
	if err != nil {
		return nil, err
	}

	veiculo, err := s.veiculoRepo.FindByID(ctx, req.VeiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: veículo %d", ErrNaoEncontrado, req.VeiculoID)
		}
		return nil, err
	}
	if veiculo.ClienteID != clienteID {
		return nil, fmt.Errorf("%w: veículo de outro cliente", ErrNaoAutorizado)
	}

	vaga, err := s.vagaRepo.FindByID(ctx, reserva.VagaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vaga %d", ErrNaoEncontrado, reserva.VagaID)
		}
		return nil, err
	}
	if veiculo.Tipo != vaga.Tipo {
		return nil, fmt.Errorf("%w: vaga %s não comporta veículo %s", ErrEstadoInvalido, vaga.Tipo, veiculo.Tipo)
	}

	// The reservation being updated must not conflict with itself.
	disponivel, err := s.VerificarDisponibilidade(ctx, reserva.VagaID, data, horaInicio, horaFim, reserva.ID)
	if err != nil {
		return nil, err
	}
	if !disponivel {
		return nil, fmt.Errorf("%w: vaga ocupada no novo horário", ErrEstadoInvalido)
	}

	reserva.Data = data
	reserva.HoraInicio = horaInicio
	reserva.HoraFim = horaFim
	reserva.VeiculoID = veiculo.ID
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateTx(tx, reserva)
	})
	if txErr != nil {
		return nil, txErr
	}

	reserva.Veiculo = veiculo
	reserva.Vaga = vaga
	return reservaToResponse(reserva), nil
}

// ── Cancelar ──────────────────────────────────────────────────────────────────
// Only the owner may cancel, only from ATIVA. Status flip and space release
// happen in one transaction so a crash cannot strand an occupied vaga behind
// a cancelled reservation.

func (s *reservaService) Cancelar(ctx context.Context, reservaID, clienteID uint) error {
	reserva, err := s.repo.FindByID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: reserva %d", ErrNaoEncontrado, reservaID)
		}
		return err
	}
	if reserva.ClienteID != clienteID {
		return fmt.Errorf("%w: reserva de outro cliente", ErrNaoAutorizado)
	}
	if reserva.Status != model.ReservaAtiva {
		return fmt.Errorf("%w: reserva já cancelada ou concluída", ErrEstadoInvalido)
	}

	reserva.Status = model.ReservaCancelada
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, reserva); err != nil {
			return err
		}
		return s.vagaRepo.UpdateStatusTx(tx, reserva.VagaID, model.VagaDisponivel)
	})
	if txErr != nil {
		return txErr
	}

	s.notificar(ctx, clienteID, "Reserva cancelada",
		fmt.Sprintf("Sua reserva de %s, das %s às %s, foi cancelada.",
			reserva.Data.Format("2006-01-02"), reserva.HoraInicio, reserva.HoraFim))
	return nil
}

// ── Listar ────────────────────────────────────────────────────────────────────
// Presentation order: ATIVA, then CONCLUIDA, then everything else; inside each
// bucket date descending, then start time descending.

func ordemStatus(s model.StatusReserva) int {
	switch s {
	case model.ReservaAtiva:
		return 1
	case model.ReservaConcluida:
		return 2
	default:
		return 3
	}
}

func (s *reservaService) Listar(ctx context.Context, clienteID uint) ([]dto.ReservaResponse, error) {
	reservas, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reservas, func(i, j int) bool {
		ri, rj := &reservas[i], &reservas[j]
		if oi, oj := ordemStatus(ri.Status), ordemStatus(rj.Status); oi != oj {
			return oi < oj
		}
		if !ri.Data.Equal(rj.Data) {
			return ri.Data.After(rj.Data)
		}
		return ri.HoraInicio > rj.HoraInicio
	})

	resp := make([]dto.ReservaResponse, len(reservas))
	for i := range reservas {
		resp[i] = *reservaToResponse(&reservas[i])
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// parseJanela validates the date and normalizes "HH:MM" to "HH:MM:SS".
func parseJanela(dataStr, inicio, fim string) (time.Time, string, string, error) {
	data, err := time.Parse("2006-01-02", dataStr)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: data %q", ErrValidacao, dataStr)
	}
	horaInicio := normalizaHora(inicio)
	horaFim := normalizaHora(fim)
	if horaFim <= horaInicio {
		return time.Time{}, "", "", fmt.Errorf("%w: hora_fim deve ser posterior a hora_inicio", ErrValidacao)
	}
	return data, horaInicio, horaFim, nil
}

func normalizaHora(h string) string {
	if len(h) == 5 { // "HH:MM"
		return h + ":00"
	}
	return h
}

// notificar enqueues a best-effort email job; reservation flows never fail
// because the queue or the cliente lookup did.
func (s *reservaService) notificar(ctx context.Context, clienteID uint, assunto, corpo string) {
	if s.dispatcher == nil {
		return
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return
	}
	_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: cliente.Email,
		Subject: assunto,
		Body:    corpo,
	})
}

func reservaToResponse(r *model.Reserva) *dto.ReservaResponse {
	resp := &dto.ReservaResponse{
		ID:         r.ID,
		Data:       r.Data.Format("2006-01-02"),
		HoraInicio: r.HoraInicio,
		HoraFim:    r.HoraFim,
		Status:     string(r.Status),
		ClienteID:  r.ClienteID,
	}
	if r.Veiculo != nil {
		resp.Veiculo = &dto.VeiculoResponse{
			ID:        r.Veiculo.ID,
			Placa:     r.Veiculo.Placa,
			Modelo:    r.Veiculo.Modelo,
			Cor:       r.Veiculo.Cor,
			Tipo:      string(r.Veiculo.Tipo),
			ClienteID: r.Veiculo.ClienteID,
		}
	}
	if r.Vaga != nil {
		local := &dto.ReservaLocal{
			VagaID:        r.Vaga.ID,
			Identificacao: r.Vaga.Identificacao,
		}
		if est := r.Vaga.Estacionamento; est != nil {
			local.Estacionamento = est.Nome
			if est.Endereco != nil {
				local.Endereco = &dto.EnderecoResponse{
					Logradouro: est.Endereco.Logradouro,
					Numero:     est.Endereco.Numero,
					Bairro:     est.Endereco.Bairro,
					Cidade:     est.Endereco.Cidade,
					Estado:     est.Endereco.Estado,
					CEP:        est.Endereco.CEP,
				}
			}
		}
		resp.Local = local
	}
	return resp
}
