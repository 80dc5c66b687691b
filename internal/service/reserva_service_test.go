package service

import (
	"context"
	"testing"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReservaSvc() (ReservaService, *stubReservaRepo, *stubVagaRepo, *stubVeiculoRepo) {
	reservaRepo := newStubReservaRepo()
	vagaRepo := newStubVagaRepo()
	veiculoRepo := newStubVeiculoRepo()
	clienteRepo := newStubClienteRepo()
	svc := NewReservaService(reservaRepo, vagaRepo, veiculoRepo, clienteRepo, nil)
	return svc, reservaRepo, vagaRepo, veiculoRepo
}

func seedVagaEVeiculo(vagaRepo *stubVagaRepo, veiculoRepo *stubVeiculoRepo, clienteID uint) (*model.Vaga, *model.Veiculo) {
	vaga := &model.Vaga{Identificacao: "A-01", Tipo: model.TipoVagaCarro, Status: model.VagaDisponivel, EstacionamentoID: 1}
	_ = vagaRepo.Create(context.Background(), vaga)
	veiculo := &model.Veiculo{Placa: "ABC1D23", Modelo: "Onix", Tipo: model.TipoVagaCarro, ClienteID: clienteID}
	_ = veiculoRepo.Create(context.Background(), veiculo)
	return vaga, veiculo
}

func TestJanelasConflitam(t *testing.T) {
	existente := &model.Reserva{HoraInicio: "10:00:00", HoraFim: "12:00:00"}

	cases := []struct {
		nome         string
		inicio, fim  string
		querConflito bool
	}{
		{"novo inicio dentro da janela", "11:00:00", "13:00:00", true},
		{"novo fim dentro da janela", "09:00:00", "11:00:00", true},
		{"nova janela contem a existente", "09:00:00", "13:00:00", true},
		{"nova janela contida na existente", "10:30:00", "11:30:00", true},
		{"janelas identicas", "10:00:00", "12:00:00", true},
		{"encosta no fim", "12:00:00", "14:00:00", false},
		{"encosta no inicio", "08:00:00", "10:00:00", false},
		{"totalmente antes", "07:00:00", "09:00:00", false},
		{"totalmente depois", "13:00:00", "15:00:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.querConflito, janelasConflitam(existente, tc.inicio, tc.fim))
		})
	}
}

func TestCriarReserva_EVerificarConflito(t *testing.T) {
	svc, _, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "ATIVA", resp.Status)
	assert.Equal(t, "10:00:00", resp.HoraInicio)
	assert.Equal(t, model.VagaOcupada, vagaRepo.vagas[vaga.ID].Status)

	// overlapping window on the same vaga and date is refused
	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "11:00", HoraFim: "13:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)

	// back-to-back is fine: the shared boundary belongs to one side only
	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "12:00", HoraFim: "14:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.NoError(t, err)

	// same window on another date is fine too
	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-11", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.NoError(t, err)
}

func TestCriarReserva_ValidacoesBasicas(t *testing.T) {
	svc, _, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	// window must be strictly positive
	_, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "12:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.ErrorIs(t, err, ErrValidacao)

	// someone else's vehicle
	_, err = svc.Criar(context.Background(), 2, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.ErrorIs(t, err, ErrNaoAutorizado)

	// vehicle type must match the space type
	moto := &model.Veiculo{Placa: "XYZ9A88", Modelo: "CG 160", Tipo: model.TipoVagaMoto, ClienteID: 1}
	_ = veiculoRepo.Create(context.Background(), moto)
	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: moto.ID, VagaID: vaga.ID,
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)

	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: 999, VagaID: vaga.ID,
	})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestAtualizarReserva_NaoConflitaComSigoMesma(t *testing.T) {
	svc, _, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)

	// shifting the window over its own old slot must not self-conflict
	updated, err := svc.Atualizar(context.Background(), resp.ID, 1, dto.AtualizarReservaRequest{
		Data: "2025-03-10", HoraInicio: "11:00", HoraFim: "13:00",
		VeiculoID: veiculo.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", updated.HoraInicio)
	assert.Equal(t, "13:00:00", updated.HoraFim)
}

func TestAtualizarReserva_SomenteAtiva(t *testing.T) {
	svc, reservaRepo, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)
	reservaRepo.reservas[resp.ID].Status = model.ReservaConcluida

	_, err = svc.Atualizar(context.Background(), resp.ID, 1, dto.AtualizarReservaRequest{
		Data: "2025-03-11", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID,
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestCancelarReserva(t *testing.T) {
	svc, reservaRepo, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)

	// non-owner cannot cancel
	err = svc.Cancelar(context.Background(), resp.ID, 2)
	assert.ErrorIs(t, err, ErrNaoAutorizado)

	// owner can; status flips and the vaga is released together
	require.NoError(t, svc.Cancelar(context.Background(), resp.ID, 1))
	assert.Equal(t, model.ReservaCancelada, reservaRepo.reservas[resp.ID].Status)
	assert.Equal(t, model.VagaDisponivel, vagaRepo.vagas[vaga.ID].Status)

	// cancelling twice is a state error, not a no-op
	err = svc.Cancelar(context.Background(), resp.ID, 1)
	assert.ErrorIs(t, err, ErrEstadoInvalido)

	err = svc.Cancelar(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestCancelarLiberaJanelaParaNovaReserva(t *testing.T) {
	svc, _, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Cancelar(context.Background(), resp.ID, 1))

	// cancelled reservations no longer block the window
	_, err = svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	assert.NoError(t, err)
}

func TestListarReservas_Ordenacao(t *testing.T) {
	svc, reservaRepo, _, _ := buildReservaSvc()

	dia := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	seed := []*model.Reserva{
		{ID: 1, ClienteID: 1, VagaID: 1, Data: dia("2025-01-03"), HoraInicio: "08:00:00", HoraFim: "09:00:00", Status: model.ReservaConcluida},
		{ID: 2, ClienteID: 1, VagaID: 1, Data: dia("2025-01-01"), HoraInicio: "10:00:00", HoraFim: "11:00:00", Status: model.ReservaAtiva},
		{ID: 3, ClienteID: 1, VagaID: 1, Data: dia("2025-01-02"), HoraInicio: "10:00:00", HoraFim: "11:00:00", Status: model.ReservaAtiva},
		{ID: 4, ClienteID: 1, VagaID: 1, Data: dia("2025-01-02"), HoraInicio: "14:00:00", HoraFim: "15:00:00", Status: model.ReservaCancelada},
		{ID: 5, ClienteID: 2, VagaID: 1, Data: dia("2025-01-05"), HoraInicio: "10:00:00", HoraFim: "11:00:00", Status: model.ReservaAtiva},
	}
	for _, r := range seed {
		reservaRepo.reservas[r.ID] = r
	}

	resp, err := svc.Listar(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp, 4)

	// ATIVA first (newest date first), then CONCLUIDA, then the rest
	assert.Equal(t, uint(3), resp[0].ID)
	assert.Equal(t, uint(2), resp[1].ID)
	assert.Equal(t, uint(1), resp[2].ID)
	assert.Equal(t, uint(4), resp[3].ID)
}

func TestAtualizarReserva_TipoDoVeiculoDeveCombinarComAVaga(t *testing.T) {
	svc, _, vagaRepo, veiculoRepo := buildReservaSvc()
	vaga, veiculo := seedVagaEVeiculo(vagaRepo, veiculoRepo, 1)

	resp, err := svc.Criar(context.Background(), 1, dto.CriarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: veiculo.ID, VagaID: vaga.ID,
	})
	require.NoError(t, err)

	// swapping in a MOTO keeps the CARRO vaga — must fail like Criar does
	moto := &model.Veiculo{Placa: "XYZ9A88", Modelo: "CG 160", Tipo: model.TipoVagaMoto, ClienteID: 1}
	_ = veiculoRepo.Create(context.Background(), moto)
	_, err = svc.Atualizar(context.Background(), resp.ID, 1, dto.AtualizarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: moto.ID,
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)

	// same-type swap stays allowed
	outro := &model.Veiculo{Placa: "DEF4G56", Modelo: "HB20", Tipo: model.TipoVagaCarro, ClienteID: 1}
	_ = veiculoRepo.Create(context.Background(), outro)
	updated, err := svc.Atualizar(context.Background(), resp.ID, 1, dto.AtualizarReservaRequest{
		Data: "2025-03-10", HoraInicio: "10:00", HoraFim: "12:00",
		VeiculoID: outro.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "DEF4G56", updated.Veiculo.Placa)
}

func TestVerificarDisponibilidade_AceitaHoraSemSegundos(t *testing.T) {
	svc, reservaRepo, _, _ := buildReservaSvc()
	dia, _ := time.Parse("2006-01-02", "2025-03-10")
	reservaRepo.reservas[7] = &model.Reserva{
		ID: 7, ClienteID: 1, VagaID: 3, Data: dia,
		HoraInicio: "10:00:00", HoraFim: "12:00:00", Status: model.ReservaAtiva,
	}

	// "HH:MM" input compares against stored "HH:MM:SS" — back-to-back stays free
	livre, err := svc.VerificarDisponibilidade(context.Background(), 3, dia, "12:00", "14:00", 0)
	require.NoError(t, err)
	assert.True(t, livre)

	livre, err = svc.VerificarDisponibilidade(context.Background(), 3, dia, "08:00", "10:00", 0)
	require.NoError(t, err)
	assert.True(t, livre)

	livre, err = svc.VerificarDisponibilidade(context.Background(), 3, dia, "11:00", "13:00", 0)
	require.NoError(t, err)
	assert.False(t, livre)
}

func TestVerificarDisponibilidade_ExcluiReservaInformada(t *testing.T) {
	svc, reservaRepo, _, _ := buildReservaSvc()
	dia, _ := time.Parse("2006-01-02", "2025-03-10")
	reservaRepo.reservas[7] = &model.Reserva{
		ID: 7, ClienteID: 1, VagaID: 3, Data: dia,
		HoraInicio: "10:00:00", HoraFim: "12:00:00", Status: model.ReservaAtiva,
	}

	livre, err := svc.VerificarDisponibilidade(context.Background(), 3, dia, "11:00:00", "13:00:00", 0)
	require.NoError(t, err)
	assert.False(t, livre)

	livre, err = svc.VerificarDisponibilidade(context.Background(), 3, dia, "11:00:00", "13:00:00", 7)
	require.NoError(t, err)
	assert.True(t, livre)
}
