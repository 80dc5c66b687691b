package service

// In-memory repository stubs. Methods taking *gorm.DB accept nil: runTx
// skips the real transaction when the service was built without a DB.

import (
	"context"
	"strings"
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"gorm.io/gorm"
)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	seq      uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) CreateTx(_ *gorm.DB, u *model.Usuario) error {
	if u.ID == 0 {
		r.seq++
		u.ID = r.seq
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Cliente ───────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) CreateTx(_ *gorm.DB, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) ExisteEmail(_ context.Context, email string, excetoID uint) (bool, error) {
	for _, c := range r.clientes {
		if c.ID != excetoID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Gestor ────────────────────────────────────────────────────────────────────

type stubGestorRepo struct {
	gestores map[uint]*model.Gestor
}

func newStubGestorRepo() *stubGestorRepo {
	return &stubGestorRepo{gestores: make(map[uint]*model.Gestor)}
}

func (r *stubGestorRepo) CreateTx(_ *gorm.DB, g *model.Gestor) error {
	r.gestores[g.ID] = g
	return nil
}

func (r *stubGestorRepo) FindByID(_ context.Context, id uint) (*model.Gestor, error) {
	g, ok := r.gestores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubGestorRepo) ExisteEmail(_ context.Context, email string, excetoID uint) (bool, error) {
	for _, g := range r.gestores {
		if g.ID != excetoID && strings.EqualFold(g.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGestorRepo) ExisteCNPJ(_ context.Context, cnpj string, excetoID uint) (bool, error) {
	for _, g := range r.gestores {
		if g.ID != excetoID && g.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGestorRepo) List(_ context.Context) ([]model.Gestor, error) {
	out := make([]model.Gestor, 0, len(r.gestores))
	for _, g := range r.gestores {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGestorRepo) Update(_ context.Context, g *model.Gestor) error {
	r.gestores[g.ID] = g
	return nil
}

func (r *stubGestorRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.gestores, id)
	return nil
}

var _ repository.GestorRepository = (*stubGestorRepo)(nil)

// ── Estacionamento ────────────────────────────────────────────────────────────

type stubEstacionamentoRepo struct {
	lots map[uint]*model.Estacionamento
	seq  uint
}

func newStubEstacionamentoRepo() *stubEstacionamentoRepo {
	return &stubEstacionamentoRepo{lots: make(map[uint]*model.Estacionamento)}
}

func (r *stubEstacionamentoRepo) Create(_ context.Context, e *model.Estacionamento) error {
	if e.ID == 0 {
		r.seq++
		e.ID = r.seq
	}
	r.lots[e.ID] = e
	return nil
}

func (r *stubEstacionamentoRepo) FindByID(_ context.Context, id uint) (*model.Estacionamento, error) {
	e, ok := r.lots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEstacionamentoRepo) List(_ context.Context) ([]model.Estacionamento, error) {
	out := make([]model.Estacionamento, 0, len(r.lots))
	for _, e := range r.lots {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEstacionamentoRepo) ListByGestor(_ context.Context, gestorID uint) ([]model.Estacionamento, error) {
	var out []model.Estacionamento
	for _, e := range r.lots {
		if e.GestorID == gestorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEstacionamentoRepo) Update(_ context.Context, e *model.Estacionamento) error {
	r.lots[e.ID] = e
	return nil
}

func (r *stubEstacionamentoRepo) ReplaceTelefones(_ context.Context, id uint, tels []model.Telefone) error {
	if e, ok := r.lots[id]; ok {
		e.Telefones = tels
	}
	return nil
}

func (r *stubEstacionamentoRepo) Delete(_ context.Context, id uint) error {
	delete(r.lots, id)
	return nil
}

var _ repository.EstacionamentoRepository = (*stubEstacionamentoRepo)(nil)

// ── Vaga ──────────────────────────────────────────────────────────────────────

type stubVagaRepo struct {
	vagas map[uint]*model.Vaga
	seq   uint
}

func newStubVagaRepo() *stubVagaRepo {
	return &stubVagaRepo{vagas: make(map[uint]*model.Vaga)}
}

func (r *stubVagaRepo) Create(_ context.Context, v *model.Vaga) error {
	if v.ID == 0 {
		r.seq++
		v.ID = r.seq
	}
	r.vagas[v.ID] = v
	return nil
}

func (r *stubVagaRepo) FindByID(_ context.Context, id uint) (*model.Vaga, error) {
	v, ok := r.vagas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVagaRepo) ListByEstacionamento(_ context.Context, estID uint) ([]model.Vaga, error) {
	var out []model.Vaga
	for _, v := range r.vagas {
		if v.EstacionamentoID == estID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVagaRepo) Update(_ context.Context, v *model.Vaga) error {
	r.vagas[v.ID] = v
	return nil
}

func (r *stubVagaRepo) UpdateStatusTx(_ *gorm.DB, id uint, status model.StatusVaga) error {
	if v, ok := r.vagas[id]; ok {
		v.Status = status
	}
	return nil
}

func (r *stubVagaRepo) Delete(_ context.Context, id uint) error {
	delete(r.vagas, id)
	return nil
}

var _ repository.VagaRepository = (*stubVagaRepo)(nil)

// ── Veiculo ───────────────────────────────────────────────────────────────────

type stubVeiculoRepo struct {
	veiculos map[uint]*model.Veiculo
	seq      uint
}

func newStubVeiculoRepo() *stubVeiculoRepo {
	return &stubVeiculoRepo{veiculos: make(map[uint]*model.Veiculo)}
}

func (r *stubVeiculoRepo) Create(_ context.Context, v *model.Veiculo) error {
	if v.ID == 0 {
		r.seq++
		v.ID = r.seq
	}
	r.veiculos[v.ID] = v
	return nil
}

func (r *stubVeiculoRepo) FindByID(_ context.Context, id uint) (*model.Veiculo, error) {
	v, ok := r.veiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVeiculoRepo) ExistePlaca(_ context.Context, placa string, excetoID uint) (bool, error) {
	for _, v := range r.veiculos {
		if v.ID != excetoID && v.Placa == placa {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVeiculoRepo) ListByCliente(_ context.Context, clienteID uint) ([]model.Veiculo, error) {
	var out []model.Veiculo
	for _, v := range r.veiculos {
		if v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVeiculoRepo) Update(_ context.Context, v *model.Veiculo) error {
	r.veiculos[v.ID] = v
	return nil
}

func (r *stubVeiculoRepo) Delete(_ context.Context, id uint) error {
	delete(r.veiculos, id)
	return nil
}

var _ repository.VeiculoRepository = (*stubVeiculoRepo)(nil)

// ── Reserva ───────────────────────────────────────────────────────────────────

type stubReservaRepo struct {
	reservas map[uint]*model.Reserva
	seq      uint
}

func newStubReservaRepo() *stubReservaRepo {
	return &stubReservaRepo{reservas: make(map[uint]*model.Reserva)}
}

func (r *stubReservaRepo) CreateTx(_ *gorm.DB, res *model.Reserva) error {
	if res.ID == 0 {
		r.seq++
		res.ID = r.seq
	}
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) FindByID(_ context.Context, id uint) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *stubReservaRepo) ListAtivasPorVagaEData(_ context.Context, vagaID uint, data time.Time) ([]model.Reserva, error) {
	day := data.Format("2006-01-02")
	var out []model.Reserva
	for _, res := range r.reservas {
		if res.VagaID == vagaID && res.Data.Format("2006-01-02") == day && res.Status == model.ReservaAtiva {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *stubReservaRepo) ListByCliente(_ context.Context, clienteID uint) ([]model.Reserva, error) {
	var out []model.Reserva
	for _, res := range r.reservas {
		if res.ClienteID == clienteID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *stubReservaRepo) UpdateTx(_ *gorm.DB, res *model.Reserva) error {
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) DB() *gorm.DB { return nil }

var _ repository.ReservaRepository = (*stubReservaRepo)(nil)

// ── Tarifa ────────────────────────────────────────────────────────────────────

type stubTarifaRepo struct {
	tarifas map[uint]*model.Tarifa
	seq     uint
}

func newStubTarifaRepo() *stubTarifaRepo {
	return &stubTarifaRepo{tarifas: make(map[uint]*model.Tarifa)}
}

func (r *stubTarifaRepo) Create(_ context.Context, t *model.Tarifa) error {
	if t.ID == 0 {
		r.seq++
		t.ID = r.seq
	}
	r.tarifas[t.ID] = t
	return nil
}

func (r *stubTarifaRepo) FindByID(_ context.Context, id uint) (*model.Tarifa, error) {
	t, ok := r.tarifas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTarifaRepo) FindByEstacionamentoETipo(_ context.Context, estID uint, tipo model.TipoVaga) (*model.Tarifa, error) {
	for _, t := range r.tarifas {
		if t.EstacionamentoID == estID && t.TipoVaga == tipo {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTarifaRepo) ListByEstacionamento(_ context.Context, estID uint) ([]model.Tarifa, error) {
	var out []model.Tarifa
	for _, t := range r.tarifas {
		if t.EstacionamentoID == estID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTarifaRepo) Update(_ context.Context, t *model.Tarifa) error {
	r.tarifas[t.ID] = t
	return nil
}

func (r *stubTarifaRepo) Delete(_ context.Context, id uint) error {
	delete(r.tarifas, id)
	return nil
}

var _ repository.TarifaRepository = (*stubTarifaRepo)(nil)

// ── RegistroAcesso ────────────────────────────────────────────────────────────

type stubRegistroRepo struct {
	registros map[uint]*model.RegistroAcesso
	seq       uint
}

func newStubRegistroRepo() *stubRegistroRepo {
	return &stubRegistroRepo{registros: make(map[uint]*model.RegistroAcesso)}
}

func (r *stubRegistroRepo) CreateTx(_ *gorm.DB, reg *model.RegistroAcesso) error {
	if reg.ID == 0 {
		r.seq++
		reg.ID = r.seq
	}
	r.registros[reg.ID] = reg
	return nil
}

func (r *stubRegistroRepo) FindByID(_ context.Context, id uint) (*model.RegistroAcesso, error) {
	reg, ok := r.registros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reg, nil
}

func (r *stubRegistroRepo) ListAbertos(_ context.Context) ([]model.RegistroAcesso, error) {
	var out []model.RegistroAcesso
	for _, reg := range r.registros {
		if reg.Saida == nil {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (r *stubRegistroRepo) UpdateTx(_ *gorm.DB, reg *model.RegistroAcesso) error {
	r.registros[reg.ID] = reg
	return nil
}

func (r *stubRegistroRepo) DB() *gorm.DB { return nil }

var _ repository.RegistroAcessoRepository = (*stubRegistroRepo)(nil)
