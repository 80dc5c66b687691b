package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/dto"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ClienteService interface {
	BuscarPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) BuscarPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cliente %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	return &dto.ClienteResponse{ID: cliente.ID, Nome: cliente.Nome, Email: cliente.Email}, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i, c := range clientes {
		resp[i] = dto.ClienteResponse{ID: c.ID, Nome: c.Nome, Email: c.Email}
	}
	return resp, nil
}

// Atualizar re-validates email uniqueness excluding the record itself and
// re-hashes the submitted password unconditionally — even when the caller
// resends an unchanged value.
func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cliente %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}

	existe, err := s.repo.ExisteEmail(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: %s", ErrEmailDuplicado, req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	cliente.Nome = req.Nome
	cliente.Email = req.Email
	cliente.SenhaHash = string(hash)
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return &dto.ClienteResponse{ID: cliente.ID, Nome: cliente.Nome, Email: cliente.Email}, nil
}
