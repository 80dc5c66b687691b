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

type GestorService interface {
	BuscarPorID(ctx context.Context, id uint) (*dto.GestorResponse, error)
	Listar(ctx context.Context) ([]dto.GestorResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarGestorRequest) (*dto.GestorResponse, error)
}

type gestorService struct {
	repo repository.GestorRepository
}

func NewGestorService(repo repository.GestorRepository) GestorService {
	return &gestorService{repo: repo}
}

func (s *gestorService) BuscarPorID(ctx context.Context, id uint) (*dto.GestorResponse, error) {
	gestor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gestor %d", ErrNaoEncontrado, id)
		}
		return nil, err
	}
	return &dto.GestorResponse{ID: gestor.ID, Nome: gestor.Nome, Email: gestor.Email, CNPJ: gestor.CNPJ}, nil
}

func (s *gestorService) Listar(ctx context.Context) ([]dto.GestorResponse, error) {
	gestores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GestorResponse, len(gestores))
	for i, g := range gestores {
		resp[i] = dto.GestorResponse{ID: g.ID, Nome: g.Nome, Email: g.Email, CNPJ: g.CNPJ}
	}
	return resp, nil
}

// Atualizar mirrors the cliente update: uniqueness checks exclude the record
// itself and the password is always re-hashed.
func (s *gestorService) Atualizar(ctx context.Context, id uint, req dto.AtualizarGestorRequest) (*dto.GestorResponse, error) {
	gestor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gestor %d", ErrNaoEncontrado, id)
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
	existe, err = s.repo.ExisteCNPJ(ctx, req.CNPJ, id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: %s", ErrCNPJDuplicado, req.CNPJ)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	gestor.Nome = req.Nome
	gestor.Email = req.Email
	gestor.CNPJ = req.CNPJ
	gestor.SenhaHash = string(hash)
	if err := s.repo.Update(ctx, gestor); err != nil {
		return nil, err
	}
	return &dto.GestorResponse{ID: gestor.ID, Nome: gestor.Nome, Email: gestor.Email, CNPJ: gestor.CNPJ}, nil
}
