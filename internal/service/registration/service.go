package registration

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/WilsonNous/nousmei-api/internal/domain"
)

// Service implements registration business logic. It is safe for concurrent
// use: validation is pure and the only shared state is the repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a registration service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: newValidate()}
}

// Register validates and normalizes the payload, rejects duplicate CNPJs,
// and persists the record. On success the returned Registration carries the
// generated ID and DataCadastro.
//
// The duplicate pre-check here gives a clean error without opening a write;
// correctness under concurrent submissions of the same CNPJ rests on the
// unique index, which the repository maps back to ErrCNPJExists.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Registration, error) {
	if verr := s.checkRequest(&req); verr != nil {
		return nil, verr
	}

	exists, err := s.repo.ExistsByCNPJ(ctx, req.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCNPJExists
	}

	reg := &domain.Registration{
		Nome:           titleCaseNome(req.Nome),
		Email:          req.Email,
		Whatsapp:       normalizeWhatsapp(req.Whatsapp),
		CNPJ:           req.CNPJ,
		DataVencimento: parseDataVencimento(req.DataVencimento),
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// List returns every stored registration, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Registration, error) {
	return s.repo.List(ctx)
}
