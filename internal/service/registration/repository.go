package registration

import (
	"context"

	"github.com/WilsonNous/nousmei-api/internal/domain"
)

// Repository defines the data access contract for registrations.
type Repository interface {
	// ExistsByCNPJ returns true if a registration with this CNPJ is stored.
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)

	// Create persists a new registration and fills in the generated ID and
	// DataCadastro. The duplicate pre-check and the insert run inside one
	// transaction; if the unique index on cnpj rejects the write, Create
	// returns ErrCNPJExists and nothing is persisted.
	Create(ctx context.Context, reg *domain.Registration) error

	// List returns every stored registration, newest first.
	List(ctx context.Context) ([]domain.Registration, error)
}
