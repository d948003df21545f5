package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/WilsonNous/nousmei-api/internal/domain"
	"github.com/WilsonNous/nousmei-api/internal/service/registration"
)

// RegistrationRepo implements registration.Repository against PostgreSQL.
type RegistrationRepo struct{ db *sql.DB }

// NewRegistrationRepo creates a Postgres-backed registration repository.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

func (r *RegistrationRepo) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM interessados_nousmei WHERE cnpj = $1)`,
		cnpj,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check cnpj: %w", err)
	}
	return exists, nil
}

func (r *RegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO interessados_nousmei (nome, email, whatsapp, cnpj, data_vencimento, data_cadastro)
			VALUES ($1, $2, $3, $4, $5, NOW())
			RETURNING id, data_cadastro
		`, reg.Nome, nullString(reg.Email), reg.Whatsapp, reg.CNPJ, nullTime(reg.DataVencimento),
		).Scan(&reg.ID, &reg.DataCadastro)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return registration.ErrCNPJExists
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) List(ctx context.Context) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, email, whatsapp, cnpj, data_vencimento, data_cadastro
		FROM interessados_nousmei
		ORDER BY data_cadastro DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []domain.Registration
	for rows.Next() {
		var (
			reg   domain.Registration
			email sql.NullString
			venc  sql.NullTime
		)
		if err := rows.Scan(&reg.ID, &reg.Nome, &email, &reg.Whatsapp, &reg.CNPJ, &venc, &reg.DataCadastro); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		reg.Email = email.String
		if venc.Valid {
			t := venc.Time
			reg.DataVencimento = &t
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
