package domain

import "time"

// Registration represents an applicant enrolled in the DAS reminder program.
// Nome arrives title-cased and Whatsapp arrives with the country code
// already applied; normalization happens in the service layer before a
// Registration is constructed.
type Registration struct {
	ID             int64      `json:"id" db:"id"`
	Nome           string     `json:"nome" db:"nome"`
	Email          string     `json:"email,omitempty" db:"email"`
	Whatsapp       string     `json:"whatsapp" db:"whatsapp"`
	CNPJ           string     `json:"cnpj" db:"cnpj"`
	DataVencimento *time.Time `json:"data_vencimento,omitempty" db:"data_vencimento"`
	DataCadastro   time.Time  `json:"data_cadastro" db:"data_cadastro"`
}
