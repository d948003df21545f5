package registration

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the registration service layer.
var (
	// ErrCNPJExists means a record with the same CNPJ is already stored.
	// The Postgres repository also returns it when the unique index on
	// cnpj rejects a concurrent insert that slipped past the pre-check.
	ErrCNPJExists = errors.New("cnpj já cadastrado")
)

// FieldError describes a single failing field in a registration payload.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensagem"`
}

// ValidationError carries every field that failed validation. It is always
// a client error; nothing touched storage when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validação falhou: " + strings.Join(msgs, "; ")
}

// First returns the first failing field's message, used as the top-level
// mensagem in API responses for compatibility with older clients that only
// read a single string.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return "payload inválido"
	}
	return e.Fields[0].Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
