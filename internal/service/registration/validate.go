package registration

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RegisterRequest is the raw /cadastrar payload before validation.
// DataVencimento is a plain string so a malformed date is reported as a
// field error instead of a JSON decode failure.
type RegisterRequest struct {
	Nome           string `json:"nome" validate:"required,min=3,max=100,nomevalido"`
	Email          string `json:"email" validate:"omitempty,email"`
	Whatsapp       string `json:"whatsapp" validate:"required,fone11"`
	CNPJ           string `json:"cnpj" validate:"required,cnpj14"`
	DataVencimento string `json:"data_vencimento" validate:"omitempty,datavenc"`
}

const dateLayout = "2006-01-02"

// Letters (ASCII plus the Latin-1 accented range) and spaces. Multiplication
// and division signs sit inside the accented block and are excluded.
var (
	nomeRe     = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	digits11Re = regexp.MustCompile(`^[0-9]{11}$`)
	digits14Re = regexp.MustCompile(`^[0-9]{14}$`)
)

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("nomevalido", func(fl validator.FieldLevel) bool {
		return nomeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("fone11", func(fl validator.FieldLevel) bool {
		return digits11Re.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cnpj14", func(fl validator.FieldLevel) bool {
		return digits14Re.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("datavenc", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Portuguese messages keyed by field+tag. Unknown combinations fall back to
// a generic per-field message.
var fieldMessages = map[string]string{
	"nome/required":            "nome é obrigatório",
	"nome/min":                 "nome deve ter entre 3 e 100 caracteres",
	"nome/max":                 "nome deve ter entre 3 e 100 caracteres",
	"nome/nomevalido":          "nome deve conter apenas letras e espaços",
	"email/email":              "email inválido",
	"whatsapp/required":        "whatsapp é obrigatório",
	"whatsapp/fone11":          "whatsapp deve ter exatamente 11 dígitos",
	"cnpj/required":            "cnpj é obrigatório",
	"cnpj/cnpj14":              "cnpj deve ter exatamente 14 dígitos",
	"data_vencimento/datavenc": "data_vencimento deve ser uma data válida no formato AAAA-MM-DD",
}

func message(field, tag string) string {
	if msg, ok := fieldMessages[field+"/"+tag]; ok {
		return msg
	}
	return field + " inválido"
}

// checkRequest trims the request in place and runs every rule, collecting
// all failing fields rather than stopping at the first.
func (s *Service) checkRequest(req *RegisterRequest) *ValidationError {
	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.TrimSpace(req.Email)
	req.Whatsapp = strings.TrimSpace(req.Whatsapp)
	req.CNPJ = strings.TrimSpace(req.CNPJ)
	req.DataVencimento = strings.TrimSpace(req.DataVencimento)

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "payload", Message: "payload inválido"}}}
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag()),
		})
	}
	return ve
}

// titleCaseNome capitalizes the first letter of each word, handling accented
// characters ("joão da silva" -> "João Da Silva").
func titleCaseNome(nome string) string {
	return cases.Title(language.BrazilianPortuguese).String(nome)
}

// normalizeWhatsapp prefixes the country code unless the submitted number
// already starts with it.
func normalizeWhatsapp(fone string) string {
	if strings.HasPrefix(fone, "55") {
		return fone
	}
	return "55" + fone
}

func parseDataVencimento(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
