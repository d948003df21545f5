package registration

import (
	"strings"
	"testing"
)

func TestTitleCaseNome(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase words", "joão da silva", "João Da Silva"},
		{"all caps", "MARIA OLIVEIRA", "Maria Oliveira"},
		{"mixed case", "aNa ClArA", "Ana Clara"},
		{"single word", "carlos", "Carlos"},
		{"accented first letter", "ângela souza", "Ângela Souza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleCaseNome(tt.in); got != tt.want {
				t.Errorf("titleCaseNome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhatsapp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain 11 digits gets country code", "11999999999", "5511999999999"},
		{"already starts with 55", "55999998888", "55999998888"},
		{"recife area code", "81988887777", "5581988887777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWhatsapp(tt.in); got != tt.want {
				t.Errorf("normalizeWhatsapp(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Nome:     "Ana Silva",
		Whatsapp: "11988887777",
		CNPJ:     "12345678000199",
	}
}

func TestCheckRequest_FieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterRequest)
		wantField string
	}{
		{"valid baseline", func(r *RegisterRequest) {}, ""},
		{"nome exactly 3 letters", func(r *RegisterRequest) { r.Nome = "Ana" }, ""},
		{"nome 2 letters too short", func(r *RegisterRequest) { r.Nome = "An" }, "nome"},
		{"nome 100 letters ok", func(r *RegisterRequest) { r.Nome = strings.Repeat("a", 100) }, ""},
		{"nome 101 letters too long", func(r *RegisterRequest) { r.Nome = strings.Repeat("a", 101) }, "nome"},
		{"nome with accents ok", func(r *RegisterRequest) { r.Nome = "João Conceição" }, ""},
		{"nome with digits rejected", func(r *RegisterRequest) { r.Nome = "Ana 123" }, "nome"},
		{"nome with punctuation rejected", func(r *RegisterRequest) { r.Nome = "Ana-Silva" }, "nome"},
		{"nome missing", func(r *RegisterRequest) { r.Nome = "" }, "nome"},
		{"nome only whitespace", func(r *RegisterRequest) { r.Nome = "   " }, "nome"},
		{"whatsapp 10 digits rejected", func(r *RegisterRequest) { r.Whatsapp = "1198888777" }, "whatsapp"},
		{"whatsapp 12 digits rejected", func(r *RegisterRequest) { r.Whatsapp = "119888877771" }, "whatsapp"},
		{"whatsapp with letters rejected", func(r *RegisterRequest) { r.Whatsapp = "11a88887777" }, "whatsapp"},
		{"whatsapp missing", func(r *RegisterRequest) { r.Whatsapp = "" }, "whatsapp"},
		{"cnpj 13 digits rejected", func(r *RegisterRequest) { r.CNPJ = "1234567800019" }, "cnpj"},
		{"cnpj 15 digits rejected", func(r *RegisterRequest) { r.CNPJ = "123456780001991" }, "cnpj"},
		{"cnpj with letters rejected", func(r *RegisterRequest) { r.CNPJ = "123456780001aa" }, "cnpj"},
		{"cnpj with punctuation rejected", func(r *RegisterRequest) { r.CNPJ = "12.345.678/0001-99" }, "cnpj"},
		{"cnpj missing", func(r *RegisterRequest) { r.CNPJ = "" }, "cnpj"},
		{"email optional", func(r *RegisterRequest) { r.Email = "" }, ""},
		{"email valid", func(r *RegisterRequest) { r.Email = "ana@exemplo.com.br" }, ""},
		{"email invalid", func(r *RegisterRequest) { r.Email = "nao-eh-email" }, "email"},
		{"data_vencimento optional", func(r *RegisterRequest) { r.DataVencimento = "" }, ""},
		{"data_vencimento valid", func(r *RegisterRequest) { r.DataVencimento = "2026-09-20" }, ""},
		{"data_vencimento invalid format", func(r *RegisterRequest) { r.DataVencimento = "20/09/2026" }, "data_vencimento"},
		{"data_vencimento impossible date", func(r *RegisterRequest) { r.DataVencimento = "2026-02-30" }, "data_vencimento"},
	}

	svc := NewService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			verr := svc.checkRequest(&req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("checkRequest() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("checkRequest() = nil, want failure on %q", tt.wantField)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestCheckRequest_TrimsBeforeValidating(t *testing.T) {
	svc := NewService(nil)
	req := RegisterRequest{
		Nome:     "  joão da silva ",
		Whatsapp: " 11988887777 ",
		CNPJ:     " 12345678000199 ",
	}
	if verr := svc.checkRequest(&req); verr != nil {
		t.Fatalf("checkRequest() = %v, want nil", verr)
	}
	if req.Nome != "joão da silva" {
		t.Errorf("Nome = %q, want trimmed", req.Nome)
	}
	if req.Whatsapp != "11988887777" || req.CNPJ != "12345678000199" {
		t.Errorf("Whatsapp/CNPJ not trimmed: %q %q", req.Whatsapp, req.CNPJ)
	}
}

func TestCheckRequest_CollectsAllFailures(t *testing.T) {
	svc := NewService(nil)
	req := RegisterRequest{
		Nome:     "A1",
		Email:    "invalido",
		Whatsapp: "123",
		CNPJ:     "abc",
	}
	verr := svc.checkRequest(&req)
	if verr == nil {
		t.Fatal("expected validation failure")
	}
	if len(verr.Fields) < 4 {
		t.Errorf("expected all 4 fields reported, got %v", verr.Fields)
	}
	if verr.First() == "" {
		t.Error("First() should return a message")
	}
}

func TestParseDataVencimento(t *testing.T) {
	if got := parseDataVencimento(""); got != nil {
		t.Errorf("empty input should return nil, got %v", got)
	}
	got := parseDataVencimento("2026-09-20")
	if got == nil {
		t.Fatal("valid date returned nil")
	}
	if y, m, d := got.Date(); y != 2026 || int(m) != 9 || d != 20 {
		t.Errorf("parsed %v, want 2026-09-20", got)
	}
}
