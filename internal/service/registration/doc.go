// Package registration implements the applicant registration service.
//
// This is the single source of truth for what a valid registration looks
// like. Payloads flow in from the public /cadastrar endpoint, are validated
// and normalized here, checked against the CNPJ uniqueness rule, and handed
// to the Repository for persistence.
//
// The service layer contains pure business logic and depends on the
// Repository interface defined in repository.go. It never imports
// net/http or database/sql directly.
package registration
