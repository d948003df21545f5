package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/WilsonNous/nousmei-api/internal/config"
	"github.com/WilsonNous/nousmei-api/internal/domain"
	"github.com/WilsonNous/nousmei-api/internal/pkg/httputil"
	"github.com/WilsonNous/nousmei-api/internal/pkg/logger"
	"github.com/WilsonNous/nousmei-api/internal/pkg/metrics"
	"github.com/WilsonNous/nousmei-api/internal/service/registration"
)

const msgCNPJExists = "CNPJ já cadastrado"

// Handlers provides the HTTP handlers for the registration API. It owns the
// translation from service errors to HTTP statuses; business rules live in
// the service layer.
type Handlers struct {
	svc          *registration.Service
	db           *sql.DB
	app          config.AppConfig
	metrics      *metrics.Metrics
	queryTimeout time.Duration
}

// NewHandlers creates the API handlers.
func NewHandlers(svc *registration.Service, db *sql.DB, cfg *config.Config, m *metrics.Metrics) *Handlers {
	return &Handlers{
		svc:          svc,
		db:           db,
		app:          cfg.App,
		metrics:      m,
		queryTimeout: time.Duration(cfg.Database.QueryTimeoutSec) * time.Second,
	}
}

// Home reports liveness plus service identity.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"status":       "online",
		"versao":       h.app.Versao,
		"documentacao": h.app.Documentacao,
	})
}

// Cadastrar validates and persists a registration.
func (h *Handlers) Cadastrar(w http.ResponseWriter, r *http.Request) {
	var req registration.RegisterRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.queryTimeout)
	defer cancel()

	reg, err := h.svc.Register(ctx, req)
	if err != nil {
		h.registerError(w, r, err)
		return
	}

	h.count(func(m *metrics.Metrics) { m.RegistrationsAccepted.Inc() })
	logger.Info("registration created", "request_id", requestID(r), "id", reg.ID, "cnpj", reg.CNPJ)
	httputil.Created(w, map[string]any{
		"status":   "success",
		"id":       reg.ID,
		"mensagem": "Cadastro realizado com sucesso",
	})
}

func (h *Handlers) registerError(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := registration.IsValidation(err); ok {
		h.count(func(m *metrics.Metrics) { m.RegistrationsRejected.Inc() })
		httputil.JSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error:   verr.First(),
			Details: verr.Fields,
		})
		return
	}
	if errors.Is(err, registration.ErrCNPJExists) {
		h.count(func(m *metrics.Metrics) { m.RegistrationConflicts.Inc() })
		httputil.BadRequest(w, msgCNPJExists)
		return
	}
	httputil.InternalError(w, requestID(r), err)
}

// Lista returns every registration, newest first.
func (h *Handlers) Lista(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.queryTimeout)
	defer cancel()

	regs, err := h.svc.List(ctx)
	if err != nil {
		httputil.InternalError(w, requestID(r), err)
		return
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	httputil.OK(w, regs)
}

// HealthCheck pings the database so operators can tell liveness from
// readiness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status, dbStatus := "healthy", "up"
	if err := h.db.PingContext(ctx); err != nil {
		status, dbStatus = "degraded", "down"
		logger.Warn("health check db ping failed", "error", err)
	}
	httputil.OK(w, map[string]any{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handlers) count(fn func(*metrics.Metrics)) {
	if h.metrics != nil {
		fn(h.metrics)
	}
}
