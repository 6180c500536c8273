package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/parts-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/parts-inventory/internal/config"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/apierr"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/bind"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/metric"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/middleware"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/swagger"
	"github.com/tuanvumaihuynh/parts-inventory/internal/service"
	"github.com/tuanvumaihuynh/parts-inventory/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg       config.HTTP
	corsCfg   config.Cors
	logger    *slog.Logger
	metrics   *metric.Metrics
	validator validator.Validator

	partSvc service.PartService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	corsCfg config.Cors,
	log *slog.Logger,
	partSvc service.PartService,
) (*Service, error) {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	return &Service{
		cfg:       cfg,
		corsCfg:   corsCfg,
		logger:    log.With(slog.String("service", "http")),
		metrics:   metric.New(),
		validator: v,
		partSvc:   partSvc,
	}, nil
}

// Addr returns the listen address built from the configured host and port.
func (s *Service) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.FormatUint(uint64(s.cfg.Port), 10))
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the fully wired router.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server stopped unexpectedly", slog.Any("error", err))
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Health(),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.corsCfg),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := newPartHandler(s.partSvc, s.validator)

	r.Get("/", s.handle(h.GetRoot))
	r.Route("/api", func(r chi.Router) {
		r.Get("/parts", s.handle(h.ListParts))
		r.Post("/parts", s.handle(h.CreatePart))
		r.Put("/parts/{part_id}", s.handle(h.UpdatePartStock))
		r.Get("/alerts", s.handle(h.ListRestockAlerts))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusNotFound, apierr.ErrorResponse{
			Code:    "routeNotFound",
			Message: "route not found",
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusMethodNotAllowed, apierr.ErrorResponse{
			Code:    "methodNotAllowed",
			Message: "method not allowed",
		})
	})

	r.Method(http.MethodGet, middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc returns the status and body to encode, or an error to map through apierr.
type handlerFunc func(w http.ResponseWriter, r *http.Request) (int, any, error)

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body, err := fn(w, r)
		if err != nil {
			if bind.IsBindError(err) {
				s.handleRequestError(w, r, err)
				return
			}
			s.handleResponseError(w, r, err)
			return
		}

		s.writeJSON(w, r, status, body)
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	err = apperr.ValidationErr.WrapParent(err)
	res := apierr.New(err)

	s.logger.WarnContext(r.Context(), "http request error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding error request",
			slog.Any("error", err))
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
