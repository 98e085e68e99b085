package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tourze/raffle-core/internal/activity"
	"github.com/tourze/raffle-core/internal/database"
	"github.com/tourze/raffle-core/internal/handler"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/metrics"
	"github.com/tourze/raffle-core/internal/prizeorder"
	"github.com/tourze/raffle-core/internal/raffle"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	raffleService     raffle.Service
	activityService   activity.Service
	prizeOrderService prizeorder.Service
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, raffleService raffle.Service, activityService activity.Service, prizeOrderService prizeorder.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Raffle routes
		raffleHandler := handler.NewRaffleHandler(raffleService)
		r.Route("/raffle", func(r chi.Router) {
			r.Post("/participate", raffleHandler.HandleParticipate)
			r.Post("/draw", raffleHandler.HandleDraw)
			r.Post("/participate-and-draw", raffleHandler.HandleParticipateAndDraw)
			r.Get("/can-participate", raffleHandler.HandleCanParticipate)
			r.Get("/history", raffleHandler.HandleGetHistory)
			r.Get("/unused-count", raffleHandler.HandleCountUnused)
		})

		// Activity routes
		activityHandler := handler.NewActivityHandler(activityService)
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.HandleGetActive)
			r.Get("/upcoming", activityHandler.HandleGetUpcoming)
			r.Get("/detail", activityHandler.HandleGetDetail)
		})

		// Prize claim routes
		prizeHandler := handler.NewPrizeOrderHandler(prizeOrderService)
		r.Route("/prizes", func(r chi.Router) {
			r.Get("/pending", prizeHandler.HandleGetPending)
			r.Get("/ordered", prizeHandler.HandleGetOrdered)
			r.Get("/info", prizeHandler.HandleGetOrderInfo)
			r.Post("/claim", prizeHandler.HandleClaim)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		raffleService:     raffleService,
		activityService:   activityService,
		prizeOrderService: prizeOrderService,
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Scope every request log line under a unique request ID
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
