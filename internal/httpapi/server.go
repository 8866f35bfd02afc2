package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flipd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Status() types.StatusResponse
	Ready() bool
	Show(position int) (types.PlanResponse, error)
	Step(delta int) (types.PlanResponse, error)
	Rescan() (types.PlanResponse, error)
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/window", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Post("/show", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.ShowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		runShift(w, r, "show", func() (types.PlanResponse, error) { return svc.Show(req.Position) })
	})

	r.Post("/next", func(w http.ResponseWriter, r *http.Request) {
		runShift(w, r, "next", func() (types.PlanResponse, error) { return svc.Step(1) })
	})

	r.Post("/prev", func(w http.ResponseWriter, r *http.Request) {
		runShift(w, r, "prev", func() (types.PlanResponse, error) { return svc.Step(-1) })
	})

	r.Post("/refresh", func(w http.ResponseWriter, r *http.Request) {
		runShift(w, r, "refresh", svc.Rescan)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("empty"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// runShift executes one window-moving operation and writes its plan.
func runShift(w http.ResponseWriter, r *http.Request, op string, fn func() (types.PlanResponse, error)) {
	if serverBaseCtx.Err() != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "server shutting down")
		return
	}
	lvl := requestLogLevel(r)
	start := time.Now()
	plan, err := fn()
	if err != nil {
		status := statusFor(err)
		writeJSONError(w, status, err.Error())
		logShift(r, lvl, op, status, time.Since(start), plan, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
	logShift(r, lvl, op, http.StatusOK, time.Since(start), plan, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logf(LevelError, "encode response: %v", err)
	}
}
