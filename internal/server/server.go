package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
	"github.com/JavierGuerrero99/talento-hub/internal/db"
	"github.com/JavierGuerrero99/talento-hub/internal/server/middleware"
	"github.com/JavierGuerrero99/talento-hub/internal/server/ratelimit"
	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

// SessionStore persists gateway sessions. Implemented by db.DB; tests
// substitute an in-memory store.
type SessionStore interface {
	CreateSession(ctx context.Context, userKey, userEmail, accessToken string) (uuid.UUID, error)
	GetSession(ctx context.Context, id uuid.UUID) (*db.Session, error)
	RevokeSession(ctx context.Context, id uuid.UUID) error
}

// Server is the HTTP gateway. It terminates gateway JWTs, maps them to
// stored upstream tokens, and serves normalized views of the legacy
// backend's data.
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	sessions    SessionStore
	upstream    *upstream.Client
	jwtService  *JWTService
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	UpstreamURL string
	Timeout     time.Duration
}

// New creates a new gateway instance.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	opts := upstream.DefaultOptions()
	if cfg.Timeout > 0 {
		opts.Timeout = cfg.Timeout
	}

	s := &Server{
		database:    database,
		sessions:    database,
		upstream:    upstream.New(cfg.UpstreamURL, opts),
		jwtService:  NewJWTService(jwtConfig),
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// handler builds the route surface. Everything except login and health
// sits behind the auth middleware.
func (s *Server) handler() http.Handler {
	protected := http.NewServeMux()
	protected.HandleFunc("POST /auth/logout", s.handleLogout)

	protected.HandleFunc("GET /vacancies", s.handleListVacancies)
	protected.HandleFunc("GET /vacancies/mine", s.handleMyVacancies)
	protected.HandleFunc("POST /vacancies", s.handleCreateVacancy)
	protected.HandleFunc("PUT /vacancies/{id}", s.handleUpdateVacancy)
	protected.HandleFunc("DELETE /vacancies/{id}", s.handleDeleteVacancy)
	protected.HandleFunc("GET /vacancies/{id}/report.pdf", s.handleVacancyReport)

	protected.HandleFunc("GET /vacancies/{id}/applications", s.handleListApplications)
	protected.HandleFunc("POST /applications/{id}/comments", s.handleSubmitComment)
	protected.HandleFunc("PUT /applications/{id}/status", s.handleUpdateStatus)

	protected.HandleFunc("POST /candidates/{id}/favorite", s.handleAddFavorite)
	protected.HandleFunc("DELETE /candidates/{id}/favorite", s.handleRemoveFavorite)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(protected))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Gateway starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Gateway stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// sessionClient resolves the request's gateway session and returns an
// upstream client authenticated with the stored access token.
func (s *Server) sessionClient(r *http.Request) (*upstream.Client, *db.Session, error) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		return nil, nil, &ErrSessionNotFound{}
	}
	sess, err := s.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, &ErrSessionNotFound{SessionID: sessionID}
	}
	return s.upstream.WithToken(sess.AccessToken), sess, nil
}

// upstreamError maps an upstream failure to a gateway response. A 401
// from the backend means the stored token died: the session is revoked
// so the client logs in again.
func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, sess *db.Session, err error) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		if sess != nil {
			if revokeErr := s.sessions.RevokeSession(r.Context(), sess.ID); revokeErr != nil {
				log.Printf("Error revoking session %s: %v", sess.ID, revokeErr)
			}
		}
		s.errorResponse(w, http.StatusUnauthorized, "la sesión expiró; inicia sesión de nuevo")
		return
	}

	status := HTTPStatus(err)
	if status == http.StatusBadGateway {
		log.Printf("Upstream error on %s %s: %v", r.Method, r.URL.Path, err)
		s.errorResponse(w, status, "el servidor de Talento-Hub no está disponible")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate
// limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
