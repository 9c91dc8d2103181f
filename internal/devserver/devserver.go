// Package devserver is an in-memory stand-in for the BodyBuddy backend.
// It serves the same REST contract the real server does, so the TUI and
// the API client can run offline and integration tests do not need a
// Python backend. Chat replies come from the local persona tables.
package devserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Server holds the in-memory backend state.
type Server struct {
	mu       sync.Mutex
	logger   *logging.Logger
	validate *validator.Validate
	gen      *persona.Generator

	accounts map[string]*stubAccount
	tasks    map[string]stubTask
	chats    map[string][]chatMessage
}

type stubAccount struct {
	Username   string
	Password   string
	VoiceModel string
	AgentID    string
}

type stubTask struct {
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
	DueDate     string   `json:"due_date"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// New creates an empty stub server. A nil logger is replaced with a
// no-op one.
func New(logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Server{
		logger:   logger,
		validate: validator.New(),
		gen:      persona.NewGenerator(persona.Gentle, persona.ToneAriana, nil),
		accounts: make(map[string]*stubAccount),
		tasks:    make(map[string]stubTask),
		chats:    make(map[string][]chatMessage),
	}
}

// Router builds the HTTP handler with the backend's route layout.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/{username}", s.handleGetAccount)
		r.Post("/{username}/voice-model", s.handleUpdateVoiceModel)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/add", s.handleAddTask)
		r.Put("/update/{taskName}", s.handleUpdateTask)
		r.Delete("/delete/{taskName}", s.handleDeleteTask)
		r.Post("/subtask/add", s.handleAddSubtask)
		r.Delete("/subtask/remove", s.handleRemoveSubtask)
	})

	r.Route("/chat", func(r chi.Router) {
		r.Post("/send", s.handleChatSend)
		r.Get("/history/{userID}", s.handleChatHistory)
	})

	r.Post("/voice/say", s.handleVoiceSay)

	return r
}

// ListenAndServe runs the stub until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("stub backend listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// requestLogger logs one line per request in the app's structured
// format.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", chimiddleware.GetReqID(r.Context()))
	})
}

func newAgentID() string {
	return "agent-" + uuid.NewString()
}
