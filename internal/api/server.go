package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/logging"
	"github.com/pbaille/abook/internal/parser"
)

// Executor runs command text against the address book
type Executor interface {
	Execute(input string) (commands.Result, []domain.Person, error)
	DisplayPersons() []domain.Person
}

// Server handles HTTP requests for the address book API
type Server struct {
	logic Executor
	addr  string
}

// New creates a new API server
func New(l Executor, addr string) *Server {
	return &Server{logic: l, addr: addr}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /persons", s.listPersons)
	mux.HandleFunc("POST /commands", s.runCommand)
	mux.HandleFunc("GET /health", s.health)

	return withCORS(mux)
}

// Run serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Info().Msg("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// withCORS adds CORS headers for frontend development
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CommandRequest is the request body for running a command
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse is the result of a command plus the view it left behind
type CommandResponse struct {
	commands.Result
	Persons []domain.Person `json:"persons"`
}

func (s *Server) runCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Command) == "" {
		writeError(w, http.StatusBadRequest, "command is required")
		return
	}

	res, persons, err := s.logic.Execute(req.Command)
	if err != nil {
		var pe *parser.ParseError
		switch {
		case errors.As(err, &pe):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": pe.Message,
				"kind":  pe.Kind.String(),
			})
		case errors.Is(err, commands.ErrDuplicatePerson), errors.Is(err, commands.ErrInvalidPersonIndex):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{
		Result:  res,
		Persons: nonNil(persons),
	})
}

func (s *Server) listPersons(w http.ResponseWriter, r *http.Request) {
	persons := nonNil(s.logic.DisplayPersons())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"persons": persons,
		"count":   len(persons),
	})
}

func nonNil(persons []domain.Person) []domain.Person {
	if persons == nil {
		return []domain.Person{}
	}
	return persons
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
