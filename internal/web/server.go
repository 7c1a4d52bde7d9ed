// Package web serves the calculator to a browser. Each page gets its own
// calculator over a websocket; /api/apply is a stateless alternative for
// scripts.
package web

import (
	"context"
	"crypto/subtle"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/private-landing/calc/internal/api"
	"github.com/private-landing/calc/internal/calc"
	"github.com/private-landing/calc/internal/keypad"
	"github.com/private-landing/calc/internal/session"
)

//go:embed static
var static embed.FS

var page = template.Must(template.ParseFS(static, "static/index.html"))

// maxEvents bounds a single /api/apply request.
const maxEvents = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server routes HTTP requests to the calculator.
type Server struct {
	apiKey string
	log    *slog.Logger
	mux    *http.ServeMux
}

// NewServer creates a server. When apiKey is set, /api/apply requires it as
// a Bearer token.
func NewServer(apiKey string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{apiKey: apiKey, log: log, mux: http.NewServeMux()}

	assets, _ := fs.Sub(static, "static")
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets)))
	s.mux.HandleFunc("GET /api/keymap", s.handleKeymap)
	s.mux.HandleFunc("POST /api/apply", s.handleApply)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, keypad.Layout); err != nil {
		s.log.Error("render page", "err", err)
	}
}

func (s *Server) handleKeymap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.KeymapResponse{Keys: keypad.Keys()})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, api.APIError{Error: "missing or invalid API key", Code: "UNAUTHORIZED"})
		return
	}

	var req api.ApplyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.APIError{Error: "decode request: " + err.Error(), Code: "BAD_REQUEST"})
		return
	}
	if len(req.Events) > maxEvents {
		writeJSON(w, http.StatusBadRequest, api.APIError{Error: fmt.Sprintf("at most %d events", maxEvents), Code: "TOO_MANY_EVENTS"})
		return
	}

	start := calc.New()
	if req.State != nil {
		var err error
		if start, err = req.State.Calc(); err != nil {
			writeJSON(w, http.StatusBadRequest, api.APIError{Error: err.Error(), Code: "INVALID_STATE"})
			return
		}
	}

	sess := session.Restore(start, s.log)
	handled := make([]bool, len(req.Events))
	for i, e := range req.Events {
		handled[i] = api.Dispatch(sess, e)
	}

	writeJSON(w, http.StatusOK, api.ApplyResponse{
		State:   api.FromState(sess.State()),
		Display: sess.Display(),
		Handled: handled,
	})
}

// handleWS runs one calculator for the life of the connection. Frames are
// read, applied and answered in order on this goroutine.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log := s.log.With("remote", r.RemoteAddr)
	sess := session.New(log)
	log.Debug("page connected")

	if err := conn.WriteJSON(api.Frame{Display: sess.Display()}); err != nil {
		log.Debug("websocket write failed", "err", err)
		return
	}

	for {
		var e api.Event
		if err := conn.ReadJSON(&e); err != nil {
			if malformed(err) {
				log.Debug("dropping malformed frame", "err", err)
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read failed", "err", err)
			}
			return
		}

		handled := api.Dispatch(sess, e)
		if err := conn.WriteJSON(api.Frame{Display: sess.Display(), Handled: handled}); err != nil {
			log.Debug("websocket write failed", "err", err)
			return
		}
	}
}

// malformed reports whether a read failed on the frame's content rather
// than on the connection.
func malformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

func (s *Server) authorized(r *http.Request) bool {
	if s.apiKey == "" {
		return true
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + s.apiKey
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
