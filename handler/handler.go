package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Protocol-Lattice/gqlp/internal/config"
	"github.com/Protocol-Lattice/gqlp/parser"
	"github.com/Protocol-Lattice/gqlp/printer"
	"github.com/Protocol-Lattice/gqlp/token"
)

// ParseRequest is the body of a parse request.
type ParseRequest struct {
	Schema string `json:"schema"`
}

// ErrorView is a positioned error as returned to clients.
type ErrorView struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// Result is the response to a parse: either data or errors is set.
type Result struct {
	Data   *printer.View `json:"data,omitempty"`
	Errors []ErrorView   `json:"errors,omitempty"`
}

// Handler serves the parser over HTTP and WebSocket.
type Handler struct {
	cfg      config.ServerConfig
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// New creates a Handler.
func New(cfg config.ServerConfig, log *slog.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes returns the service mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /parse", h.Parse)
	mux.HandleFunc("POST /upload", h.Upload)
	mux.HandleFunc("GET /watch", h.Watch)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	return h.withRequestID(mux)
}

// withRequestID tags every request with an id and logs it.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		h.log.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// parse runs the parser and converts the outcome into a Result.
func parse(schema string) (Result, error) {
	tree, err := parser.Parse(schema)
	if err != nil {
		return Result{Errors: []ErrorView{errorView(err)}}, err
	}
	return Result{Data: printer.Build(tree)}, nil
}

func errorView(err error) ErrorView {
	ev := ErrorView{Message: err.Error()}
	var p token.Positioned
	if errors.As(err, &p) {
		pos := p.Position()
		ev.Line, ev.Column = pos.Line, pos.Column
	}
	return ev
}

// Parse handles POST /parse with a JSON ParseRequest body.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}

	var req ParseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	res, err := parse(req.Schema)
	status := http.StatusOK
	if err != nil {
		h.log.Info("schema rejected", "error", err)
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

// UploadResult is the outcome for one file part of an upload.
type UploadResult struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
	Result
}

// Upload handles POST /upload with a multipart form. Every file part is a
// schema document; they are parsed concurrently and reported in form order,
// fields sorted by name.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	// If not multipart, delegate to the JSON handler
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.Parse(w, r)
		return
	}

	if r.ContentLength > h.cfg.MaxUploadBytes {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		http.Error(w, "no schema files in form", http.StatusBadRequest)
		return
	}

	var results []UploadResult
	var headers []*multipart.FileHeader
	for _, field := range slices.Sorted(maps.Keys(r.MultipartForm.File)) {
		for _, header := range r.MultipartForm.File[field] {
			results = append(results, UploadResult{Field: field, Filename: header.Filename})
			headers = append(headers, header)
		}
	}

	// Each goroutine owns one slot of results.
	var wg sync.WaitGroup
	for i, header := range headers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i].Result = h.parseUpload(results[i].Field, header)
		}()
	}
	wg.Wait()

	status := http.StatusOK
	for _, res := range results {
		if len(res.Errors) > 0 {
			status = http.StatusUnprocessableEntity
			break
		}
	}
	writeJSON(w, status, map[string]any{"files": results})
}

func (h *Handler) parseUpload(field string, header *multipart.FileHeader) Result {
	filename := header.Filename
	file, err := header.Open()
	if err != nil {
		h.log.Warn("failed to open upload", "field", field, "file", filename, "error", err)
		return Result{Errors: []ErrorView{{Message: "unable to open file"}}}
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Warn("failed to read upload", "field", field, "file", filename, "error", err)
		return Result{Errors: []ErrorView{{Message: "unable to read file"}}}
	}
	h.log.Debug("uploaded schema", "file", filename, "bytes", len(data))
	res, err := parse(string(data))
	if err != nil {
		h.log.Info("schema rejected", "file", filename, "error", err)
	}
	return res
}

// Watch handles GET /watch. After the WebSocket upgrade every text message
// is parsed and answered with one Result message, until the client leaves.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.cfg.MaxBodyBytes)

	session := uuid.NewString()
	log := h.log.With("session", session)
	log.Debug("watch session opened")

	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("watch session read failed", "error", err)
			}
			break
		}
		if kind != websocket.TextMessage {
			continue
		}
		res, err := parse(string(msg))
		if err != nil {
			log.Debug("schema rejected", "error", err)
		}
		if err := conn.WriteJSON(res); err != nil {
			log.Warn("failed to write result", "error", err)
			break
		}
	}
	log.Debug("watch session closed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
