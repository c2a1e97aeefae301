package host

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stakeplug/internal/domain"
	"stakeplug/internal/plugin"
	"stakeplug/internal/services/contracts"
)

// maxArgsBytes bounds the size of a contract arguments body.
const maxArgsBytes = 1 << 20

// Server exposes a plugin registry and a contract service.
type Server struct {
	plugins   *plugin.Registry
	contracts domain.ContractService
	log       *log.Logger
}

// New returns a server. A nil logger discards access logs.
func New(plugins *plugin.Registry, cs domain.ContractService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{plugins: plugins, contracts: cs, log: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	r.HandleFunc("/healthz", healthHandlerFn()).Methods(http.MethodGet)

	r.HandleFunc("/plugins", s.pluginsHandlerFn()).Methods(http.MethodGet)
	r.HandleFunc("/plugins/{name}", s.manifestHandlerFn()).Methods(http.MethodGet)
	r.HandleFunc("/plugins/{name}/schema", s.schemaHandlerFn()).Methods(http.MethodGet)
	r.HandleFunc("/plugins/{name}/logo", s.logoHandlerFn()).Methods(http.MethodGet)
	r.HandleFunc("/plugins/{name}/contracts", s.createHandlerFn()).Methods(http.MethodPost)

	r.HandleFunc("/contracts", s.contractsHandlerFn()).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}", s.contractHandlerFn()).Methods(http.MethodGet)

	r.NotFoundHandler = s.accessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}))
	r.MethodNotAllowedHandler = s.accessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))
	return r
}

func healthHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) pluginsHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.plugins.Manifests())
	}
}

func (s *Server) manifestHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg, ok := s.lookup(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, reg.Manifest())
	}
}

func (s *Server) schemaHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg, ok := s.lookup(w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/schema+json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(reg.Schema())
	}
}

func (s *Server) logoHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg, ok := s.lookup(w, r)
		if !ok {
			return
		}
		logo := reg.Logo()
		w.Header().Set("Content-Type", reg.LogoContentType())
		w.Header().Set("Content-Length", strconv.Itoa(len(logo)))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(logo)
	}
}

func (s *Server) createHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := domain.PluginName(mux.Vars(r)["name"])

		funds, err := strconv.ParseUint(r.URL.Query().Get("funds"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "funds must be a positive integer number of satoshis")
			return
		}

		args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgsBytes))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}

		rec, err := s.contracts.CreateContract(name, args, domain.Amount(funds))
		if err != nil {
			s.fail(w, err)
			return
		}
		w.Header().Set("Location", "/contracts/"+rec.ID.String())
		writeJSON(w, http.StatusCreated, rec)
	}
}

func (s *Server) contractsHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		recs, err := s.contracts.ListContracts()
		if err != nil {
			s.fail(w, err)
			return
		}
		if recs == nil {
			recs = []domain.ContractRecord{}
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

func (s *Server) contractHandlerFn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := s.contracts.GetContract(domain.ContractID(mux.Vars(r)["id"]))
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*plugin.Registration, bool) {
	reg, err := s.plugins.Lookup(domain.PluginName(mux.Vars(r)["name"]))
	if err != nil {
		s.fail(w, err)
		return nil, false
	}
	return reg, true
}

// fail maps err to a status and writes it.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Printf("internal error: %v", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, plugin.ErrUnknownPlugin), errors.Is(err, contracts.ErrContractNotFound):
		return http.StatusNotFound
	case errors.Is(err, plugin.ErrInvalidArguments), errors.Is(err, contracts.ErrZeroFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
