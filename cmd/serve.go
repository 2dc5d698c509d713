package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midi2hltas/action"
	"github.com/jsphweid/midi2hltas/config"
	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/convert"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/jsphweid/midi2hltas/scheduler"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const maxUploadSize = 32 << 20

var listenAddr string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", constants.GetListenAddr(), "listen address (defaults to $MIDI2HLTAS_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long: `Serves POST /convert (multipart: file, actions repeated per track, legato,
tieBreak, preamble) and
GET /actions. The config file supplies every value the request leaves out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger.Printf("Listening on %v", listenAddr)
		return http.ListenAndServe(listenAddr, NewRouter(cfg, logger))
	},
}

type server struct {
	base   *config.Config
	logger *log.Logger
}

// NewRouter serves conversions with base as the default config.
func NewRouter(base *config.Config, logger *log.Logger) http.Handler {
	s := &server{base: base, logger: logger}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", s.handleConvert).Methods("POST")
	router.HandleFunc("/actions", handleActions).Methods("GET")
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{"X-Script-Id"},
	}).Handler(router)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func handleActions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ActionsResponse{
		Actions:   action.Names(),
		TieBreaks: []string{scheduler.LowestRemainder.String(), scheduler.HighestPitchFirst.String()},
	})
}

// requestConfig copies the base config and applies the form fields.
func (s *server) requestConfig(r *http.Request) (*config.Config, error) {
	cfg := *s.base
	// one actions field per track, in track order
	if v := r.Form["actions"]; len(v) > 0 {
		actions, err := action.ParseList(v)
		if err != nil {
			return nil, err
		}
		cfg.Actions = action.NewTable(actions...)
	}
	if v := r.FormValue("legato"); v != "" {
		legato, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "legato")
		}
		cfg.Legato = uint32(legato)
	}
	if v := r.FormValue("tieBreak"); v != "" {
		tb, err := scheduler.ParseTieBreak(v)
		if err != nil {
			return nil, err
		}
		cfg.TieBreak = tb
	}
	if v := r.FormValue("preamble"); v != "" {
		preamble, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "preamble")
		}
		cfg.Preamble = preamble
	}
	return &cfg, cfg.Validate()
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "reading upload"))
		return
	}

	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "missing file"))
		return
	}
	defer file.Close()

	res, err := convert.Reader(file, convert.Options{Config: cfg, Logger: s.logger})
	if err != nil {
		s.logger.Printf("Could not convert %v: %v", header.Filename, err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Script-Id", res.Summary.ScriptID.String())
	w.Write(res.Script)
}
