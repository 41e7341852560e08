package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/conlang-tools/morphgen"
)

// ---- JSON response types ------------------------------------------------

type generateResponse struct {
	Lemma    string                 `json:"lemma"`
	Features morphgen.FeatureBundle `json:"features"`
	Surface  string                 `json:"surface"`
}

type realizeResponse struct {
	Text    string `json:"text"`
	Surface string `json:"surface"`
}

type paradigmResponse struct {
	Paradigm []morphgen.ParadigmEntry `json:"paradigm"`
}

type lexemesResponse struct {
	Lexemes []string `json:"lexemes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

func writeError(logger *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(logger, w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleGenerate(m *morphgen.Morphology, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(logger, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(logger, w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		feats, err := parseFeatures(r.URL.Query().Get("features"))
		if err != nil {
			writeError(logger, w, http.StatusBadRequest, err.Error())
			return
		}

		surface, err := m.Generate(lemma, feats)
		switch {
		case errors.Is(err, morphgen.ErrNotFound):
			writeError(logger, w, http.StatusNotFound, err.Error())
		case err != nil:
			writeError(logger, w, http.StatusInternalServerError, err.Error())
		default:
			writeJSON(logger, w, http.StatusOK, generateResponse{
				Lemma:    lemma,
				Features: feats,
				Surface:  surface,
			})
		}
	}
}

func handleRealize(m *morphgen.Morphology, logger *zap.Logger) http.HandlerFunc {
	realizer := morphgen.NewRealizer("english prompt realization", m, morphgen.EnglishPrompt)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(logger, w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(logger, w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		surface, err := realizer.Apply(body.Text)
		if err != nil {
			writeError(logger, w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(logger, w, http.StatusOK, realizeResponse{Text: body.Text, Surface: surface})
	}
}

func handleParadigm(m *morphgen.Morphology, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(logger, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(logger, w, http.StatusOK, paradigmResponse{Paradigm: m.Paradigm()})
	}
}

func handleTable(m *morphgen.Morphology, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(logger, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		format := morphgen.FormatPretty
		if r.URL.Query().Get("format") == string(morphgen.FormatJSON) {
			format = morphgen.FormatJSON
		}
		var subset []string
		if raw := r.URL.Query().Get("lexemes"); raw != "" {
			subset = strings.Split(raw, ",")
		}

		out, err := m.AutoTable(subset, format)
		if err != nil {
			writeError(logger, w, http.StatusInternalServerError, err.Error())
			return
		}
		if format == morphgen.FormatJSON {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(out)); err != nil {
			logger.Error("write table", zap.Error(err))
		}
	}
}

func handleLexemes(m *morphgen.Morphology, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(logger, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(logger, w, http.StatusOK, lexemesResponse{Lexemes: m.Lexicon().Lemmas()})
	}
}

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// newMux wires every API route for the given morphology.
func newMux(m *morphgen.Morphology, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", handleGenerate(m, logger))
	mux.HandleFunc("/api/realize", handleRealize(m, logger))
	mux.HandleFunc("/api/paradigm", handleParadigm(m, logger))
	mux.HandleFunc("/api/table", handleTable(m, logger))
	mux.HandleFunc("/api/lexemes", handleLexemes(m, logger))
	return mux
}

// ---- command ------------------------------------------------------------

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator as a JSON REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			m, err := loadMorphology()
			if err != nil {
				return err
			}
			logger.Info("definitions loaded",
				zap.String("path", viper.GetString("defs")),
				zap.Int("rules", len(m.Generator().Rules())),
				zap.Int("lexemes", m.Lexicon().Len()),
			)

			handler := cors.Default().Handler(requestLogger(logger, newMux(m, logger)))
			addr := viper.GetString("addr")
			logger.Info("listening", zap.String("addr", addr))
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}
