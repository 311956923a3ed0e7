package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/daniela/contamination-checker/internal/config"
	"github.com/daniela/contamination-checker/internal/parsing"
	"github.com/daniela/contamination-checker/internal/pipeline"
	"github.com/daniela/contamination-checker/internal/schemas"
	"github.com/daniela/contamination-checker/internal/types"
)

// AnalyzeRequest represents the request body for /analyze. The input table
// travels as raw CSV text, matching the upload flow of the interactive shell;
// weights are an optional wholesale override of the bundled defaults.
type AnalyzeRequest struct {
	InputCSV       string          `json:"input_csv" validate:"required"`
	Variant        string          `json:"variant,omitempty" validate:"omitempty,oneof=35 75"`
	Weights        json.RawMessage `json:"weights,omitempty"`
	ScoreThreshold float64         `json:"score_threshold" validate:"gte=0"`
	ReadsThreshold int             `json:"reads_threshold" validate:"gte=0"`
	Reconcile      bool            `json:"reconcile,omitempty"`
}

// handleAnalyze runs one full analysis for the posted input and configuration.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	variant := req.Variant
	if variant == "" {
		variant = config.VariantID35
	}
	ref := s.references[variant]

	input, err := parsing.ParseInputTable(strings.NewReader(req.InputCSV))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid input table: "+err.Error())
		return
	}

	weights := s.defaultWeights.Clone()
	if len(req.Weights) > 0 {
		if schemaPath := schemas.ResolveSchemaPath(schemas.WeightsSchema); schemaPath != "" {
			if err := schemas.ValidateDocument(schemaPath, req.Weights); err != nil {
				s.errorResponse(w, http.StatusBadRequest, "Invalid weights document: "+err.Error())
				return
			}
		}
		weights = types.NewWeightConfig()
		if err := json.Unmarshal(req.Weights, weights); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid weights document: "+err.Error())
			return
		}
	}

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Input:          input,
		Reference:      ref,
		Weights:        weights,
		ScoreThreshold: req.ScoreThreshold,
		ReadsThreshold: req.ReadsThreshold,
		Reconcile:      req.Reconcile,
	})
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleWeights returns the bundled default weight configuration.
func (s *Server) handleWeights(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.defaultWeights)
}

// handleReference returns a curated reference variant.
func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	ref, ok := s.references[r.PathValue("variant")]
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown curated variant")
		return
	}
	s.jsonResponse(w, http.StatusOK, ref)
}

// jsonResponse writes a JSON body with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

// errorResponse writes a JSON error body with the given status code.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
