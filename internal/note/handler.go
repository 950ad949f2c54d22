package note

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	formatter *Formatter
}

func NewHandler(formatter *Formatter) *Handler {
	return &Handler{formatter: formatter}
}

// Generate accepts a structured report JSON body and returns the
// formatted OPD note. Contract violations in the payload are the
// caller's fault (400); generation failures are ours (502).
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := ValidatePayload(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := h.formatter.Generate(r.Context(), body)
	if err != nil {
		log.Printf("Note generation failed: %v", err)
		http.Error(w, "Failed to generate report", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"note": text})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/note", h.Generate)
}
