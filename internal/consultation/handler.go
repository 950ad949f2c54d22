package consultation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type UtteranceRequest struct {
	Text string `json:"text"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.Create(r.Context())
	if err != nil {
		http.Error(w, "Failed to create consultation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"consultation_id": id.String(),
	})
}

// AppendUtterance records one finalized utterance from the transcription
// source. The pipeline assigns the speaker label; the response echoes
// the utterance with its attribution. Empty text is accepted and
// ignored.
func (h *Handler) AppendUtterance(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	var req UtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	event, err := h.svc.Append(r.Context(), id, req.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if event == nil {
		json.NewEncoder(w).Encode(map[string]string{"text": ""})
		return
	}
	json.NewEncoder(w).Encode(event)
}

func (h *Handler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	transcript, err := h.svc.Transcript(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"transcript": transcript,
	})
}

// Stream pushes transcript events to the client over SSE until the
// client disconnects or the consultation is closed.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	events, cancel, err := h.svc.Subscribe(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	defer cancel()

	flusher, okFlush := w.(http.Flusher)
	if !okFlush {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			data, _ := json.Marshal(event)
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// Finalize is the end-of-consultation signal: it returns the structured
// report and resets the session for the next consultation.
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	report, err := h.svc.Finalize(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"type": "structured",
		"data": report,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	h.svc.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetArchivedReport(w http.ResponseWriter, r *http.Request) {
	id, ok := consultationID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.ArchivedReport(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func consultationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid consultation ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "Consultation not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Processing failed: "+err.Error(), http.StatusInternalServerError)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/consultations", h.Create)
	r.Post("/consultations/{id}/utterances", h.AppendUtterance)
	r.Get("/consultations/{id}/transcript", h.GetTranscript)
	r.Get("/consultations/{id}/stream", h.Stream)
	r.Post("/consultations/{id}/finalize", h.Finalize)
	r.Delete("/consultations/{id}", h.Delete)
	r.Get("/reports/{id}", h.GetArchivedReport)
}
