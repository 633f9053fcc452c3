package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/obsidianco/lead-capture/internal/entity"
	"github.com/obsidianco/lead-capture/internal/infra/http/middleware"
	"github.com/obsidianco/lead-capture/internal/usecase"
)

// SubmitHandler serves one vertical's submission endpoint. The same handler
// is instantiated four times with different descriptors instead of four
// copy-pasted handlers.
type SubmitHandler struct {
	Vertical   entity.Vertical
	UseCase    *usecase.CaptureLeadUseCase
	Production bool
}

func NewSubmitHandler(v entity.Vertical, uc *usecase.CaptureLeadUseCase, production bool) *SubmitHandler {
	return &SubmitHandler{
		Vertical:   v,
		UseCase:    uc,
		Production: production,
	}
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Debug string `json:"debug,omitempty"`
}

func (h *SubmitHandler) Handle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Pre-flight always answers 200, whatever state the backends are in.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method Not Allowed"})
		return
	}

	var input usecase.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	input.IPAddress = getClientIP(r)
	input.UserAgent = r.Header.Get("User-Agent")

	output, err := h.UseCase.Execute(r.Context(), h.Vertical, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordLeadCaptured(h.Vertical.ID, "rejected")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		// Infrastructure failure: generic message out, detail only outside
		// production.
		middleware.RecordLeadCaptured(h.Vertical.ID, "failed")
		resp := errorResponse{Error: "Failed to save your information. Please try again."}
		if !h.Production {
			resp.Debug = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	if output.Duplicate {
		middleware.RecordLeadCaptured(h.Vertical.ID, "duplicate")
		if h.Vertical.DuplicateStatus == http.StatusOK {
			writeJSON(w, http.StatusOK, successResponse{Success: true, Message: h.Vertical.DuplicateMessage})
			return
		}
		writeJSON(w, h.Vertical.DuplicateStatus, errorResponse{Error: h.Vertical.DuplicateMessage})
		return
	}

	middleware.RecordLeadCaptured(h.Vertical.ID, "captured")
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: h.Vertical.SuccessMessage})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Multiple hops: the first entry is the client.
		if i := strings.Index(xff, ","); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
