package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/paywallkit/offertext/internal/domain"
	"github.com/paywallkit/offertext/internal/placeholder"
	"github.com/paywallkit/offertext/internal/pricing"
)

// Handler provides HTTP endpoints for previewing offer placeholder sets.
type Handler struct{}

// NewHandler creates a new API handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BuildPlaceholders handles POST /api/v1/placeholders. The body is a product
// offer snapshot; the response is its full placeholder token set.
func (h *Handler) BuildPlaceholders(w http.ResponseWriter, r *http.Request) {
	offer, err := decodeOffer(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer payload")
		return
	}
	writeJSON(w, http.StatusOK, placeholder.Build(offer))
}

type pricePerUnitResponse struct {
	Unit  domain.PeriodUnit `json:"unit"`
	Price *string           `json:"price"`
}

// PricePerUnit handles POST /api/v1/price-per-unit?unit=day|week|month|year.
// Price is null when no per-unit price can be derived for the offer.
func (h *Handler) PricePerUnit(w http.ResponseWriter, r *http.Request) {
	unit := domain.PeriodUnit(r.URL.Query().Get("unit"))
	switch unit {
	case domain.PeriodUnitDay, domain.PeriodUnitWeek, domain.PeriodUnitMonth, domain.PeriodUnitYear:
	default:
		writeError(w, http.StatusBadRequest, "unit must be one of day, week, month, year")
		return
	}

	offer, err := decodeOffer(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer payload")
		return
	}

	resp := pricePerUnitResponse{Unit: unit}
	if price, ok := pricing.PerUnit(offer, unit); ok {
		resp.Price = &price
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeOffer(r *http.Request) (domain.ProductOffer, error) {
	var offer domain.ProductOffer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		return domain.ProductOffer{}, err
	}
	return offer, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
