package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"group-trip-planner/internal/api/dto"
	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/services"
)

// OptionsHandler exposes the aggregator directly, mainly for UI
// pickers and debugging.
type OptionsHandler struct {
	Aggregator *services.Aggregator
	Logger     *slog.Logger
}

// List returns candidate options for one leg, cheapest first.
// Query params: from, to (location codes, required), from_name,
// to_name, departure (RFC 3339, defaults to now), mode (optional
// filter).
func (h *OptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from := domain.Location{Code: q.Get("from"), Name: q.Get("from_name")}
	to := domain.Location{Code: q.Get("to"), Name: q.Get("to_name")}

	departure := time.Now().UTC()
	if raw := q.Get("departure"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, "departure must be RFC 3339")
			return
		}
		departure = parsed
	}

	var mode domain.TransportMode
	if raw := q.Get("mode"); raw != "" {
		parsed, err := domain.ParseTransportMode(raw)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, "unknown transport mode")
			return
		}
		mode = parsed
	}

	options, err := h.Aggregator.GetOptions(r.Context(), from, to, departure, mode)
	if errors.Is(err, services.ErrInvalidInput) {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.Logger.Error("get options failed", slog.String("error", err.Error()))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOptionsResponse{Options: make([]dto.OptionResponse, 0, len(options))}
	for _, o := range options {
		res.Options = append(res.Options, dto.OptionFromDomain(o))
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
