package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"group-trip-planner/internal/api/dto"
	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/ports"
	"group-trip-planner/internal/services"
)

// PlanHandler builds and serves group transport plans.
type PlanHandler struct {
	Planner *services.Planner
	Repo    ports.PlanRepository
	Logger  *slog.Logger

	// DefaultMaxGapMinutes applies when a request omits the gap.
	DefaultMaxGapMinutes int
	// Deadline bounds a whole planning run; participants cut off by
	// it come back unresolved instead of blocking the request.
	Deadline time.Duration
}

// Build runs one planning invocation and stores the resulting plan.
func (h *PlanHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req dto.BuildPlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Logger, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	objective, err := domain.ParseObjective(req.Objective)
	if err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, "objective must be one of MINIMIZE_COST, MINIMIZE_TIME, BALANCED")
		return
	}

	maxGap := req.MaxGapMinutes
	if maxGap == 0 {
		maxGap = h.DefaultMaxGapMinutes
	}

	participants := make(map[string]domain.Location, len(req.Participants))
	for id, loc := range req.Participants {
		participants[id] = loc.ToDomain()
	}

	ctx := r.Context()
	if h.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Deadline)
		defer cancel()
	}

	plan, err := h.Planner.BuildPlan(ctx, services.BuildPlanRequest{
		EventID:       req.EventID,
		Participants:  participants,
		Destination:   req.Destination.ToDomain(),
		TargetArrival: req.TargetArrival,
		Objective:     objective,
		MaxGapMinutes: maxGap,
	})
	if errors.Is(err, services.ErrInvalidInput) {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.Logger.Error("build plan failed", slog.String("error", err.Error()))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	// A built plan is actionable even when the snapshot cannot be
	// stored, so persistence failures degrade to a log line.
	if err := h.Repo.Save(ctx, plan); err != nil {
		h.Logger.Error("plan persistence failed",
			slog.String("event_id", plan.EventID),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.PlanFromDomain(plan))
}

// Get serves the most recently stored plan for an event.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		writeError(w, r, h.Logger, http.StatusBadRequest, "event id is required")
		return
	}

	plan, err := h.Repo.Latest(r.Context(), eventID)
	if errors.Is(err, ports.ErrPlanNotFound) {
		writeError(w, r, h.Logger, http.StatusNotFound, "no plan stored for event")
		return
	}
	if err != nil {
		h.Logger.Error("load plan failed",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.PlanFromDomain(plan))
}
