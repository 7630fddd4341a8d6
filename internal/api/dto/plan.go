package dto

import (
	"time"

	"group-trip-planner/internal/domain"
)

type LocationDTO struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type OptionResponse struct {
	ID              string        `json:"id"`
	Mode            string        `json:"mode"`
	Provider        string        `json:"provider"`
	From            LocationDTO   `json:"from"`
	To              LocationDTO   `json:"to"`
	Departure       time.Time     `json:"departure"`
	Arrival         time.Time     `json:"arrival"`
	DurationMinutes int           `json:"duration_minutes"`
	CostCents       int64         `json:"cost_cents"`
	Currency        string        `json:"currency"`
	Stops           []LocationDTO `json:"stops"`
	BookingRef      string        `json:"booking_ref,omitempty"`
}

type RouteResponse struct {
	Option               OptionResponse `json:"option"`
	Score                float64        `json:"score"`
	TotalDurationMinutes int            `json:"total_duration_minutes"`
	TotalCostCents       int64          `json:"total_cost_cents"`
	Currency             string         `json:"currency"`
	DepartBy             time.Time      `json:"depart_by"`
}

type BuildPlanRequest struct {
	EventID       string                 `json:"event_id"`
	Participants  map[string]LocationDTO `json:"participants"`
	Destination   LocationDTO            `json:"destination"`
	TargetArrival time.Time              `json:"target_arrival"`
	Objective     string                 `json:"objective"`
	MaxGapMinutes int                    `json:"max_gap_minutes"`
}

type PlanResponse struct {
	EventID        string                   `json:"event_id"`
	Routes         map[string]RouteResponse `json:"routes"`
	Unresolved     []string                 `json:"unresolved"`
	Partial        bool                     `json:"partial"`
	Rendezvous     []time.Time              `json:"rendezvous"`
	TotalCostCents int64                    `json:"total_cost_cents"`
	Currency       string                   `json:"currency"`
	Objective      string                   `json:"objective"`
	CreatedAt      time.Time                `json:"created_at"`
}

type ListOptionsResponse struct {
	Options []OptionResponse `json:"options"`
}

func LocationFromDomain(l domain.Location) LocationDTO {
	return LocationDTO{Code: l.Code, Name: l.Name}
}

func (d LocationDTO) ToDomain() domain.Location {
	return domain.Location{Code: d.Code, Name: d.Name}
}

func OptionFromDomain(o domain.TransportOption) OptionResponse {
	stops := make([]LocationDTO, 0, len(o.Stops))
	for _, s := range o.Stops {
		stops = append(stops, LocationFromDomain(s))
	}

	return OptionResponse{
		ID:              o.ID,
		Mode:            string(o.Mode),
		Provider:        o.Provider,
		From:            LocationFromDomain(o.From),
		To:              LocationFromDomain(o.To),
		Departure:       o.Departure,
		Arrival:         o.Arrival,
		DurationMinutes: o.DurationMinutes,
		CostCents:       o.CostCents,
		Currency:        o.Currency,
		Stops:           stops,
		BookingRef:      o.BookingRef,
	}
}

func (r OptionResponse) ToDomain() domain.TransportOption {
	stops := make([]domain.Location, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, s.ToDomain())
	}

	return domain.TransportOption{
		ID:              r.ID,
		Mode:            domain.TransportMode(r.Mode),
		Provider:        r.Provider,
		From:            r.From.ToDomain(),
		To:              r.To.ToDomain(),
		Departure:       r.Departure,
		Arrival:         r.Arrival,
		DurationMinutes: r.DurationMinutes,
		CostCents:       r.CostCents,
		Currency:        r.Currency,
		Stops:           stops,
		BookingRef:      r.BookingRef,
	}
}

func RouteFromDomain(r domain.Route) RouteResponse {
	return RouteResponse{
		Option:               OptionFromDomain(r.Option),
		Score:                r.Score,
		TotalDurationMinutes: r.TotalDurationMinutes,
		TotalCostCents:       r.TotalCostCents,
		Currency:             r.Currency,
		DepartBy:             r.DepartBy,
	}
}

func (r RouteResponse) ToDomain() domain.Route {
	return domain.Route{
		Option:               r.Option.ToDomain(),
		Score:                r.Score,
		TotalDurationMinutes: r.TotalDurationMinutes,
		TotalCostCents:       r.TotalCostCents,
		Currency:             r.Currency,
		DepartBy:             r.DepartBy,
	}
}

func PlanFromDomain(p *domain.TransportPlan) PlanResponse {
	routes := make(map[string]RouteResponse, len(p.Routes))
	for id, r := range p.Routes {
		routes[id] = RouteFromDomain(r)
	}

	unresolved := p.Unresolved
	if unresolved == nil {
		unresolved = []string{}
	}
	rendezvous := p.Rendezvous
	if rendezvous == nil {
		rendezvous = []time.Time{}
	}

	return PlanResponse{
		EventID:        p.EventID,
		Routes:         routes,
		Unresolved:     unresolved,
		Partial:        p.Partial,
		Rendezvous:     rendezvous,
		TotalCostCents: p.TotalCostCents,
		Currency:       p.Currency,
		Objective:      string(p.Objective),
		CreatedAt:      p.CreatedAt,
	}
}

func (r PlanResponse) ToDomain() *domain.TransportPlan {
	routes := make(map[string]domain.Route, len(r.Routes))
	for id, rt := range r.Routes {
		routes[id] = rt.ToDomain()
	}

	return &domain.TransportPlan{
		EventID:        r.EventID,
		Routes:         routes,
		Unresolved:     r.Unresolved,
		Partial:        r.Partial,
		Rendezvous:     r.Rendezvous,
		TotalCostCents: r.TotalCostCents,
		Currency:       r.Currency,
		Objective:      domain.OptimizationObjective(r.Objective),
		CreatedAt:      r.CreatedAt,
	}
}
