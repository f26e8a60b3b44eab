package api

import (
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/navigator"
)

// RouteRequest asks for a route between two locations.
type RouteRequest struct {
	Start          string `json:"start" binding:"required"`
	End            string `json:"end" binding:"required"`
	Algorithm      string `json:"algorithm"`
	AccessibleOnly *bool  `json:"accessible_only"`
	By             string `json:"by" binding:"omitempty,oneof=distance time"`
}

// SessionRouteRequest routes a session's current selection.
type SessionRouteRequest struct {
	Algorithm      string `json:"algorithm"`
	AccessibleOnly *bool  `json:"accessible_only"`
	By             string `json:"by" binding:"omitempty,oneof=distance time"`
}

// SelectRequest picks a location in a session.
type SelectRequest struct {
	Location string `json:"location" binding:"required"`
}

// Segment is one drawable leg with catalog coordinates.
type Segment struct {
	From campus.Location `json:"from"`
	To   campus.Location `json:"to"`
}

// RouteResponse is the JSON form of navigator.Route.
type RouteResponse struct {
	RequestID     string              `json:"request_id"`
	Algorithm     navigator.Algorithm `json:"algorithm"`
	Start         string              `json:"start"`
	End           string              `json:"end"`
	Found         bool                `json:"found"`
	Path          []string            `json:"path"`
	Legs          []navigator.Leg     `json:"legs"`
	Segments      []Segment           `json:"segments"`
	TotalDistance float64             `json:"total_distance"`
	TotalTime     float64             `json:"total_time"`
	Message       string              `json:"message"`
	Details       string              `json:"details"`
}

// SessionResponse describes a session's selection state.
type SessionResponse struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Ready bool   `json:"ready"`
}

// HealthResponse reports liveness and graph size.
type HealthResponse struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}
