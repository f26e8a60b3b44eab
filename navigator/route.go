package navigator

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// NoPathMessage is shown when a search finds nothing.
const NoPathMessage = "No path found."

// Leg is one edge of a route with the attributes read from the graph.
type Leg struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Distance   float64 `json:"distance"`
	Time       float64 `json:"time"`
	Accessible bool    `json:"accessible"`
}

// Route is the outcome of one search.
type Route struct {
	Algorithm     Algorithm `json:"algorithm"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	Found         bool      `json:"found"`
	Path          core.Path `json:"path"`
	Legs          []Leg     `json:"legs"`
	TotalDistance float64   `json:"total_distance"`
	TotalTime     float64   `json:"total_time"`
}

// Message is the one-line summary: the path, or NoPathMessage.
func (r Route) Message() string {
	if !r.Found {
		return NoPathMessage
	}
	return r.Path.String()
}

// Details renders the per-leg breakdown followed by totals:
//
//	A -> B:
//	  Distance: 10.0 m
//	  Time: 2.0 min
//	  Accessible: Yes
//
//	Total Distance: 10.0 m
//	Total Time: 2.0 min
func (r Route) Details() string {
	if !r.Found {
		return NoPathMessage
	}

	legs := make([]string, len(r.Legs))
	for i, l := range r.Legs {
		var b strings.Builder
		b.WriteString(l.From + core.PathSeparator + l.To + ":\n")
		b.WriteString("  Distance: " + FormatNumber(l.Distance) + " m\n")
		b.WriteString("  Time: " + FormatNumber(l.Time) + " min\n")
		b.WriteString("  Accessible: " + yesNo(l.Accessible) + "\n")
		legs[i] = b.String()
	}

	return strings.Join(legs, "\n") +
		"\nTotal Distance: " + FormatNumber(r.TotalDistance) + " m" +
		"\nTotal Time: " + FormatNumber(r.TotalTime) + " min"
}

// FormatNumber prints v in shortest form, keeping ".0" on whole numbers.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// buildRoute expands path into legs and totals using g.
func buildRoute(g *core.Graph, algo Algorithm, start, end string, path core.Path, found bool) Route {
	r := Route{Algorithm: algo, Start: start, End: end, Found: found}
	if !found {
		return r
	}

	r.Path = path
	r.Legs = make([]Leg, 0, path.Hops())
	for i := 0; i+1 < len(path); i++ {
		attr, _ := g.Edge(path[i], path[i+1])
		r.Legs = append(r.Legs, Leg{
			From:       path[i],
			To:         path[i+1],
			Distance:   attr.Distance,
			Time:       attr.Time,
			Accessible: attr.Accessible,
		})
		r.TotalDistance += attr.Distance
		r.TotalTime += attr.Time
	}

	return r
}
