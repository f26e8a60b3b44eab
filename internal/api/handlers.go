package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/navigator"
)

var errUnknownSession = errors.New("api: unknown session")

func (s *Server) handleHealth(c *gin.Context) {
	g := s.nav.Graph()
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Nodes: g.VertexCount(), Edges: g.EdgeCount()})
}

func (s *Server) handleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, s.nav.Catalog().Locations())
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, navigator.Algorithms())
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	for _, name := range []string{req.Start, req.End} {
		if !s.known(name) {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: %q", navigator.ErrUnknownLocation, name))
			return
		}
	}
	s.route(c, req.Start, req.End, req.Algorithm, req.AccessibleOnly, req.By)
}

func (s *Server) handleCreateSession(c *gin.Context) {
	_, view := s.sessions.create(s.nav.Catalog())
	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleSelect(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("id")
	var (
		view SessionResponse
		err  error
	)
	if !s.sessions.with(id, func(sel *navigator.Selection) {
		err = sel.Pick(req.Location)
		view = sessionView(id, sel)
	}) {
		s.fail(c, http.StatusNotFound, errUnknownSession)
		return
	}
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleSessionRoute(c *gin.Context) {
	var req SessionRouteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
	}

	var start, end string
	if !s.sessions.with(c.Param("id"), func(sel *navigator.Selection) {
		start, end = sel.Start(), sel.End()
	}) {
		s.fail(c, http.StatusNotFound, errUnknownSession)
		return
	}
	if start == "" || end == "" {
		s.fail(c, http.StatusBadRequest, navigator.ErrIncompleteSelection)
		return
	}
	s.route(c, start, end, req.Algorithm, req.AccessibleOnly, req.By)
}

func (s *Server) handleResetSelection(c *gin.Context) {
	id := c.Param("id")
	var view SessionResponse
	if !s.sessions.with(id, func(sel *navigator.Selection) {
		sel.Reset()
		view = sessionView(id, sel)
	}) {
		s.fail(c, http.StatusNotFound, errUnknownSession)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if !s.sessions.remove(c.Param("id")) {
		s.fail(c, http.StatusNotFound, errUnknownSession)
		return
	}
	c.Status(http.StatusNoContent)
}

// route resolves request defaults, runs the search and writes the response.
func (s *Server) route(c *gin.Context, start, end, algoName string, accessible *bool, by string) {
	algo := s.defaults.algorithm
	if algoName != "" {
		var err error
		if algo, err = navigator.ParseAlgorithm(algoName); err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
	}

	var opts []navigator.RouteOption
	accessibleOnly := s.defaults.accessibleOnly
	if accessible != nil {
		accessibleOnly = *accessible
	}
	if accessibleOnly {
		opts = append(opts, navigator.AccessibleOnly())
	}
	if by == "time" {
		opts = append(opts, navigator.ByTime())
	}

	r, err := s.nav.Route(algo, start, end, opts...)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, s.routeResponse(c, r))
}

func (s *Server) routeResponse(c *gin.Context, r navigator.Route) RouteResponse {
	resp := RouteResponse{
		RequestID:     c.GetString(ctxRequestID),
		Algorithm:     r.Algorithm,
		Start:         r.Start,
		End:           r.End,
		Found:         r.Found,
		Path:          r.Path,
		Legs:          r.Legs,
		Segments:      []Segment{},
		TotalDistance: r.TotalDistance,
		TotalTime:     r.TotalTime,
		Message:       r.Message(),
		Details:       r.Details(),
	}
	if resp.Path == nil {
		resp.Path = []string{}
	}
	if resp.Legs == nil {
		resp.Legs = []navigator.Leg{}
	}

	cat := s.nav.Catalog()
	for _, l := range r.Legs {
		from, okFrom := cat.Lookup(l.From)
		to, okTo := cat.Lookup(l.To)
		if okFrom && okTo {
			resp.Segments = append(resp.Segments, Segment{From: from, To: to})
		}
	}
	return resp
}

// known reports whether name is a catalog location or a graph node.
func (s *Server) known(name string) bool {
	return s.nav.Catalog().Has(name) || s.nav.Graph().HasVertex(name)
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	s.logger.Debug("request rejected",
		zap.String("request_id", c.GetString(ctxRequestID)),
		zap.Int("status", status),
		zap.Error(err),
	)
	c.JSON(status, ErrorResponse{Error: err.Error(), RequestID: c.GetString(ctxRequestID)})
}
