// Package httpapi exposes the network engine over HTTP with gin.
//
// Each request names its year cutoff. A handler rebuilds the network only
// when the cutoff differs from the last successful build, then runs its
// query; the build and the query run under one mutex so that no query ever
// observes a graph being rebuilt.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/network"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NodesResponse answers GET /v1/nodes.
type NodesResponse struct {
	Year    int             `json:"year"`
	BuildID string          `json:"build_id"`
	Nodes   []catalog.Lodge `json:"nodes"`
}

// DegreeResponse answers GET /v1/lodges/:id/degree.
type DegreeResponse struct {
	Year   int           `json:"year"`
	Lodge  catalog.Lodge `json:"lodge"`
	Degree int           `json:"degree"`
}

// ComponentsResponse answers GET /v1/components.
type ComponentsResponse struct {
	Year       int     `json:"year"`
	Count      int     `json:"count"`
	Components [][]int `json:"components"`
}

// ReachableResponse answers GET /v1/lodges/:id/reachable.
type ReachableResponse struct {
	Year      int             `json:"year"`
	Lodge     catalog.Lodge   `json:"lodge"`
	Reachable []catalog.Lodge `json:"reachable"`
}

// Handlers serves engine queries. The zero value is not usable.
type Handlers struct {
	mu  sync.Mutex
	eng *network.Engine
	log *slog.Logger
	now func() time.Time
}

// NewHandlers wraps eng. A nil logger means slog.Default().
func NewHandlers(eng *network.Engine, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}

	return &Handlers{eng: eng, log: log, now: time.Now}
}

// year reads the ?year= cutoff, defaulting to the current year.
func (h *Handlers) year(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return h.now().Year(), true
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year must be an integer"})
		return 0, false
	}

	return y, true
}

// lodge resolves the :id path parameter against the directory.
func (h *Handlers) lodge(c *gin.Context) (catalog.Lodge, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lodge id must be an integer"})
		return catalog.Lodge{}, false
	}
	l, ok := h.eng.Directory().Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "lodge " + strconv.Itoa(id) + " not found"})
		return catalog.Lodge{}, false
	}

	return l, true
}

// ensureBuilt rebuilds for year unless the last build already matches.
// Callers hold h.mu.
func (h *Handlers) ensureBuilt(c *gin.Context, year int) bool {
	if snap := h.eng.Snapshot(); snap.Built && snap.Year == year {
		return true
	}
	if err := h.eng.Build(c.Request.Context(), year); err != nil {
		h.fail(c, err)
		return false
	}

	return true
}

// fail maps engine errors to status codes.
func (h *Handlers) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, network.ErrBuild) {
		status = http.StatusBadGateway
	}
	h.log.Error("http_query_error", "path", c.FullPath(), "status", status, "err", err)
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// HandleNodes lists the lodges present for the cutoff.
func (h *Handlers) HandleNodes(c *gin.Context) {
	year, ok := h.year(c)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ensureBuilt(c, year) {
		return
	}
	nodes, err := h.eng.ListNodes()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, NodesResponse{Year: year, BuildID: h.eng.Snapshot().BuildID, Nodes: nodes})
}

// HandleDegree reports the number of distinct neighbors of a lodge.
func (h *Handlers) HandleDegree(c *gin.Context) {
	year, ok := h.year(c)
	if !ok {
		return
	}
	l, ok := h.lodge(c)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ensureBuilt(c, year) {
		return
	}

	c.JSON(http.StatusOK, DegreeResponse{Year: year, Lodge: l, Degree: h.eng.Degree(l)})
}

// HandleComponents reports the connected components.
func (h *Handlers) HandleComponents(c *gin.Context) {
	year, ok := h.year(c)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ensureBuilt(c, year) {
		return
	}
	comps, err := h.eng.Components(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ComponentsResponse{Year: year, Count: len(comps), Components: comps})
}

// HandleReachable lists the lodges reachable from a lodge.
func (h *Handlers) HandleReachable(c *gin.Context) {
	year, ok := h.year(c)
	if !ok {
		return
	}
	l, ok := h.lodge(c)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ensureBuilt(c, year) {
		return
	}
	reach, err := h.eng.Reachable(c.Request.Context(), l)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ReachableResponse{Year: year, Lodge: l, Reachable: reach})
}

// HandleSnapshot returns the last build description.
func (h *Handlers) HandleSnapshot(c *gin.Context) {
	h.mu.Lock()
	snap := h.eng.Snapshot()
	h.mu.Unlock()

	c.JSON(http.StatusOK, snap)
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "lodges": h.eng.Directory().Len()})
}
