package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/engine"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

// ============================================================================
// HTTP Transport - a Thin Adapter Over engine.Solver
// ============================================================================
//
// Every handler here is plumbing: it reads a signed session handle,
// looks up the live *engine.Solver the handle addresses, calls exactly
// one Solver method, and serializes the result. No puzzle-specific logic
// lives in this package - that is what distinguishes it from the
// "external collaborator" shells the core engine is deliberately
// agnostic about.
//
// ============================================================================

var cfg *config.Config

// RegisterRoutes wires the session-scoped solver API onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/session", createSessionHandler)
		api.POST("/session/:id/config", configHandler)
		api.POST("/session/:id/preset", presetHandler)
		api.POST("/session/:id/problem", problemHandler)
		api.POST("/session/:id/solve", solveHandler)
		api.GET("/session/:id/output", outputHandler)
		api.GET("/session/:id/trace", traceHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func createSessionHandler(c *gin.Context) {
	id, err := Global().Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	token, err := createToken(cfg.SessionSecret, SessionToken{ID: id, ExpiresAt: defaultExpiry()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_token": token,
		"expires_at":    time.Now().Add(constants.SessionTokenExpiry).Format(time.RFC3339),
	})
}

// resolveSession verifies the signed handle in the :id path parameter
// and returns the solver it addresses. It writes the error response
// itself and returns ok=false when the handle is invalid or unknown.
func resolveSession(c *gin.Context) (*engine.Solver, bool) {
	handle := c.Param("id")
	session, err := verifyToken(cfg.SessionSecret, handle)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session handle: " + err.Error()})
		return nil, false
	}

	solver, ok := Global().Get(session.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return solver, true
}

// engineErrorStatus maps the engine's distinct error kinds to an HTTP
// status: every caller-facing kind is a 400, an InternalError is a 500.
func engineErrorStatus(err error) int {
	switch err.(type) {
	case *engine.InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

type configRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func configHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}

	var req configRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := solver.Configure(req.Key, req.Value); err != nil {
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ready": solver.Ready()})
}

type presetRequest struct {
	Kind   string `json:"kind" binding:"required"`
	Params []int  `json:"params"`
}

func presetHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}

	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := solver.ApplyPreset(req.Kind, req.Params...); err != nil {
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ready": solver.Ready(), "columns": solver.Columns()})
}

type problemRequest struct {
	Problem string `json:"problem"`
}

func problemHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}

	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := solver.Problem(req.Problem); err != nil {
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"output": solver.Output()})
}

func solveHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}

	status, err := solver.Solution()
	if err != nil {
		c.JSON(engineErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"output": solver.Output(),
	})
}

func outputHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"output": solver.Output()})
}

func traceHandler(c *gin.Context) {
	solver, ok := resolveSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"steps":            solver.Trace(),
		"pretty":           solver.PrettyTrace(),
		"constraints_used": solver.ConstraintsUsed(),
	})
}
