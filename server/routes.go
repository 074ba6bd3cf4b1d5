package server

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/patternkit/catalog"
	"github.com/kbukum/patternkit/version"
)

// PatternInfo describes a registered demo in API responses.
type PatternInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Brief    string `json:"brief"`
}

// RunResult is the response body for a demo run.
type RunResult struct {
	RunID      string   `json:"run_id"`
	Name       string   `json:"name"`
	Output     []string `json:"output"`
	DurationMS int64    `json:"duration_ms"`
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/version", s.handleVersion)

	v1 := s.engine.Group("/api/v1")
	v1.GET("/patterns", s.handleList)
	v1.GET("/patterns/:name", s.handleGet)
	v1.POST("/patterns/:name/run", s.handleRun)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleVersion(c *gin.Context) {
	RespondOK(c, version.Get())
}

func (s *Server) handleList(c *gin.Context) {
	demos := s.registry.List()
	infos := make([]PatternInfo, 0, len(demos))
	for _, d := range demos {
		if cat := c.Query("category"); cat != "" && cat != string(d.Category()) {
			continue
		}
		infos = append(infos, describe(d))
	}
	RespondOK(c, infos)
}

func (s *Server) handleGet(c *gin.Context) {
	d, err := s.registry.Get(c.Param("name"))
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOK(c, describe(d))
}

func (s *Server) handleRun(c *gin.Context) {
	name := c.Param("name")

	ctx := c.Request.Context()
	if s.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.config.RunTimeout)*time.Second)
		defer cancel()
	}

	var buf bytes.Buffer
	start := time.Now()
	if err := s.registry.Run(ctx, name, &buf); err != nil {
		RespondWithError(c, err)
		return
	}
	elapsed := time.Since(start)

	RespondOK(c, RunResult{
		RunID:      uuid.New().String(),
		Name:       name,
		Output:     splitLines(buf.String()),
		DurationMS: elapsed.Milliseconds(),
	})
}

func describe(d catalog.Demo) PatternInfo {
	return PatternInfo{
		Name:     d.Name(),
		Category: string(d.Category()),
		Brief:    d.Brief(),
	}
}

func splitLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}
