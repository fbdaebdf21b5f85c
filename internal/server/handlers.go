package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/problemgen"
)

// maxBodyBytes bounds POST /generate bodies.
const maxBodyBytes = 64 << 10

// GenerateResponse is the body returned by /generate.
type GenerateResponse struct {
	BatchID    string                     `json:"batch_id"`
	Count      int                        `json:"count"`
	Challenges []problemgen.GeneratedItem `json:"challenges"`
}

// MetaResponse lists the accepted display names.
type MetaResponse struct {
	Branches       []string       `json:"branches"`
	Levels         []string       `json:"levels"`
	Scenarios      []string       `json:"scenarios"`
	ExamplePayload map[string]any `json:"example_payload"`
}

func errorBody(msg string) gin.H { return gin.H{"detail": msg} }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": s.gen.ModelID()})
}

// Meta returns the catalog listing served by GET /meta.
func Meta() MetaResponse {
	return MetaResponse{
		Branches:  catalog.CategoryLabels(),
		Levels:    catalog.LevelLabels(),
		Scenarios: catalog.ScenarioLabels(),
		ExamplePayload: map[string]any{
			"branch":       catalog.CategoryLabel("Combinatorics"),
			"school_level": catalog.LevelLabel(catalog.LevelHighSchool),
			"scenario":     catalog.ScenarioLabel("sport"),
			"seed":         42,
		},
	}
}

func (s *Server) meta(c *gin.Context) {
	c.JSON(http.StatusOK, Meta())
}

func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if rej := s.limiter.allow(c.ClientIP()); rej != nil {
			c.Header("Retry-After", strconv.Itoa(retrySeconds(rej.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody(rej.Message))
			return
		}
		c.Next()
	}
}

func (s *Server) generatePost(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("reading body: "+err.Error()))
		return
	}
	if err := validateBody(body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	var req problemgen.GenerationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	s.generate(c, req)
}

func (s *Server) generateGet(c *gin.Context) {
	req := problemgen.GenerationRequest{
		Category: c.Query("branch"),
		Level:    c.Query("school_level"),
		Scenario: c.Query("scenario"),
	}
	if v := c.Query("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorBody("seed must be an integer"))
			return
		}
		req.Seed = &seed
	}
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorBody("count must be an integer"))
			return
		}
		req.Count = n
	}
	s.generate(c, req)
}

func (s *Server) generate(c *gin.Context, req problemgen.GenerationRequest) {
	ctx := c.Request.Context()
	if s.cfg.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.GenerateTimeout)
		defer cancel()
	}

	batch, err := s.gen.GenerateBatch(ctx, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, problemgen.ErrInvalidRequest) {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Error().Err(err).Int("status", status).Msg("generate failed")
		c.JSON(status, errorBody(err.Error()))
		return
	}

	if s.batches != nil {
		rec, err := batch.Record()
		if err == nil {
			err = s.batches.Save(ctx, rec)
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("batch", batch.ID.String()).Msg("batch not saved")
		}
	}

	c.JSON(http.StatusOK, GenerateResponse{
		BatchID:    batch.ID.String(),
		Count:      len(batch.Items),
		Challenges: batch.Items,
	})
}
