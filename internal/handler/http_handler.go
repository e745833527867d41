package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/ulid-service/internal/generator"
	"github.com/weiawesome/wes-io-live/ulid-service/pkg/log"
	"github.com/weiawesome/wes-io-live/ulid-service/pkg/response"
)

// Handler handles HTTP requests for the ULID service.
type Handler struct {
	registry      generator.Registry
	defaultFormat string
	maxBatch      int
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry generator.Registry, defaultFormat string, maxBatch int) *Handler {
	return &Handler{
		registry:      registry,
		defaultFormat: defaultFormat,
		maxBatch:      maxBatch,
	}
}

// GenerateResponse is returned by POST /api/v1/ids.
type GenerateResponse struct {
	Format generator.Format `json:"format"`
	ID     string           `json:"id,omitempty"`
	IDs    []string         `json:"ids,omitempty"`
}

// ValidateResponse is returned by GET /api/v1/ids/:id/validate.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.POST("", h.Generate)
			ids.GET("/:id", h.Parse)
			ids.GET("/:id/validate", h.Validate)
		}
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Generate creates one ID, or a batch when count is given.
func (h *Handler) Generate(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	gen, format, ok := h.generator(c)
	if !ok {
		return
	}

	rawCount, batch := c.GetQuery("count")
	if !batch {
		id, err := gen.Generate()
		if err != nil {
			l.Error().Err(err).Str(log.FieldIDFormat, string(format)).Msg("failed to generate id")
			response.InternalError(c, "failed to generate id")
			return
		}
		c.Set(log.FieldIDCount, 1)
		response.Created(c, GenerateResponse{Format: format, ID: id})
		return
	}

	count, err := strconv.Atoi(rawCount)
	if err != nil || count < 1 || count > h.maxBatch {
		response.BadRequest(c, fmt.Sprintf("count must be between 1 and %d, got %q", h.maxBatch, rawCount))
		return
	}

	ids, err := gen.GenerateBatch(count)
	if err != nil {
		l.Error().Err(err).Str(log.FieldIDFormat, string(format)).Int(log.FieldIDCount, count).Msg("failed to generate batch ids")
		response.InternalError(c, "failed to generate batch ids")
		return
	}
	c.Set(log.FieldIDCount, count)
	response.Created(c, GenerateResponse{Format: format, IDs: ids})
}

// Parse decodes an ID and returns all of its views.
func (h *Handler) Parse(c *gin.Context) {
	gen, _, ok := h.generator(c)
	if !ok {
		return
	}

	id := c.Param("id")
	result, err := gen.Parse(id)
	if err != nil {
		l := log.Ctx(c.Request.Context())
		l.Debug().Err(err).Str(log.FieldID, id).Msg("failed to parse id")
		response.Error(c, http.StatusBadRequest, response.CodeInvalidID, err.Error())
		return
	}

	response.Success(c, result)
}

// Validate reports whether an ID is well formed for the format.
func (h *Handler) Validate(c *gin.Context) {
	gen, _, ok := h.generator(c)
	if !ok {
		return
	}

	valid, reason := gen.Validate(c.Param("id"))
	response.Success(c, ValidateResponse{Valid: valid, Reason: reason})
}

// generator resolves the format query, writing the error response itself
// when the format is unknown.
func (h *Handler) generator(c *gin.Context) (generator.Generator, generator.Format, bool) {
	name := c.DefaultQuery("format", h.defaultFormat)
	gen, format, err := h.registry.Get(name)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeUnknownFormat, err.Error())
		return nil, "", false
	}
	c.Set(log.FieldIDFormat, string(format))
	return gen, format, true
}
