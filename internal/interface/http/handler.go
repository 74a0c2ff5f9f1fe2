package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/travelkit/packing-assistant/internal/domain/packlist"
	apperrors "github.com/travelkit/packing-assistant/pkg/errors"
)

// Handler wires the HTTP transport to the packing list domain.
type Handler struct {
	packlistSvc packlist.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(packlistSvc packlist.Service, logger *slog.Logger) *Handler {
	return &Handler{
		packlistSvc: packlistSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Health serves the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "api"})
}

// BuildPacklist handles the JSON body variant of packing list generation.
func (h *Handler) BuildPacklist(c *gin.Context) {
	var req packlist.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.buildPacklist(c, req)
}

// BuildPacklistQuery handles the query parameter variant. Activities arrive
// as a comma separated list.
func (h *Handler) BuildPacklistQuery(c *gin.Context) {
	req := packlist.Request{
		City:       c.Query("city"),
		Start:      c.Query("start"),
		End:        c.Query("end"),
		Activities: splitActivities(c.Query("activities")),
		Profile:    c.Query("profile"),
	}
	h.buildPacklist(c, req)
}

func (h *Handler) buildPacklist(c *gin.Context, req packlist.Request) {
	resp, err := h.packlistSvc.Build(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "packlist_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func splitActivities(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
