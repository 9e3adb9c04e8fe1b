package support

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/config"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	"go.uber.org/zap"
)

// systemPrompt is the fixed instruction sent with every relayed message.
// There is no conversation memory; each request is a single user turn.
const systemPrompt = "You are the Pixico support assistant. Pixico is a catalog of AI image " +
	"prompts, organized by category and AI model, with a blog. Help visitors find, copy and " +
	"use prompts, and answer questions about the site. Keep answers short and friendly. " +
	"Respond in plain text only, without markdown formatting or emphasis markers."

// StripEmphasis removes literal markdown emphasis markers from upstream
// replies. The model is told not to emit them; this catches any that slip
// through.
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	return s
}

type Service struct {
	cfg    config.SupportConfig
	logger *zap.Logger
}

func NewService(cfg config.SupportConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Reply relays one message to the configured completions provider and returns
// the cleaned text.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	raw, err := complete(ctx, s.cfg, systemPrompt, message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(StripEmphasis(raw)), nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/support/chat", h.chat)
}

func (h *Handler) chat(c *gin.Context) {
	// The message must be a JSON string. Decoding into json.RawMessage first
	// lets a non-string value be rejected before any upstream call.
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	var message string
	if len(body.Message) == 0 || json.Unmarshal(body.Message, &message) != nil {
		response.BadRequest(c, "message must be a string")
		return
	}
	if strings.TrimSpace(message) == "" {
		response.BadRequest(c, "message must not be empty")
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), message)
	if err != nil {
		if err == ErrNotConfigured {
			h.svc.logger.Error("support relay is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": 0, "code": http.StatusInternalServerError, "message": "support is not configured"})
			return
		}
		h.svc.logger.Error("support upstream call failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}
