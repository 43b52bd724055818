package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"videothingy/zoom-editor/internal/session"
	"videothingy/zoom-editor/internal/zoom"
	"videothingy/zoom-editor/utils"
)

var validate = validator.New()

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Sessions *session.Manager
	Logger   *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(sessions *session.Manager, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Sessions: sessions,
		Logger:   logger,
	}
}

// Register mounts the editor routes on router.
func (h *ApplicationHandler) Register(router fiber.Router) {
	router.Post("/sessions", h.CreateSession)
	router.Get("/sessions/:sessionId", h.GetSession)
	router.Delete("/sessions/:sessionId", h.DeleteSession)

	blocks := router.Group("/sessions/:sessionId/blocks")
	blocks.Get("", h.ListBlocks)
	blocks.Post("", h.CreateBlock)
	blocks.Get("/:blockId", h.GetBlock)
	blocks.Patch("/:blockId", h.UpdateBlock)
	blocks.Delete("/:blockId", h.DeleteBlock)

	router.Put("/sessions/:sessionId/selection", h.SelectBlock)
	router.Delete("/sessions/:sessionId/selection", h.ClearSelection)

	router.Get("/sessions/:sessionId/transform", h.GetTransform)
}

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// lookupSession resolves the :sessionId path parameter. A nil session means the
// error response has already been written; the handler returns the error as is.
func (h *ApplicationHandler) lookupSession(c *fiber.Ctx) (*session.Session, error) {
	sessionIDStr := c.Params("sessionId")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		h.Logger.Warnf("Invalid session ID format: %s", sessionIDStr)
		return nil, utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid session ID format")
	}

	sess, err := h.Sessions.Get(sessionID)
	if err != nil {
		h.Logger.WithField("session_id", sessionID).Warn("Session not found")
		return nil, utils.RespondWithError(c, fiber.StatusNotFound, "Session not found")
	}
	return sess, nil
}

func parseBlockID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("blockId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid block ID format: %s", raw)
	}
	return id, nil
}

// statusForStoreError maps zoom store errors onto HTTP status codes.
func statusForStoreError(err error) int {
	switch {
	case errors.Is(err, zoom.ErrInvalidRange):
		return fiber.StatusBadRequest
	case errors.Is(err, zoom.ErrNotFound), errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, zoom.ErrOverlap):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
