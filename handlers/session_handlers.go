package handlers

import (
	"github.com/gofiber/fiber/v2"

	"videothingy/zoom-editor/internal/zoom"
	"videothingy/zoom-editor/models"
	"videothingy/zoom-editor/utils"
)

// SessionSuccessResponse defines the structure for a successful response carrying a session.
type SessionSuccessResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    models.SessionSnapshot `json:"data"`
}

// CreateSession godoc
// @Summary Open an editing session
// @Description Creates an empty, in-memory zoom block store for one editor. Sessions expire after a period of inactivity.
// @Tags sessions
// @Produce  json
// @Success 201 {object} SessionSuccessResponse "Session created"
// @Router /sessions [post]
func (h *ApplicationHandler) CreateSession(c *fiber.Ctx) error {
	sess := h.Sessions.Create()

	var snap models.SessionSnapshot
	_ = sess.Do(func(store *zoom.Store) error {
		snap = models.NewSessionSnapshot(sess.ID, sess.CreatedAt, store)
		return nil
	})

	return utils.RespondWithMessage(c, fiber.StatusCreated, "Session created successfully", snap)
}

// GetSession godoc
// @Summary Get an editing session
// @Description Returns the blocks, selection and add proposal of a session.
// @Tags sessions
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Success 200 {object} SessionSuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionId} [get]
func (h *ApplicationHandler) GetSession(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	var snap models.SessionSnapshot
	_ = sess.Do(func(store *zoom.Store) error {
		snap = models.NewSessionSnapshot(sess.ID, sess.CreatedAt, store)
		return nil
	})

	return utils.RespondWithMessage(c, fiber.StatusOK, "Session retrieved successfully", snap)
}

// DeleteSession godoc
// @Summary Close an editing session
// @Description Discards the session and all of its zoom blocks.
// @Tags sessions
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Success 200 {object} ErrorResponse "Session closed"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionId} [delete]
func (h *ApplicationHandler) DeleteSession(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	if err := h.Sessions.Delete(sess.ID); err != nil {
		// Lost a race with the sweeper or another delete.
		return utils.RespondWithError(c, statusForStoreError(err), "Session not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Session closed",
	})
}
