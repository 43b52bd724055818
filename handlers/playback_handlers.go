package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"videothingy/zoom-editor/internal/zoom"
	"videothingy/zoom-editor/models"
	"videothingy/zoom-editor/utils"
)

// SelectBlockRequest names the block the user clicked on the timeline.
type SelectBlockRequest struct {
	BlockID int64 `json:"block_id" validate:"required,gt=0"`
}

// SelectBlock godoc
// @Summary Select a zoom block
// @Description Marks a block as the one shown in the block editor form.
// @Tags selection
// @Accept  json
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   selection body SelectBlockRequest true "Block to select"
// @Success 200 {object} zoom.Block
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 404 {object} ErrorResponse "Session or block not found"
// @Router /sessions/{sessionId}/selection [put]
func (h *ApplicationHandler) SelectBlock(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	var payload SelectBlockRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	var selected zoom.Block
	if err := sess.Do(func(store *zoom.Store) error {
		if err := store.Select(payload.BlockID); err != nil {
			return err
		}
		selected, _ = store.Selected()
		return nil
	}); err != nil {
		return utils.RespondWithError(c, statusForStoreError(err), "Block not found")
	}

	return utils.RespondWithMessage(c, fiber.StatusOK, "Block selected", selected)
}

// ClearSelection godoc
// @Summary Clear the block selection
// @Tags selection
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Success 200 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionId}/selection [delete]
func (h *ApplicationHandler) ClearSelection(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	_ = sess.Do(func(store *zoom.Store) error {
		store.ClearSelection()
		return nil
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Selection cleared",
	})
}

// GetTransform godoc
// @Summary Transform at a playback time
// @Description Called on every playback time update. Returns the zoom transform of the first block whose range contains t, or the identity transform.
// @Tags playback
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   t query number true "Playback time in seconds"
// @Success 200 {object} models.PlaybackTransform
// @Failure 400 {object} ErrorResponse "Missing or invalid t"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionId}/transform [get]
func (h *ApplicationHandler) GetTransform(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	raw := c.Query("t")
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Query parameter 't' must be a non-negative number of seconds")
	}

	var tr zoom.Transform
	_ = sess.Do(func(store *zoom.Store) error {
		tr = zoom.TransformAt(store, t)
		return nil
	})

	return utils.RespondWithJSON(c, fiber.StatusOK, models.NewPlaybackTransform(t, tr))
}
