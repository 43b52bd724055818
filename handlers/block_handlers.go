package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"videothingy/zoom-editor/internal/zoom"
	"videothingy/zoom-editor/models"
	"videothingy/zoom-editor/utils"
)

// CreateBlockRequest defines the request body for adding a zoom block.
// When both times are omitted the session's proposed range is used.
type CreateBlockRequest struct {
	StartTime *float64 `json:"start_time,omitempty" validate:"omitempty,gte=0"`
	EndTime   *float64 `json:"end_time,omitempty" validate:"omitempty,gt=0"`
}

// UpdateBlockRequest carries the block fields a drag or form edit changes.
// Pointers are used to distinguish between omitted fields and zero-value fields.
type UpdateBlockRequest struct {
	StartTime *float64 `json:"start_time,omitempty" validate:"omitempty,gte=0"`
	EndTime   *float64 `json:"end_time,omitempty" validate:"omitempty,gt=0"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Scale     *float64 `json:"scale,omitempty" validate:"omitempty,gt=0"`
}

// Patch converts the request into a store patch.
func (r UpdateBlockRequest) Patch() zoom.Patch {
	return zoom.Patch{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		X:         r.X,
		Y:         r.Y,
		Scale:     r.Scale,
	}
}

// BlockMutationResponse is returned by the add, update and delete routes.
type BlockMutationResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    models.BlockMutation `json:"data"`
}

// ListBlocks godoc
// @Summary List zoom blocks
// @Description Returns the session's zoom blocks in insertion order.
// @Tags blocks
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Success 200 {array} zoom.Block
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionId}/blocks [get]
func (h *ApplicationHandler) ListBlocks(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	var blocks []zoom.Block
	_ = sess.Do(func(store *zoom.Store) error {
		blocks = store.Blocks()
		return nil
	})

	return utils.RespondWithMessage(c, fiber.StatusOK, "Blocks retrieved successfully", blocks)
}

// CreateBlock godoc
// @Summary Add a zoom block
// @Description Adds a block over [start_time, end_time), or over the session's proposed range when the body is empty.
// @Description An overlapping range shifts the proposal forward; under the strict policy the add is rejected with 409.
// @Tags blocks
// @Accept  json
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   block body CreateBlockRequest false "Time range"
// @Success 201 {object} BlockMutationResponse "Block added (overlap may be true under the lenient policy)"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} BlockMutationResponse "Range overlaps an existing block"
// @Router /sessions/{sessionId}/blocks [post]
func (h *ApplicationHandler) CreateBlock(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}

	payload := new(CreateBlockRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(payload); err != nil {
			h.Logger.Errorf("Error parsing create block payload: %v", err)
			return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		}
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}
	if (payload.StartTime == nil) != (payload.EndTime == nil) {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "'start_time' and 'end_time' must be provided together")
	}

	var (
		res    zoom.AddResult
		result models.BlockMutation
	)
	addErr := sess.Do(func(store *zoom.Store) error {
		var err error
		if payload.StartTime == nil {
			res, err = store.AddProposed()
		} else {
			res, err = store.Add(*payload.StartTime, *payload.EndTime)
		}
		result = models.BlockMutation{
			Blocks:   store.Blocks(),
			Proposal: store.Proposal(),
			Overlap:  res.Overlap,
		}
		if res.Inserted {
			block := res.Block
			result.Block = &block
		}
		return err
	})

	log := h.Logger.WithField("session_id", sess.ID)
	if addErr != nil {
		return h.respondStoreError(c, log, addErr, result)
	}

	log = log.WithField("block_id", res.Block.ID)
	if res.Overlap {
		log.Warnf("Zoom block added over an overlapping range; next proposal %s", res.Proposal)
	} else {
		log.Info("Zoom block added")
	}
	return utils.RespondWithMessage(c, fiber.StatusCreated, "Block created successfully", result)
}

// GetBlock godoc
// @Summary Get a zoom block
// @Tags blocks
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   blockId path int true "Block ID"
// @Success 200 {object} zoom.Block
// @Failure 404 {object} ErrorResponse "Session or block not found"
// @Router /sessions/{sessionId}/blocks/{blockId} [get]
func (h *ApplicationHandler) GetBlock(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}
	blockID, err := parseBlockID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	var block zoom.Block
	if err := sess.Do(func(store *zoom.Store) error {
		var err error
		block, err = store.Get(blockID)
		return err
	}); err != nil {
		return utils.RespondWithError(c, statusForStoreError(err), "Block not found")
	}

	return utils.RespondWithMessage(c, fiber.StatusOK, "Block retrieved successfully", block)
}

// UpdateBlock godoc
// @Summary Update a zoom block
// @Description Merges the provided fields into the block. Timeline drags send one absolute value, form edits any subset.
// @Description An update whose range overlaps another block is rejected with 409 and the block is left unchanged.
// @Tags blocks
// @Accept  json
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   blockId path int true "Block ID"
// @Param   block body UpdateBlockRequest true "Fields to change"
// @Success 200 {object} BlockMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid body or range"
// @Failure 404 {object} ErrorResponse "Session or block not found"
// @Failure 409 {object} BlockMutationResponse "Range overlaps another block"
// @Router /sessions/{sessionId}/blocks/{blockId} [patch]
func (h *ApplicationHandler) UpdateBlock(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}
	blockID, err := parseBlockID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	payload := new(UpdateBlockRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}
	patch := payload.Patch()
	if patch.Empty() {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "No update fields provided")
	}

	var result models.BlockMutation
	updateErr := sess.Do(func(store *zoom.Store) error {
		block, err := store.Update(blockID, patch)
		result = models.BlockMutation{
			Blocks:   store.Blocks(),
			Proposal: store.Proposal(),
			Overlap:  errors.Is(err, zoom.ErrOverlap),
		}
		if err == nil || !errors.Is(err, zoom.ErrNotFound) {
			result.Block = &block
		}
		return err
	})

	log := h.Logger.WithFields(logrus.Fields{"session_id": sess.ID, "block_id": blockID})
	if updateErr != nil {
		return h.respondStoreError(c, log, updateErr, result)
	}

	log.Debug("Zoom block updated")
	return utils.RespondWithMessage(c, fiber.StatusOK, "Block updated successfully", result)
}

// DeleteBlock godoc
// @Summary Delete a zoom block
// @Description Removes the block and clears the selection if it was selected.
// @Tags blocks
// @Produce  json
// @Param   sessionId path string true "Session ID"
// @Param   blockId path int true "Block ID"
// @Success 200 {object} BlockMutationResponse
// @Failure 404 {object} ErrorResponse "Session or block not found"
// @Router /sessions/{sessionId}/blocks/{blockId} [delete]
func (h *ApplicationHandler) DeleteBlock(c *fiber.Ctx) error {
	sess, err := h.lookupSession(c)
	if sess == nil {
		return err
	}
	blockID, err := parseBlockID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	var result models.BlockMutation
	deleteErr := sess.Do(func(store *zoom.Store) error {
		removed, err := store.Get(blockID)
		if err != nil {
			return err
		}
		if err := store.Delete(blockID); err != nil {
			return err
		}
		result = models.BlockMutation{
			Block:    &removed,
			Blocks:   store.Blocks(),
			Proposal: store.Proposal(),
		}
		return nil
	})

	log := h.Logger.WithFields(logrus.Fields{"session_id": sess.ID, "block_id": blockID})
	if deleteErr != nil {
		return h.respondStoreError(c, log, deleteErr, nil)
	}

	log.Info("Zoom block deleted")
	return utils.RespondWithMessage(c, fiber.StatusOK, "Block deleted successfully", result)
}

// respondStoreError writes the error response for a failed store operation.
// Conflicts carry the unchanged block list so the client can roll back its view.
func (h *ApplicationHandler) respondStoreError(c *fiber.Ctx, log *logrus.Entry, err error, result interface{}) error {
	status := statusForStoreError(err)
	log = log.WithField("error", err.Error())

	switch status {
	case fiber.StatusConflict:
		log.Warn("Zoom block rejected: overlapping range")
		return utils.RespondWithErrorData(c, status, "Time range overlaps an existing zoom block", result)
	case fiber.StatusBadRequest:
		log.Warn("Zoom block rejected: invalid range")
		return utils.RespondWithError(c, status, "Invalid time range: end_time must be greater than start_time")
	case fiber.StatusNotFound:
		log.Warn("Zoom block not found")
		return utils.RespondWithError(c, status, "Block not found")
	default:
		log.Error("Zoom block operation failed")
		return utils.RespondWithError(c, status, "Internal error")
	}
}
