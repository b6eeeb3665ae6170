package handlers

import (
	"errors"
	"net/http"

	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler handles HTTP requests for scope records
type RecordHandler struct {
	recordService service.RecordServiceInterface
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService service.RecordServiceInterface) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// GetRecord handles GET /records/:key
// @Summary Get the record for a sync key
// @Description Retrieve the snapshot record stored under a team key or personal scope
// @Tags records
// @Accept json
// @Produce json
// @Param key path string true "Sync key (TF-XXXXXX-XXXX or tf-v12-<n>)"
// @Success 200 {object} service.RecordResponse "Record found"
// @Failure 400 {object} ErrorResponse "Invalid sync key"
// @Failure 404 {object} ErrorResponse "No record for this key"
// @Router /records/{key} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	resp, err := h.recordService.GetRecord(c.Param("key"))
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		case errors.Is(err, apperrors.ErrScopeNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "record not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get record"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PutRecord handles PUT /records/:key
// @Summary Write the record for a sync key
// @Description Upsert the snapshot record stored under a team key or personal scope. Last writer wins; clients run their own conflict check before pushing.
// @Tags records
// @Accept json
// @Produce json
// @Param key path string true "Sync key (TF-XXXXXX-XXXX or tf-v12-<n>)"
// @Param record body service.PutRecordRequest true "Record payload"
// @Success 200 {object} service.RecordResponse "Record written"
// @Failure 400 {object} ErrorResponse "Invalid key or payload"
// @Router /records/{key} [put]
func (h *RecordHandler) PutRecord(c *gin.Context) {
	var req service.PutRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.recordService.PutRecord(c.Param("key"), &req)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to write record"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteRecord handles DELETE /records/:key
// @Summary Delete the record for a sync key
// @Tags records
// @Accept json
// @Produce json
// @Param key path string true "Sync key"
// @Success 204 "Record deleted"
// @Failure 404 {object} ErrorResponse "No record for this key"
// @Security BearerAuth
// @Router /records/{key} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.recordService.DeleteRecord(c.Param("key")); err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		case errors.Is(err, apperrors.ErrScopeNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "record not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
