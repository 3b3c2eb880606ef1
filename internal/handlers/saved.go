package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/internal/services"
)

type SavedPropertyHandler struct {
	savedService *services.SavedPropertyService
}

func NewSavedPropertyHandler(savedService *services.SavedPropertyService) *SavedPropertyHandler {
	return &SavedPropertyHandler{savedService: savedService}
}

// ListSaved godoc
// @Summary List saved properties
// @Tags Saved
// @Produce json
// @Success 200 {array} models.SavedProperty
// @Router /saved [get]
func (h *SavedPropertyHandler) ListSaved(c *gin.Context) {
	saved, err := h.savedService.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetSaved godoc
// @Summary Get the bookmark for a property
// @Tags Saved
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} models.SavedProperty
// @Failure 404 {object} map[string]interface{}
// @Router /saved/{propertyId} [get]
func (h *SavedPropertyHandler) GetSaved(c *gin.Context) {
	propertyID, err := strconv.Atoi(c.Param("propertyId"))
	if err != nil {
		c.Error(errors.ErrNotSaved)
		return
	}

	saved, err := h.savedService.Get(c, propertyID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SaveProperty godoc
// @Summary Bookmark a property
// @Tags Saved
// @Accept json
// @Produce json
// @Param request body models.SaveRequest true "Property to save"
// @Success 201 {object} models.SavedProperty
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /saved [post]
func (h *SavedPropertyHandler) SaveProperty(c *gin.Context) {
	var req models.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"message": "invalid save payload",
			"code":    "INVALID_PARAMETERS",
		}})
		return
	}

	saved, err := h.savedService.Save(c, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UnsaveProperty godoc
// @Summary Remove a bookmark
// @Tags Saved
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /saved/{propertyId} [delete]
func (h *SavedPropertyHandler) UnsaveProperty(c *gin.Context) {
	propertyID, err := strconv.Atoi(c.Param("propertyId"))
	if err != nil {
		c.Error(errors.ErrNotSaved)
		return
	}

	if err := h.savedService.Unsave(c, propertyID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
