package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/internal/services"
	"homescout-listings/internal/validators"
)

type PropertyHandler struct {
	listingService    *services.ListingService
	propertyService   *services.PropertyService
	suggestionService *services.SuggestionService
	filterValidator   validators.FilterValidator
}

func NewPropertyHandler(
	listingService *services.ListingService,
	propertyService *services.PropertyService,
	suggestionService *services.SuggestionService,
	filterValidator validators.FilterValidator,
) *PropertyHandler {
	return &PropertyHandler{
		listingService:    listingService,
		propertyService:   propertyService,
		suggestionService: suggestionService,
		filterValidator:   filterValidator,
	}
}

// GetProperties godoc
// @Summary Browse listings
// @Description Get the filtered, sorted listing collection
// @Tags Properties
// @Accept json
// @Produce json
// @Param priceMin query number false "Minimum price (inclusive)"
// @Param priceMax query number false "Maximum price (inclusive)"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query number false "Minimum bathrooms"
// @Param propertyTypes query string false "Comma-separated property types"
// @Param location query string false "Location substring (city, state, zip or street)"
// @Param sortBy query string false "Sort key" Enums(newest, oldest, price-low, price-high, sqft) default(newest)
// @Success 200 {object} models.ListingsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	filter := h.filterValidator.BuildFilterSpec(c.Request.URL.Query())
	sortKey := models.ParseSortKey(c.DefaultQuery("sortBy", string(models.SortNewest)))

	properties, err := h.listingService.Browse(c, filter, sortKey)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.ListingsResponse{
		Data:  properties,
		Total: len(properties),
	})
}

// GetPropertyByID godoc
// @Summary Get property by ID
// @Description Get a single listing by its ID
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.ErrPropertyNotFound)
		return
	}

	property, err := h.propertyService.GetByID(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// GetSuggestions godoc
// @Summary Location suggestions
// @Description Get up to five location suggestions for a partial query
// @Tags Properties
// @Accept json
// @Produce json
// @Param q query string true "Partial location query"
// @Success 200 {object} models.SuggestionsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /properties/suggestions [get]
func (h *PropertyHandler) GetSuggestions(c *gin.Context) {
	query := c.Query("q")
	suggestions, err := h.suggestionService.Suggest(c, query)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}
