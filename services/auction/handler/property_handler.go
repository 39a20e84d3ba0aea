package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradehub/internal/auctionerrors"
	catalog "tradehub/internal/catalogService"
	model "tradehub/internal/models"
	"tradehub/services/auction/helpers"
	"tradehub/utils"
)

// endTimeLayout matches the datetime-local form format the listing form submits
const endTimeLayout = "2006-01-02T15:04"

type CatalogServiceInterface interface {
	CreateListing(sellerID, title, description string, startingPrice float64,
		endTime time.Time, images []catalog.ImageUpload) (model.Property, error)
	TransitionStatus(propertyID string, next model.PropertyStatus) (model.Property, error)
	GetListing(propertyID string) (model.Property, error)
	ListListings(status model.PropertyStatus) ([]model.Property, error)
}

type PropertyHandler struct {
	service CatalogServiceInterface
}

func NewPropertyHandler(service CatalogServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreatePropertyHandler handles POST /property/new (multipart form)
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	sellerID := helpers.CurrentUserID(c)

	var form struct {
		Title         string  `form:"title" binding:"required"`
		Description   string  `form:"description" binding:"required"`
		StartingPrice float64 `form:"starting_price" binding:"required,gt=0"`
		EndTime       string  `form:"end_time" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "CreatePropertyHandler", err)
		return
	}

	endTime, err := time.ParseInLocation(endTimeLayout, form.EndTime, time.UTC)
	if err != nil {
		wrapped := fmt.Errorf("%w - end_time must be YYYY-MM-DDTHH:MM", auctionerrors.ErrInvalidInput)
		utils.JSONError(c, http.StatusBadRequest, wrapped, "invalid input")
		utils.Warn("CreatePropertyHandler: bad end_time", map[string]any{"end_time": form.EndTime})
		return
	}

	var uploads []catalog.ImageUpload
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		for _, fileHeader := range multipartForm.File["images"] {
			file, err := fileHeader.Open()
			if err != nil {
				wrapped := fmt.Errorf("%w - unreadable image %s", auctionerrors.ErrInvalidInput, fileHeader.Filename)
				utils.JSONError(c, http.StatusBadRequest, wrapped, "invalid input")
				return
			}
			defer file.Close()
			uploads = append(uploads, catalog.ImageUpload{Filename: fileHeader.Filename, Content: file})
		}
	}

	property, err := h.service.CreateListing(sellerID, form.Title, form.Description,
		form.StartingPrice, endTime, uploads)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreatePropertyHandler: failed to create listing", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToPropertyResponse(property),
		"property listed for auction pending approval")
	helpers.LogSuccess("CreatePropertyHandler", "listing created", map[string]any{
		"property_id": property.ID,
		"seller_id":   sellerID,
	})
}

// GetPropertyHandler handles GET /properties/:property_id
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	propertyID := c.Param("property_id")

	property, err := h.service.GetListing(propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPropertyHandler: error retrieving property", map[string]any{
			"property_id": propertyID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToPropertyResponse(property), "property retrieved successfully")
}

// ListPropertiesHandler handles GET /properties?status=active
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	status := model.PropertyStatus(c.Query("status"))

	properties, err := h.service.ListListings(status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPropertiesHandler: error listing properties", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		resp = append(resp, helpers.ToPropertyResponse(property))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "properties retrieved successfully")
}

// ActivatePropertyHandler handles POST /properties/:property_id/activate
func (h *PropertyHandler) ActivatePropertyHandler(c *gin.Context) {
	h.transition(c, model.StatusActive, "ActivatePropertyHandler")
}

// CompletePropertyHandler handles POST /properties/:property_id/complete
func (h *PropertyHandler) CompletePropertyHandler(c *gin.Context) {
	h.transition(c, model.StatusCompleted, "CompletePropertyHandler")
}

func (h *PropertyHandler) transition(c *gin.Context, next model.PropertyStatus, handlerName string) {
	propertyID := c.Param("property_id")

	property, err := h.service.TransitionStatus(propertyID, next)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{
			"property_id": propertyID,
			"target":      string(next),
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToPropertyResponse(property), "property status updated")
	helpers.LogSuccess(handlerName, "property status updated", map[string]any{
		"property_id": propertyID,
		"status":      string(next),
	})
}
