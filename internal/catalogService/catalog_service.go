package catalog

import (
	"fmt"
	"io"
	"time"

	"tradehub/internal/auctionerrors"
	"tradehub/internal/imagestore"
	"tradehub/internal/models"
	"tradehub/internal/repository"
	"tradehub/utils"
)

// ImageUpload is an incoming image payload for a new listing
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CatalogService defines the business logic for auction listings
type CatalogService struct {
	repo   repository.AuctionDB
	images imagestore.ImageStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.AuctionDB, images imagestore.ImageStore) *CatalogService {
	return &CatalogService{
		repo:   repo,
		images: images,
	}
}

// CreateListing validates and stores a new property. Image payloads are
// handed to the image store; only the returned references are persisted.
// New listings start as pending until approved.
func (s *CatalogService) CreateListing(sellerID, title, description string,
	startingPrice float64, endTime time.Time, images []ImageUpload) (models.Property, error) {

	if sellerID == "" || title == "" || description == "" {
		return models.Property{}, fmt.Errorf("service: %w - missing listing fields", auctionerrors.ErrInvalidInput)
	}
	if startingPrice <= 0 {
		return models.Property{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidInput)
	}
	if !endTime.After(time.Now()) {
		return models.Property{}, fmt.Errorf("service: %w - end time not in the future", auctionerrors.ErrInvalidInput)
	}

	refs := make([]string, 0, len(images))
	for _, img := range images {
		ref, err := s.images.Save(img.Filename, img.Content)
		if err != nil {
			return models.Property{}, fmt.Errorf("service: failed to store image %s: %w", img.Filename, err)
		}
		refs = append(refs, ref)
	}

	property := models.Property{
		ID:            utils.GenerateID(),
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Images:        refs,
		EndTime:       endTime.UTC(),
		Status:        models.StatusPending,
		SellerID:      sellerID,
	}

	if err := s.repo.CreateProperty(property); err != nil {
		return models.Property{}, fmt.Errorf("service: failed to create listing for seller %s: %w", sellerID, err)
	}

	return property, nil
}

// TransitionStatus advances a listing one step along pending -> active -> completed
func (s *CatalogService) TransitionStatus(propertyID string, next models.PropertyStatus) (models.Property, error) {
	if propertyID == "" {
		return models.Property{}, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrInvalidInput)
	}
	switch next {
	case models.StatusActive, models.StatusCompleted:
	default:
		return models.Property{}, fmt.Errorf("service: %w - unknown target status %q", auctionerrors.ErrInvalidTransition, next)
	}

	if err := s.repo.UpdatePropertyStatus(propertyID, next); err != nil {
		return models.Property{}, fmt.Errorf("service: failed to transition property %s: %w", propertyID, err)
	}

	property, err := s.repo.GetProperty(propertyID)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: failed to reload property %s: %w", propertyID, err)
	}
	return property, nil
}

// GetListing returns a single listing
func (s *CatalogService) GetListing(propertyID string) (models.Property, error) {
	if propertyID == "" {
		return models.Property{}, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrInvalidInput)
	}
	property, err := s.repo.GetProperty(propertyID)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: failed to get property %s: %w", propertyID, err)
	}
	return property, nil
}

// ListListings returns all listings with the given status; empty status
// returns everything
func (s *CatalogService) ListListings(status models.PropertyStatus) ([]models.Property, error) {
	properties, err := s.repo.ListProperties(status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list properties: %w", err)
	}
	return properties, nil
}
