package bidding

import (
	"fmt"
	"time"

	"tradehub/internal/auctionerrors"
	"tradehub/internal/models"
	"tradehub/internal/repository"
	"tradehub/utils"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// PlaceBid validates and records a user's bid on a property. The repository
// serializes the price check and the append per property, so the returned
// bid is the new highest accepted amount and exactly one record is stored
// per successful call.
func (s *BiddingService) PlaceBid(propertyID, userID string, amount float64) (models.Bid, error) {
	if err := s.validateBid(propertyID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		PropertyID: propertyID,
		UserID:     userID,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on property %s by user %s: %w", propertyID, userID, err)
	}

	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *BiddingService) validateBid(propertyID, userID string, amount float64) error {
	if propertyID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing propertyID or userID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	property, err := s.repo.GetProperty(propertyID)
	if err != nil {
		return fmt.Errorf("service: failed to check property: %w", err)
	}
	if property.Status != models.StatusActive {
		return fmt.Errorf("service: property %s is %s: %w", propertyID, property.Status, auctionerrors.ErrAuctionNotActive)
	}
	if !time.Now().Before(property.EndTime) {
		return fmt.Errorf("service: property %s closed at %s: %w",
			propertyID, property.EndTime.Format(time.RFC3339), auctionerrors.ErrAuctionEnded)
	}
	// Any amount strictly above the current price is acceptable; there is
	// no minimum increment. The repository re-checks this under the
	// property lock, so a concurrent higher bid still rejects this one.
	if amount <= property.CurrentPrice {
		return fmt.Errorf("service: %w - current price is %.2f", auctionerrors.ErrBidTooLow, property.CurrentPrice)
	}

	return nil
}

// GetBidsForProperty returns all bids for a specific property
func (s *BiddingService) GetBidsForProperty(propertyID string) ([]models.Bid, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByProperty(propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for property %s: %w", propertyID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific property
func (s *BiddingService) GetWinningBid(propertyID string) (models.Bid, error) {
	if propertyID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty property ID", auctionerrors.ErrInvalidInput)
	}

	winningBid, err := s.repo.GetWinningBid(propertyID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for property %s: %w", propertyID, err)
	}

	return winningBid, nil
}

// GetPropertiesByBidder returns all properties a user has placed bids on
func (s *BiddingService) GetPropertiesByBidder(userID string) ([]models.Property, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	properties, err := s.repo.GetPropertiesByBidder(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get properties for user %s: %w", userID, err)
	}

	return properties, nil
}
