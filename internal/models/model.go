package models

import "time"

// PropertyStatus is the lifecycle state of an auction listing.
// Transitions are one-directional: pending -> active -> completed.
type PropertyStatus string

const (
	StatusPending   PropertyStatus = "pending"
	StatusActive    PropertyStatus = "active"
	StatusCompleted PropertyStatus = "completed"
)

// CanTransitionTo reports whether next is the single allowed forward step from s.
func (s PropertyStatus) CanTransitionTo(next PropertyStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusActive
	case StatusActive:
		return next == StatusCompleted
	default:
		return false
	}
}

// AccountType distinguishes standard accounts from other tiers.
type AccountType string

const AccountStandard AccountType = "standard"

// User represents a registered account on the platform
type User struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	PasswordHash  string      `json:"-"`
	IsVerified    bool        `json:"is_verified"`
	AccountType   AccountType `json:"account_type"`
	BiddingPoints int         `json:"bidding_points"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Property represents a listing posted for auction
type Property struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	StartingPrice float64        `json:"starting_price"`
	CurrentPrice  float64        `json:"current_price"`
	Images        []string       `json:"images"`
	EndTime       time.Time      `json:"end_time"`
	Status        PropertyStatus `json:"status"`
	SellerID      string         `json:"seller_id"`
}

// Bid represents a user's bid on a property. Immutable once recorded.
type Bid struct {
	BidID      string    `json:"bid_id"`
	PropertyID string    `json:"property_id"`
	UserID     string    `json:"user_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// WishlistItem marks a property a user is watching
type WishlistItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SellerRating is a rater's score for a seller. Immutable once recorded.
type SellerRating struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	SellerID  string    `json:"seller_id"`
	RaterID   string    `json:"rater_id"`
	CreatedAt time.Time `json:"created_at"`
}
