package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrNoBids            = errors.New("no bids found for property")
	ErrUserNoBids        = errors.New("user has not placed any bids")
	ErrDuplicateWishlist = errors.New("property already in wishlist")
)

// Account and token errors
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid verification token")
	ErrExpiredToken       = errors.New("verification token expired")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrBidTooLow         = errors.New("bid amount too low")
)
