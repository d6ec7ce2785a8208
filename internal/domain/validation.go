package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrInvalidLink      = errors.New("invalid destination link")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrChargeTooLarge   = errors.New("charge exceeds maximum allowed")
)

// Validation constants
const (
	MaxLinkLength = 2048
	MinQuantity   = 1
	MaxQuantity   = 10_000_000
	MaxCharge     = "1000000" // 1 million
)

// ValidateServiceID validates a service reference.
func ValidateServiceID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidServiceID)
	}

	return nil
}

// ValidateLink validates an order destination link.
func ValidateLink(link string) error {
	if link == "" || len(link) > MaxLinkLength {
		return ErrInvalidLink
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidLink)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidLink)
	}

	return nil
}

// ValidateQuantity validates the requested quantity.
func ValidateQuantity(q int64) error {
	if q < MinQuantity || q > MaxQuantity {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidQuantity, MinQuantity, MaxQuantity)
	}

	return nil
}

// ValidateCharge validates a monetary charge.
func ValidateCharge(charge decimal.Decimal) error {
	if charge.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidCharge
	}

	max := decimal.RequireFromString(MaxCharge)
	if charge.GreaterThan(max) {
		return fmt.Errorf("%w: maximum is %s", ErrChargeTooLarge, MaxCharge)
	}

	return nil
}
