package domain

import (
	"fmt"
	"strings"
)

// RequiredText is a trimmed, non-empty free-form label (name, cuisine, location).
type RequiredText string

func NewRequiredText(field, value string) (RequiredText, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return RequiredText(trimmed), nil
}

func (t RequiredText) String() string {
	return string(t)
}

type Rating float64

func NewRating(value float64) (Rating, error) {
	if value < 0 || value > 5 {
		return 0, fmt.Errorf("rating must be between 0 and 5")
	}
	return Rating(value), nil
}

func (r Rating) Float64() float64 {
	return float64(r)
}

// ImageList holds the ordered image paths attached to a food place. Entries are
// trimmed and must be non-empty; list length is bounded by the configured
// min/max profile.
type ImageList []string

func NewImageList(values []string, min, max int) (ImageList, error) {
	if len(values) < min {
		return nil, fmt.Errorf("images must contain at least %d entries", min)
	}
	if max > 0 && len(values) > max {
		return nil, fmt.Errorf("images must contain at most %d entries", max)
	}
	result := make([]string, 0, len(values))
	for _, raw := range values {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return nil, fmt.Errorf("images must not contain empty entries")
		}
		result = append(result, trimmed)
	}
	return ImageList(result), nil
}

func (l ImageList) Strings() []string {
	return append([]string{}, l...)
}
