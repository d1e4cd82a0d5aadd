package category

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrItemFieldsRequired  = errors.New("link, description, label, background and height class are required")
	ErrColumnClassRequired = errors.New("column class is required")
	ErrDescriptionTooLong  = errors.New("description must be at most 200 characters")
	ErrLabelTooLong        = errors.New("label must be at most 50 characters")
)

const (
	maxDescriptionLen = 200
	maxLabelLen       = 50
)

// ItemInput carries the text fields of a tile. Empty fields mean "unset".
type ItemInput struct {
	Link        string
	Description string
	Label       string
	Background  string
	HeightClass string
}

func (in ItemInput) trimmed() ItemInput {
	return ItemInput{
		Link:        strings.TrimSpace(in.Link),
		Description: strings.TrimSpace(in.Description),
		Label:       strings.TrimSpace(in.Label),
		Background:  strings.TrimSpace(in.Background),
		HeightClass: strings.TrimSpace(in.HeightClass),
	}
}

// validateNew requires every field of a new tile.
func validateNew(in ItemInput) (ItemInput, error) {
	in = in.trimmed()
	if in.Link == "" || in.Description == "" || in.Label == "" || in.Background == "" || in.HeightClass == "" {
		return ItemInput{}, ErrItemFieldsRequired
	}
	return in, validateLengths(in)
}

func validateLengths(in ItemInput) error {
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if utf8.RuneCountInString(in.Label) > maxLabelLen {
		return ErrLabelTooLong
	}
	return nil
}

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrItemFieldsRequired) ||
		errors.Is(err, ErrColumnClassRequired) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrLabelTooLong)
}
