package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrClassification means a record's naming could not be mapped into the
	// canonical vocabulary. It signals a new vendor naming convention.
	ErrClassification = errors.New("classification failure")

	// ErrMalformedPayload means a fetched document or record does not have the
	// expected structure.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnknownProvider is returned by Lookup for unregistered provider names.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ClassificationError describes which field of which record failed to classify.
type ClassificationError struct {
	Distro string
	Field  string
	Input  string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: unable to detect %s from %q", e.Distro, e.Field, e.Input)
}

// Unwrap lets errors.Is match ErrClassification.
func (e *ClassificationError) Unwrap() error {
	return ErrClassification
}
