package shared

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ValidationError signals malformed or missing input. It is rejected before any
// partial computation and never silently defaulted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError signals a missing persisted record or master-data entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// MasterDataError signals that master data required for a run is missing
// entirely. Unlike a per-candidate validation failure, this is run-fatal.
type MasterDataError struct {
	*DomainError
}

func NewMasterDataError(message string) *MasterDataError {
	return &MasterDataError{DomainError: &DomainError{Message: message}}
}

// StrategyRunError marks the failure of a single strategy's run inside a
// comparison. The other strategies' results are still returned.
type StrategyRunError struct {
	*DomainError
	Strategy string
}

func NewStrategyRunError(strategy, message string) *StrategyRunError {
	return &StrategyRunError{
		DomainError: &DomainError{Message: fmt.Sprintf("strategy %s: %s", strategy, message)},
		Strategy:    strategy,
	}
}
