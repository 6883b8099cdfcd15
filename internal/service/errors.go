package service

import "errors"

// Sentinel errors shared by all services. Handlers map them to HTTP
// status codes with errors.Is; everything else surfaces as a 500.
var (
	// ErrNotFound marks a missing primary entity. A missing *referenced*
	// package during discount computation is NOT an error — the discount
	// degrades to zero instead.
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrValidation marks malformed or out-of-range input detected before
	// any persistence. Wrap it with context: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("error de validacion")
)
