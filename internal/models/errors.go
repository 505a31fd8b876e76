package models

import "errors"

// Error kinds shared by the gateway, the persistence layer and the services.
// Concrete errors wrap one of these and are matched with errors.Is.
var (
	// ErrValidation is returned for bad local input; it never reaches the network.
	ErrValidation = errors.New("validation error")
	// ErrNetwork covers transport failures and non-success responses.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse is returned when a payload lacks the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMissingRate is returned when a requested currency is absent from a response.
	ErrMissingRate = errors.New("missing rate")
	// ErrPersistence wraps read/write failures of the key-value store.
	ErrPersistence = errors.New("persistence error")
	// ErrSuperseded is returned to a caller whose response arrived after a newer request was issued.
	ErrSuperseded = errors.New("request superseded")
)
