package shared

import "fmt"

var (
	// Storage errors
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrInsertFailure      = fmt.Errorf("insert failed")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
