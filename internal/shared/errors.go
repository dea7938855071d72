package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrUnknownDriver   = fmt.Errorf("unknown storage driver")
	ErrStoreUnreadable = fmt.Errorf("track store unreadable")

	// Upload validation errors
	ErrMissingFields   = fmt.Errorf("missing required fields")
	ErrInvalidFileType = fmt.Errorf("invalid file type")
	ErrFileTooLarge    = fmt.Errorf("file too large")

	// Audio errors
	ErrUnsupportedAudio = fmt.Errorf("unsupported audio format")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
