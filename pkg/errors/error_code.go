package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeMissingParameter     ErrorCode = 103
	ErrCodeInvalidOffset        ErrorCode = 104

	// Data errors (200-299)
	ErrCodeDataNotFound         ErrorCode = 200
	ErrCodeColumnLengthMismatch ErrorCode = 201

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound          ErrorCode = 300
	ErrCodeIndicatorAlreadyRegistered ErrorCode = 301
	ErrCodeComputationFailed          ErrorCode = 302

	// Engine errors (400-499)
	ErrCodeEngineNotConfigured ErrorCode = 400
	ErrCodeUnsupportedMode     ErrorCode = 401
)
