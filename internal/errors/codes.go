package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidPeriod   ErrorCode = "VALIDATION_005"
	ValidationInvalidDate     ErrorCode = "VALIDATION_006"
	ValidationInvalidAmount   ErrorCode = "VALIDATION_007"
	ValidationInvalidCategory ErrorCode = "VALIDATION_008"
	ValidationInvalidID       ErrorCode = "VALIDATION_009"
)

// Not found error codes (*_NOT_FOUND)
const (
	IncomeNotFound      ErrorCode = "INCOME_001"
	ExpenditureNotFound ErrorCode = "EXPENDITURE_001"
	BudgetNotFound      ErrorCode = "BUDGET_001"
	AssetNotFound       ErrorCode = "ASSET_001"
	LiabilityNotFound   ErrorCode = "LIABILITY_001"
	NetWorthNotFound    ErrorCode = "NETWORTH_001"
	RouteNotFound       ErrorCode = "ROUTE_001"
)

// Conflict error codes (CONFLICT_*)
const (
	ConflictConcurrentModification ErrorCode = "CONFLICT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidPeriod:   "Invalid year or month",
	ValidationInvalidDate:     "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidAmount:   "Amount must be greater than 0",
	ValidationInvalidCategory: "Invalid category",
	ValidationInvalidID:       "Invalid record ID",

	// Not found errors
	IncomeNotFound:      "Income not found",
	ExpenditureNotFound: "Expenditure not found",
	BudgetNotFound:      "Budget not found",
	AssetNotFound:       "Asset not found",
	LiabilityNotFound:   "Liability not found",
	NetWorthNotFound:    "Net worth not found",
	RouteNotFound:       "Resource not found",

	// Conflict errors
	ConflictConcurrentModification: "Record was modified by another user. Please refresh and try again.",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
