package errors

// Reason identifies the ship rule that rejected an operation.
type Reason string

// Ship operation reasons
const (
	ReasonUnknownHullType   Reason = "UNKNOWN_HULL_TYPE"
	ReasonInvalidDuration   Reason = "INVALID_DURATION"
	ReasonOutOfFuel         Reason = "OUT_OF_FUEL"
	ReasonDriveDisabled     Reason = "DRIVE_DISABLED"
	ReasonNoEligibleSystems Reason = "NO_ELIGIBLE_SYSTEMS"
	ReasonInsufficientFunds Reason = "INSUFFICIENT_FUNDS"
	ReasonOutOfAmmo         Reason = "OUT_OF_AMMO"
)

// Targets for errors.Is. Never return these directly; use the constructors
// below so callers can attach metadata without mutating shared values.
var (
	ErrUnknownHullType   = &Error{Code: CodeInvalidArgument, Reason: ReasonUnknownHullType}
	ErrInvalidDuration   = &Error{Code: CodeInvalidArgument, Reason: ReasonInvalidDuration}
	ErrOutOfFuel         = &Error{Code: CodeFailedPrecondition, Reason: ReasonOutOfFuel}
	ErrDriveDisabled     = &Error{Code: CodeFailedPrecondition, Reason: ReasonDriveDisabled}
	ErrNoEligibleSystems = &Error{Code: CodeInvalidArgument, Reason: ReasonNoEligibleSystems}
	ErrInsufficientFunds = &Error{Code: CodeFailedPrecondition, Reason: ReasonInsufficientFunds}
	ErrOutOfAmmo         = &Error{Code: CodeFailedPrecondition, Reason: ReasonOutOfAmmo}
)

func withReason(base *Error, message string) *Error {
	return &Error{
		Code:    base.Code,
		Reason:  base.Reason,
		Message: message,
	}
}

// UnknownHullType reports a hull type missing from the template table
func UnknownHullType(hullType string) *Error {
	return withReason(ErrUnknownHullType, "unknown hull type "+hullType).
		WithMeta("hull_type", hullType)
}

// InvalidDuration reports a non-positive day count
func InvalidDuration(days int32) *Error {
	return withReason(ErrInvalidDuration, "duration must be a positive number of days").
		WithMeta("days", days)
}

// OutOfFuel reports an empty fuel tank
func OutOfFuel() *Error {
	return withReason(ErrOutOfFuel, "ship is out of fuel")
}

// DriveDisabled reports a spike drive rated at zero
func DriveDisabled() *Error {
	return withReason(ErrDriveDisabled, "spike drive is disabled")
}

// NoEligibleSystems reports an empty system failure selection
func NoEligibleSystems() *Error {
	return withReason(ErrNoEligibleSystems, "at least one eligible system is required")
}

// InsufficientFunds reports a debit larger than the credit pool
func InsufficientFunds(due, pool int64) *Error {
	return withReason(ErrInsufficientFunds, "credit pool cannot cover the amount due").
		WithMeta("amount_due", due).
		WithMeta("credit_pool", pool)
}

// OutOfAmmo reports a limited weapon with no ammunition left
func OutOfAmmo(itemID string) *Error {
	return withReason(ErrOutOfAmmo, "weapon is out of ammunition").
		WithMeta("item_id", itemID)
}

// GetReason extracts the domain reason from an error
func GetReason(err error) Reason {
	var customErr *Error
	if As(err, &customErr) {
		return customErr.Reason
	}
	return ""
}
