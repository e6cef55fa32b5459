// Package errors provides structured errors for the ship operations service.
//
// Errors carry a transport Code (NotFound, InvalidArgument, FailedPrecondition, ...)
// and, for ship rule violations, a Reason naming the rule:
//
//	err := errors.OutOfFuel()
//	errors.Is(err, errors.ErrOutOfFuel)              // true
//	errors.Is(err, errors.FailedPrecondition(""))    // true, same code
//	errors.Is(err, errors.ErrDriveDisabled)          // false, different reason
//
// Metadata can be attached for logging and transport:
//
//	err := errors.NotFound("ship not found").WithMeta("ship_id", id)
//
// Repositories return NotFound/AlreadyExists, the engine returns the reason
// errors, orchestrators wrap with context, and handlers convert with ToGRPCError.
package errors
