package domain

import "errors"

// Error taxonomy shared by the lifecycle engine, repositories and the API
// layer. Callers discriminate with errors.Is; everything else is wrapped
// context.
var (
	// ErrNotFound: a leg, request, client or depot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed: an operation ran against a leg that is not in
	// the required shape (e.g. estimation with no truck assigned).
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrCapacityRejected: the fleet service reported the truck cannot carry
	// the load, or the capacity check itself could not be completed.
	ErrCapacityRejected = errors.New("truck capacity rejected")

	// ErrUpstreamFailure: an external gateway call failed or timed out.
	ErrUpstreamFailure = errors.New("upstream gateway failure")

	// ErrDataUnavailable: a gateway answered but the response is missing a
	// field the operation needs (e.g. no base rate on a truck record).
	ErrDataUnavailable = errors.New("required upstream data unavailable")

	// ErrStorage: a repository write failed after the business logic ran.
	ErrStorage = errors.New("storage failure")

	// ErrConflict is reserved for per-leg optimistic locking; no write path
	// returns it yet.
	ErrConflict = errors.New("write conflict")
)
