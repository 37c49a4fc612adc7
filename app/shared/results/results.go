// Package results carries the service-layer convention for separating domain
// outcomes from infrastructure errors: an operation returns an
// OperationResult holding either a success or a failure payload, and reserves
// its error return for infrastructure problems (database down, bus
// unreachable). Handled business failures travel in the Failure payload with
// a nil error.
package results

// OperationResult is the outcome of a service operation.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// Success wraps a success payload.
func Success[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// Failure wraps a handled domain failure payload.
func Failure[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}

// IsSuccess reports whether the operation produced a success payload.
func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

// IsFailure reports whether the operation produced a failure payload.
func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}
