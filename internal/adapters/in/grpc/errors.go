package grpc

import (
	"context"
	"errors"

	"restaurant/internal/pkg/errs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf classifies an application error.
func codeOf(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, errs.ErrObjectNotFound):
		return codes.NotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return codes.InvalidArgument
	case errors.Is(err, errs.ErrResourceIsExhausted):
		return codes.ResourceExhausted
	case errors.Is(err, errs.ErrResourceIsUnavailable):
		return codes.Unavailable
	case errors.Is(err, errs.ErrPreconditionIsNotMet):
		return codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus converts err into a gRPC status error whose message is the error text.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(codeOf(err), err.Error())
}
