package diskfrag

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DiskError is the error type returned by every package in this module. Callers
// can test for a category with errors.Is against one of the Err* values below.
type DiskError interface {
	error
	WithMessage(message string) DiskError
	Wrap(err error) DiskError
}

type baseDiskError string

const rootError = baseDiskError("")

var ErrArgumentOutOfRange = rootError.WithMessage("Numerical argument out of domain")
var ErrFileSystemCorrupted = rootError.WithMessage("Structure needs cleaning")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrNotFound = rootError.WithMessage("No such file or directory")
var ErrResultOutOfRange = rootError.WithMessage("Numerical result out of range")

func (e baseDiskError) Error() string {
	return string(e)
}

func (e baseDiskError) WithMessage(message string) DiskError {
	return customDiskError{
		message:       message,
		originalError: e,
	}
}

func (e baseDiskError) Wrap(err error) DiskError {
	return customDiskError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customDiskError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customDiskError) Error() string {
	return e.message
}

func (e customDiskError) WithMessage(message string) DiskError {
	return customDiskError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customDiskError) Wrap(err error) DiskError {
	return customDiskError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customDiskError) Unwrap() error {
	return e.originalError
}
