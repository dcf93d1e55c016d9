package renderer

import (
	"github.com/pkg/errors"
)

// Kinds of InitError. Match them with errors.Is.
var (
	ErrNoCompatibleDevice  = errors.New("no compatible GPU device")
	ErrPipelineCompilation = errors.New("render pipeline compilation failed")
	ErrAssetLoad           = errors.New("asset load failed")
)

// InitError is returned by New. Kind is one of the Err* values of this package and Err is the cause.
type InitError struct {
	Kind error
	Err  error
}

func (e *InitError) Error() string {

	if e.Err == nil {
		return e.Kind.Error()
	}

	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

func (e *InitError) Is(target error) bool {
	return target == e.Kind
}

func newInitError(kind error, err error, msg string) *InitError {

	if err == nil {
		return &InitError{Kind: kind, Err: errors.New(msg)}
	}

	return &InitError{Kind: kind, Err: errors.Wrap(err, msg)}
}
