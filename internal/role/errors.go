package role

import (
	"net/http"

	"github.com/diamondburned/arikawa/v3/utils/httputil"
	"github.com/pkg/errors"
)

// ErrorKind classifies failures reported by Discord.
type ErrorKind uint8

const (
	UnknownError ErrorKind = iota
	PermissionDenied
	RateLimited
	NotFound
)

func (k ErrorKind) String() string {
	switch k {
	case PermissionDenied:
		return "permission denied"
	case RateLimited:
		return "rate limited"
	case NotFound:
		return "not found"
	default:
		return "unknown error"
	}
}

// Classify maps an API error to an ErrorKind using its HTTP status.
func Classify(err error) ErrorKind {
	var httpErr *httputil.HTTPError
	if !errors.As(err, &httpErr) {
		return UnknownError
	}

	switch httpErr.Status {
	case http.StatusForbidden:
		return PermissionDenied
	case http.StatusTooManyRequests:
		return RateLimited
	case http.StatusNotFound:
		return NotFound
	default:
		return UnknownError
	}
}

// PlatformError is a failed call to Discord.
type PlatformError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func newPlatformError(op string, err error) *PlatformError {
	return &PlatformError{
		Op:   op,
		Kind: Classify(err),
		Err:  err,
	}
}

func (err *PlatformError) Error() string {
	return "failed to " + err.Op + " (" + err.Kind.String() + "): " + err.Err.Error()
}

func (err *PlatformError) Unwrap() error { return err.Err }

// Kind returns the ErrorKind of the first PlatformError in err's chain, or
// UnknownError.
func Kind(err error) ErrorKind {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Kind
	}
	return UnknownError
}
