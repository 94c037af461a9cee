package acctl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/smithy-go"
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var ErrDiff = &ExitError{Code: 2, Err: nil}

// ExitCodeValidation is the process exit code for rejected parameters.
const ExitCodeValidation = 3

var (
	ErrUnknownParameter  = errors.New("unknown parameter")
	ErrMissingRequired   = errors.New("missing required parameter")
	ErrAliasConflict     = errors.New("conflicting parameter bindings")
	ErrInvalidValue      = errors.New("invalid parameter value")
	ErrInvalidSelector   = errors.New("invalid selector")
	ErrRemoteFault       = errors.New("remote fault")
	ErrOperationNotFound = errors.New("operation not found")
)

// FieldError is a validation failure attached to one flat name or schema path.
// Kind is one of the sentinel errors above.
type FieldError struct {
	Kind   error
	Path   string
	Name   string
	Detail string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch {
	case e.Path != "" && e.Name != "" && !strings.EqualFold(e.Path, e.Name):
		fmt.Fprintf(&b, ": %s (given as %s)", e.Path, e.Name)
	case e.Path != "":
		fmt.Fprintf(&b, ": %s", e.Path)
	case e.Name != "":
		fmt.Fprintf(&b, ": %s", e.Name)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// ValidationErrors collects every FieldError found while binding parameters.
type ValidationErrors []*FieldError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Unwrap() []error {
	unwrapped := make([]error, 0, len(errs))
	for _, err := range errs {
		unwrapped = append(unwrapped, err)
	}
	return unwrapped
}

// Filter returns the errors of the given kind.
func (errs ValidationErrors) Filter(kind error) ValidationErrors {
	var filtered ValidationErrors
	for _, err := range errs {
		if errors.Is(err, kind) {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// Without returns the errors that are not of the given kind.
func (errs ValidationErrors) Without(kind error) ValidationErrors {
	var filtered ValidationErrors
	for _, err := range errs {
		if !errors.Is(err, kind) {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// Err returns nil when there are no errors, so callers never see a typed nil.
func (errs ValidationErrors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RemoteFault wraps a failure of the external service call. The underlying
// message is kept as is; Hint adds context when the cause is recognisable.
type RemoteFault struct {
	Operation string
	Code      string
	Hint      string
	Err       error
}

func (e *RemoteFault) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Operation, e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *RemoteFault) Unwrap() []error {
	return []error{ErrRemoteFault, e.Err}
}

func newRemoteFault(operation string, err error) *RemoteFault {
	fault := &RemoteFault{Operation: operation, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fault.Code = apiErr.ErrorCode()
	}
	var dnsErr *net.DNSError
	var nfe *types.ResourceNotFoundException
	var ade *types.AccessDeniedException
	var ve *types.ValidationException
	switch {
	case errors.As(err, &dnsErr):
		fault.Hint = fmt.Sprintf("could not resolve host %s; check the region and endpoint configuration", dnsErr.Name)
	case errors.As(err, &nfe):
		fault.Hint = "the resource does not exist"
	case errors.As(err, &ade):
		fault.Hint = "access denied; check the IAM permissions of the caller"
	case errors.As(err, &ve):
		fault.Hint = "the service rejected the request"
	case errors.Is(err, context.DeadlineExceeded):
		fault.Hint = "the call timed out"
	}
	return fault
}
