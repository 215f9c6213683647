package chainapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork  error = errors.New("network failure")
	ErrRejected error = errors.New("request rejected")
	ErrNotFound error = errors.New("resource not found")
)

// Kind classifies a failed call.
type Kind int

const (
	// KindNetwork: no response was received (dial failure, timeout, cancellation).
	KindNetwork Kind = iota + 1
	// KindRejected: the server answered with an error and said why.
	KindRejected
	// KindStatus: the server answered with an error status and no usable body.
	KindStatus
	// KindRequest: the request could not be built or the response not decoded.
	KindRequest
)

const (
	msgNetwork = "network connection failed, check your network settings"
	msgRequest = "request configuration error"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "invalid request parameters",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "requested resource not found",
	http.StatusInternalServerError: "internal server error",
}

// Error is the single shape every failed call is normalized into.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrRejected.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.Status, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrRejected:
		return e.Kind == KindRejected || e.Kind == KindStatus
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Message returns the human-readable text for err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ServerMessage returns the explanation supplied by the server, if there was one.
func ServerMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindRejected && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, Err: err}
}

func requestError(err error) *Error {
	return &Error{Kind: KindRequest, Message: msgRequest, Err: err}
}

func statusError(status int) *Error {
	msg, ok := statusMessages[status]
	if !ok {
		msg = fmt.Sprintf("request failed (%d)", status)
	}
	return &Error{Kind: KindStatus, Status: status, Message: msg}
}

func rejectedError(status int, env envelope) *Error {
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}
	return &Error{Kind: KindRejected, Status: status, Message: msg}
}
