package authflow

import (
	"errors"
	"fmt"
)

var (
	InvalidInputErr        = errors.New("invalid input")
	StateMismatchErr       = errors.New("returned state does not match issued state")
	FlowAlreadyConsumedErr = errors.New("authorization flow already consumed")
)

// TokenExchangeError reports a failed exchange of an authorization code at the
// token endpoint: a transport failure, a non-2xx status, or an unreadable
// payload. Code and Description carry the provider's RFC 6749 error fields
// when the response included them.
type TokenExchangeError struct {
	StatusCode  int    // HTTP status, 0 when the request never completed
	Code        string // provider error code, e.g. "invalid_grant"
	Description string // provider error description
	Err         error  // underlying transport or decode error
}

func (e *TokenExchangeError) Error() string {
	msg := "token exchange failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Code)
	}
	if e.Description != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Description)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *TokenExchangeError) Unwrap() error {
	return e.Err
}
