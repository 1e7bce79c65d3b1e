package requesterfake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-ticktick/authflow"
	"github.com/jrsteele09/go-ticktick/oauthmodel"
)

var _ authflow.TokenRequester = (*FakeTokenRequester)(nil)

// FakeTokenRequester records every token request it receives and replies with
// the configured response or error.
type FakeTokenRequester struct {
	Response *oauthmodel.TokenResponse
	Err      error

	requests []oauthmodel.TokenRequest
	lock     sync.Mutex
}

func NewFakeTokenRequester() *FakeTokenRequester {
	return &FakeTokenRequester{}
}

func (r *FakeTokenRequester) SendTokenRequest(_ context.Context, request oauthmodel.TokenRequest) (*oauthmodel.TokenResponse, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.requests = append(r.requests, request)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Response, nil
}

// Requests returns a copy of the recorded token requests.
func (r *FakeTokenRequester) Requests() []oauthmodel.TokenRequest {
	r.lock.Lock()
	defer r.lock.Unlock()
	requests := make([]oauthmodel.TokenRequest, len(r.requests))
	copy(requests, r.requests)
	return requests
}
