package mocks

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
)

// Doer is a mock implementation of upstream.Doer
type Doer struct {
	mock.Mock
}

func (m *Doer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if resp, ok := args.Get(0).(*http.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// Recorder is a mock implementation of upstream.Recorder
type Recorder struct {
	mock.Mock
}

func (m *Recorder) ObserveUpstream(statusCode int, err error, elapsed time.Duration) {
	m.Called(statusCode, err, elapsed)
}
