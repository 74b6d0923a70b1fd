package upstream_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-web/core/upstream"
	"catalog-web/core/upstream/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("NoTimeoutByDefault", func(t *testing.T) {
		client := upstream.NewClient(upstream.Config{BaseURL: "http://localhost:9000"})
		assert.NotNil(t, client)
		assert.Equal(t, time.Duration(0), client.Timeout)
	})

	t.Run("ExplicitTimeout", func(t *testing.T) {
		client := upstream.NewClient(upstream.Config{BaseURL: "http://localhost:9000", TimeoutSeconds: 5})
		assert.Equal(t, 5*time.Second, client.Timeout)
	})

	t.Run("NegativeTimeoutIgnored", func(t *testing.T) {
		client := upstream.NewClient(upstream.Config{TimeoutSeconds: -1})
		assert.Equal(t, time.Duration(0), client.Timeout)
	})
}

func TestInstrument(t *testing.T) {
	t.Run("RecordsStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		rec := new(mocks.Recorder)
		rec.On("ObserveUpstream", http.StatusTeapot, nil, mock.AnythingOfType("time.Duration")).Return()

		doer := upstream.Instrument(srv.Client(), rec)
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := doer.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		rec.AssertExpectations(t)
	})

	t.Run("RecordsTransportError", func(t *testing.T) {
		dialErr := errors.New("connection refused")

		next := new(mocks.Doer)
		next.On("Do", mock.Anything).Return(nil, dialErr)

		rec := new(mocks.Recorder)
		rec.On("ObserveUpstream", 0, dialErr, mock.AnythingOfType("time.Duration")).Return()

		req, err := http.NewRequest(http.MethodGet, "http://backend.invalid/catalog/1", nil)
		require.NoError(t, err)

		resp, err := upstream.Instrument(next, rec).Do(req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, dialErr)
		rec.AssertExpectations(t)
	})

	t.Run("NilRecorderPassesThrough", func(t *testing.T) {
		next := new(mocks.Doer)
		assert.Same(t, upstream.Doer(next), upstream.Instrument(next, nil))
	})
}
