package upstream

import (
	"net"
	"net/http"
	"time"
)

// Doer executes a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Recorder receives the outcome of every upstream request.
type Recorder interface {
	ObserveUpstream(statusCode int, err error, elapsed time.Duration)
}

// NewClient creates the HTTP client used for backend calls.
func NewClient(cfg Config) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	client := &http.Client{Transport: transport}
	if cfg.TimeoutSeconds > 0 {
		client.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return client
}

// Instrument wraps next so each request is reported to rec.
// A nil recorder returns next unchanged.
func Instrument(next Doer, rec Recorder) Doer {
	if rec == nil {
		return next
	}
	return &instrumentedDoer{next: next, rec: rec}
}

type instrumentedDoer struct {
	next Doer
	rec  Recorder
}

func (d *instrumentedDoer) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.next.Do(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	d.rec.ObserveUpstream(status, err, time.Since(start))
	return resp, err
}
