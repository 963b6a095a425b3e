package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"resty.dev/v3"
)

// sessionOverBody is the plaintext 401 body the backend uses to signal that
// the session credential has expired and the user must re-authenticate.
const sessionOverBody = "Session is over"

// SessionAlerter receives the global session-expiry signal. The client state
// store implements it.
type SessionAlerter interface {
	ShowAlert()
}

// Client is the single outbound point of communication with the backend.
// The session credential is an opaque cookie set by the login response and
// carried by the cookie jar on every subsequent call.
type Client struct {
	http *resty.Client
}

// NewClient builds a gateway for the given backend base URL. Every response
// passes through the session-expiry interceptor and the metrics middleware.
func NewClient(baseURL string, timeout time.Duration, alerts SessionAlerter) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New never fails with a nil options struct
		panic(err)
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")

	httpClient.AddResponseMiddleware(metricMiddleware)
	httpClient.AddResponseMiddleware(sessionMiddleware(alerts))

	return &Client{http: httpClient}
}

func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.http.R().WithContext(ctx)
}

// sessionMiddleware watches every response for the session-expiry signal and
// raises the global alert. It fires at most once per failed call and never
// retries or queues the request.
func sessionMiddleware(alerts SessionAlerter) resty.ResponseMiddleware {
	return func(_ *resty.Client, res *resty.Response) error {
		if res.StatusCode() == http.StatusUnauthorized && strings.TrimSpace(res.String()) == sessionOverBody {
			log.Println("[Gateway] Session is over, raising session alert")
			if alerts != nil {
				alerts.ShowAlert()
			}
		}
		return nil
	}
}

// check converts a transport error or an error-status response into the
// gateway's error taxonomy. Callers surface anything except ErrSessionExpired,
// which is handled globally by the session alert.
func (c *Client) check(res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !res.IsError() {
		return nil
	}

	body := strings.TrimSpace(res.String())
	if res.StatusCode() == http.StatusUnauthorized && body == sessionOverBody {
		return ErrSessionExpired
	}

	msg := body
	if msg == "" {
		msg = http.StatusText(res.StatusCode())
	}
	return &APIError{Status: res.StatusCode(), Message: msg}
}
