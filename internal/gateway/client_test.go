package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialnet-client/internal/model"
)

// =============================================================================
// MOCK SESSION ALERTER
// =============================================================================

type mockAlerter struct {
	calls int
}

func (m *mockAlerter) ShowAlert() {
	m.calls++
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *mockAlerter) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	alerter := &mockAlerter{}
	client := NewClient(srv.URL, 5*time.Second, alerter)
	t.Cleanup(func() { client.Close() })
	return client, alerter
}

// =============================================================================
// SESSION EXPIRY TESTS
// =============================================================================

func TestClient_SessionOver_RaisesAlertAndReturnsSentinel(t *testing.T) {
	// ARRANGE: the backend answers with the plaintext expiry signal
	client, alerter := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Session is over"))
	})

	// ACT
	_, err := client.CurrentUser(context.Background())

	// ASSERT
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got: %v", err)
	}
	if alerter.calls != 1 {
		t.Errorf("alert raised %d times, want 1", alerter.calls)
	}
}

func TestClient_Plain401_IsNotSessionExpiry(t *testing.T) {
	client, alerter := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Invalid email or password"))
	})

	_, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "x"})

	if errors.Is(err, ErrSessionExpired) {
		t.Fatal("a regular 401 must not be treated as session expiry")
	}
	if alerter.calls != 0 {
		t.Errorf("alert raised %d times, want 0", alerter.calls)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Errorf("message = %q, want server text", apiErr.Message)
	}
}

// =============================================================================
// ERROR TAXONOMY TESTS
// =============================================================================

func TestClient_ErrorStatusWithEmptyBody_UsesStatusText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CurrentUser(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("message = %q, want status text fallback", apiErr.Message)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"session expiry is silenced", ErrSessionExpired, ""},
		{"server message wins", &APIError{Status: 409, Message: "Username taken"}, "Username taken"},
		{"unknown error falls back", errors.New("dial tcp: refused"), "An error occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// DECODING TESTS
// =============================================================================

func TestClient_CurrentUser_DecodesBackendShape(t *testing.T) {
	// ARRANGE: backend field names use the _id convention
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/" {
			t.Errorf("path = %q, want /users/", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"_id":       "u1",
			"username":  "alice",
			"email":     "alice@example.com",
			"firstname": "Alice",
			"lastname":  "Doe",
			"follows":   []map[string]any{{"_id": "u2", "username": "bob"}},
		})
	})

	// ACT
	user, err := client.CurrentUser(context.Background())

	// ASSERT
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("id = %q, want u1", user.ID)
	}
	if user.FullName() != "Alice Doe" {
		t.Errorf("full name = %q, want %q", user.FullName(), "Alice Doe")
	}
	if !user.IsFollowing("u2") {
		t.Error("expected follows list to contain u2")
	}
}

func TestClient_SessionCookie_CarriedAcrossCalls(t *testing.T) {
	// ARRANGE: login sets the session cookie, the next call must echo it
	var gotCookie string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok-123", Path: "/"})
			json.NewEncoder(w).Encode(map[string]any{"_id": "u1"})
		case "/users/":
			if c, err := r.Cookie("session"); err == nil {
				gotCookie = c.Value
			}
			json.NewEncoder(w).Encode(map[string]any{"_id": "u1"})
		}
	})

	// ACT
	if _, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("current user failed: %v", err)
	}

	// ASSERT
	if gotCookie != "tok-123" {
		t.Errorf("session cookie = %q, want tok-123", gotCookie)
	}
}
