package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credstore.Session, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	session := credstore.NewSession(credstore.NewMemory())
	return New(srv.URL, 5*time.Second, session), session, &hits
}

func TestUserCallWithoutTokenNeverTouchesNetwork(t *testing.T) {
	client, _, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server")
	}))

	_, err := client.User.Profile(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message != "Authentication required" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if hits.Load() != 0 {
		t.Errorf("server hits = %d, want 0", hits.Load())
	}
}

func TestAdminCallWithoutTokenNeverTouchesNetwork(t *testing.T) {
	client, _, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server")
	}))

	_, err := client.Admin.Users(context.Background())
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Admin authentication required" {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
	if hits.Load() != 0 {
		t.Errorf("server hits = %d, want 0", hits.Load())
	}
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotReqID, gotContentType string
	client, session, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":"u1","name":"Asha"}`))
	}))

	if err := session.SaveLogin(context.Background(), "tok123", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}

	user, err := client.Auth.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.Name != "Asha" {
		t.Errorf("name = %q", user.Name)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID not set")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestServerErrorMessagePreferred(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid OTP"}`))
	}))

	_, err := client.Auth.VerifyOTP(context.Background(), "9876543210", "000000")
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Message != "Invalid OTP" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestServerErrorWithoutMessageFallsBack(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	}))

	_, err := client.Auth.RequestOTP(context.Background(), "9876543210")
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "request failed with status 500" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestUnparseableSuccessBodyYieldsZeroPayload(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<<garbage>>`))
	}))

	resp, err := client.Auth.RequestOTP(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Message != "" {
		t.Errorf("message = %q, want empty", resp.Message)
	}
}

func TestTransportFailureIsStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	session := credstore.NewSession(credstore.NewMemory())
	client := New(srv.URL, time.Second, session)

	_, err := client.Academic.Boards(context.Background())
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("status = %d, want 0", apiErr.Status)
	}
	if apiErr.Message == "" {
		t.Error("message is empty")
	}
}

func TestFailedRequestIsNotRetried(t *testing.T) {
	client, _, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	if _, err := client.Academic.Boards(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestHelpers(t *testing.T) {
	authErr := &Error{Status: 401, Message: "Authentication required"}
	if !IsAuthRequired(authErr) {
		t.Error("IsAuthRequired(401) = false")
	}
	if IsAuthRequired(&Error{Status: 403, Message: "forbidden"}) {
		t.Error("IsAuthRequired(403) = true")
	}
	if got := StatusOf(authErr); got != 401 {
		t.Errorf("StatusOf = %d", got)
	}
	if got := StatusOf(context.Canceled); got != -1 {
		t.Errorf("StatusOf(non-api) = %d", got)
	}
}

func TestLoginPickedUpWithoutRebuildingClient(t *testing.T) {
	client, session, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Authentication required"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))

	ctx := context.Background()
	if _, err := client.Tutor.Sessions(ctx); !IsAuthRequired(err) {
		t.Fatalf("expected auth error before login, got %v", err)
	}

	if err := session.SaveLogin(ctx, "fresh", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.Tutor.Sessions(ctx); err != nil {
		t.Fatalf("after login: %v", err)
	}
}
