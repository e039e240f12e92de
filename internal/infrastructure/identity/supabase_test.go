package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userOne = "6f1d3c3e-1a43-4c55-9b0e-0c1a2b3c4d5e"
	userTwo = "a7e2f0b4-55d1-4f7e-8d2c-9e8f7a6b5c4d"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func respond(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Header: http.Header{}, Body: io.NopCloser(bytes.NewBufferString(body))}
}

func newClient(t *testing.T, fn roundTripperFunc) *Client {
	t.Helper()
	c, err := New(&http.Client{Transport: fn}, Config{URL: "https://proj.supabase.co/", AnonKey: "anon"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil, Config{URL: "https://proj.supabase.co"})
	assert.Error(t, err)
}

func TestSignUp(t *testing.T) {
	t.Run("confirmation pending returns bare user", func(t *testing.T) {
		c := newClient(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "https://proj.supabase.co/auth/v1/signup", req.URL.String())
			assert.Equal(t, "anon", req.Header.Get("apikey"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "jan@example.nl", body["email"])
			return respond(200, `{"id":"`+userOne+`","email":"jan@example.nl","email_confirmed_at":null}`), nil
		})
		u, err := c.SignUp(context.Background(), "jan@example.nl", "s3cret!")
		require.NoError(t, err)
		assert.Equal(t, entities.AuthUser{ID: userOne, Email: "jan@example.nl"}, u)
	})

	t.Run("autoconfirm returns session", func(t *testing.T) {
		c := newClient(t, func(*http.Request) (*http.Response, error) {
			return respond(200, `{"access_token":"tok","user":{"id":"`+userTwo+`","email":"a@b.nl","email_confirmed_at":"2026-10-19T09:00:00Z"}}`), nil
		})
		u, err := c.SignUp(context.Background(), "a@b.nl", "s3cret!")
		require.NoError(t, err)
		assert.Equal(t, userTwo, u.ID)
		assert.True(t, u.EmailConfirmed)
	})

	t.Run("already registered is unknown", func(t *testing.T) {
		c := newClient(t, func(*http.Request) (*http.Response, error) {
			return respond(422, `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`), nil
		})
		_, err := c.SignUp(context.Background(), "a@b.nl", "s3cret!")
		require.ErrorIs(t, err, usecase.ErrExternalService)
		tag, _ := usecase.ExternalTagOf(err)
		assert.Equal(t, usecase.TagUnknown, tag)
		assert.Contains(t, err.Error(), "User already registered")
	})
}

func TestSignInWithPassword(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		tag    usecase.ExternalTag
	}{
		{"legacy invalid grant", 400, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, usecase.TagInvalidCredentials},
		{"invalid credentials code", 400, `{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`, usecase.TagInvalidCredentials},
		{"email not confirmed", 400, `{"code":400,"error_code":"email_not_confirmed","msg":"Email not confirmed"}`, usecase.TagEmailUnconfirmed},
		{"server error", 500, `upstream down`, usecase.TagUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(*http.Request) (*http.Response, error) {
				return respond(tt.status, tt.body), nil
			})
			_, err := c.SignInWithPassword(context.Background(), "a@b.nl", "pw")
			tag, ok := usecase.ExternalTagOf(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.tag, tag)
		})
	}

	t.Run("success", func(t *testing.T) {
		c := newClient(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "password", req.URL.Query().Get("grant_type"))
			return respond(200, `{"access_token":"tok","token_type":"bearer","expires_in":3600,"refresh_token":"ref","user":{"id":"`+userOne+`","email":"a@b.nl"}}`), nil
		})
		s, err := c.SignInWithPassword(context.Background(), "a@b.nl", "pw")
		require.NoError(t, err)
		assert.Equal(t, "tok", s.AccessToken)
		assert.Equal(t, 3600, s.ExpiresIn)
		assert.Equal(t, userOne, s.User.ID)
	})

	t.Run("transport error", func(t *testing.T) {
		c := newClient(t, func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: timeout")
		})
		_, err := c.SignInWithPassword(context.Background(), "a@b.nl", "pw")
		assert.ErrorIs(t, err, usecase.ErrExternalService)
	})
}

func TestSignUp_CancelledContext(t *testing.T) {
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		t.Fatalf("no request expected")
		return nil, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.SignUp(ctx, "a@b.nl", "s3cret!")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfilesInsert(t *testing.T) {
	c := newClient(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/rest/v1/profiles", req.URL.Path)
		assert.Equal(t, "return=minimal", req.Header.Get("Prefer"))
		var row map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&row))
		assert.Equal(t, "elite", row["subscription_plan"])
		return respond(201, ``), nil
	})
	err := c.Profiles().Insert(context.Background(), entities.ProfileRow{ID: userOne, Email: "a@b.nl", Role: entities.UserRoleCraftsman, Plan: entities.PlanElite})
	require.NoError(t, err)
}

func TestProfilesInsert_Rejected(t *testing.T) {
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		return respond(409, `{"code":"23505","message":"duplicate key value violates unique constraint"}`), nil
	})
	err := c.Profiles().Insert(context.Background(), entities.ProfileRow{ID: userOne, Email: "a@b.nl"})
	require.ErrorIs(t, err, usecase.ErrExternalService)
	tag, _ := usecase.ExternalTagOf(err)
	assert.Equal(t, usecase.TagUnknown, tag)
	assert.Contains(t, err.Error(), "duplicate key")
}
