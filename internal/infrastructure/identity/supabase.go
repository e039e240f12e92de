// Package identity talks to Supabase: GoTrue for accounts and PostgREST for
// the remote profiles table.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
	"klusmarkt/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/postgrest-go"
)

const (
	serviceName   = "supabase"
	profilesTable = "profiles"
)

type Config struct {
	URL     string
	AnonKey string
}

type Client struct {
	auth gotrue.Client
	rest *postgrest.Client
}

var _ interfaces.IIdentityProvider = (*Client)(nil)

// New builds the GoTrue and PostgREST clients for one project. httpClient may
// be nil; when set, both clients send through its transport.
func New(httpClient *http.Client, cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" || strings.TrimSpace(cfg.AnonKey) == "" {
		return nil, errors.New("supabase: URL and anon key are required")
	}

	auth := gotrue.New("", cfg.AnonKey).WithCustomGoTrueURL(base + "/auth/v1")
	if httpClient != nil {
		auth = auth.WithClient(*httpClient)
	}

	rest := postgrest.NewClient(base+"/rest/v1", "public", map[string]string{
		"apikey":        cfg.AnonKey,
		"Authorization": "Bearer " + cfg.AnonKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("supabase: rest client: %w", rest.ClientError)
	}
	if httpClient != nil && httpClient.Transport != nil {
		rest.Transport.Parent = httpClient.Transport
	}
	return &Client{auth: auth, rest: rest}, nil
}

func toAuthUser(u types.User) entities.AuthUser {
	return entities.AuthUser{ID: u.ID.String(), Email: u.Email, EmailConfirmed: u.EmailConfirmedAt != nil}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (entities.AuthUser, error) {
	if err := ctx.Err(); err != nil {
		return entities.AuthUser{}, err
	}
	resp, err := c.auth.Signup(types.SignupRequest{Email: email, Password: password})
	if err != nil {
		return entities.AuthUser{}, classify(err)
	}
	if resp.User.ID == uuid.Nil {
		return entities.AuthUser{}, &usecase.ExternalServiceError{Service: serviceName, Tag: usecase.TagUnknown, Message: "sign-up returned no user"}
	}
	return toAuthUser(resp.User), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return entities.Session{}, err
	}
	resp, err := c.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return entities.Session{}, classify(err)
	}
	return entities.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		User:         toAuthUser(resp.User),
	}, nil
}

// ProfileTable inserts rows into the PostgREST "profiles" table.
type ProfileTable struct {
	rest *postgrest.Client
}

var _ interfaces.IProfileStore = (*ProfileTable)(nil)

func (c *Client) Profiles() *ProfileTable {
	return &ProfileTable{rest: c.rest}
}

func (p *ProfileTable) Insert(ctx context.Context, row entities.ProfileRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := p.rest.From(profilesTable).Insert(row, false, "", "minimal", "").Execute(); err != nil {
		return &usecase.ExternalServiceError{Service: serviceName, Tag: usecase.TagUnknown, Err: err}
	}
	return nil
}

// apiError is the union of the GoTrue error bodies (old and new style).
type apiError struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// classify turns a gotrue-go error into a tagged ExternalServiceError. The
// library reports HTTP failures as "response status code N: <body>".
func classify(err error) error {
	if errors.Is(err, types.ErrInvalidTokenRequest) {
		return &usecase.ExternalServiceError{Service: serviceName, Tag: usecase.TagInvalidCredentials, Err: err}
	}
	var status int
	if _, scanErr := fmt.Sscanf(err.Error(), "response status code %d", &status); scanErr != nil {
		return &usecase.ExternalServiceError{Service: serviceName, Tag: usecase.TagUnknown, Err: err}
	}
	raw := ""
	if i := strings.Index(err.Error(), ": "); i >= 0 {
		raw = err.Error()[i+2:]
	}

	var body apiError
	_ = json.Unmarshal([]byte(raw), &body)
	msg := body.text()
	if msg == "" {
		msg = strings.TrimSpace(raw)
	}
	lower := strings.ToLower(msg + " " + body.ErrorCode + " " + body.Error)

	tag := usecase.TagUnknown
	switch {
	case strings.Contains(lower, "email_not_confirmed"), strings.Contains(lower, "email not confirmed"):
		tag = usecase.TagEmailUnconfirmed
	case strings.Contains(lower, "invalid_credentials"), strings.Contains(lower, "invalid login credentials"),
		body.Error == "invalid_grant":
		tag = usecase.TagInvalidCredentials
	}
	return &usecase.ExternalServiceError{
		Service: serviceName,
		Tag:     tag,
		Message: fmt.Sprintf("status %d: %s", status, msg),
	}
}
