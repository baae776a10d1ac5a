// Package oauth wraps the Google authorization-code flow used for
// cookie-session logins.
package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"pvmarket-backend/internal/config"
)

// UserInfo is the subset of the Google userinfo response we keep.
type UserInfo struct {
	Sub   string
	Email string
	Name  string
}

type GoogleProvider interface {
	// AuthCodeURL returns the consent page URL for the given CSRF state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the user's identity.
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}

type googleProvider struct {
	config *oauth2.Config
}

func NewGoogleProvider(cfg config.OAuthConfig) GoogleProvider {
	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Id == "" || info.Email == "" {
		return nil, fmt.Errorf("userinfo response missing identity fields")
	}

	return &UserInfo{
		Sub:   info.Id,
		Email: info.Email,
		Name:  info.Name,
	}, nil
}
