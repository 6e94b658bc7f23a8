package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/config"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const maxProfileBytes = 1 << 20

// tokenIssuer signs tokens and decides account roles.
type tokenIssuer interface {
	IssueToken(userID int64, role string) (string, error)
	roleFor(email string) string
	promote(ctx context.Context, u *models.User) error
}

// OAuthService implements the authorization-code flow for the configured providers.
type OAuthService struct {
	providers map[string]config.OAuthProvider
	configs   map[string]*oauth2.Config
	users     repository.Users
	tokens    tokenIssuer
}

func NewOAuthService(providers map[string]config.OAuthProvider, users repository.Users, tokens tokenIssuer) *OAuthService {
	s := &OAuthService{
		providers: make(map[string]config.OAuthProvider, len(providers)),
		configs:   make(map[string]*oauth2.Config, len(providers)),
		users:     users,
		tokens:    tokens,
	}
	for name, p := range providers {
		name = strings.ToLower(name)
		s.providers[name] = p
		s.configs[name] = &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURL,
			Scopes:       p.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  p.AuthURL,
				TokenURL: p.TokenURL,
			},
		}
	}
	return s
}

// Providers lists configured provider names in sorted order.
func (s *OAuthService) Providers() []string {
	out := make([]string, 0, len(s.providers))
	for name := range s.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *OAuthService) lookup(provider string) (*oauth2.Config, config.OAuthProvider, error) {
	name := strings.ToLower(strings.TrimSpace(provider))
	conf, ok := s.configs[name]
	if !ok {
		return nil, config.OAuthProvider{}, apperr.NotFound("oauth provider %q is not configured", provider)
	}
	return conf, s.providers[name], nil
}

// LoginURL returns the provider consent page URL carrying state.
func (s *OAuthService) LoginURL(provider, state string) (string, error) {
	conf, _, err := s.lookup(provider)
	if err != nil {
		return "", err
	}
	if state == "" {
		return "", apperr.Validation("oauth state is empty")
	}
	return conf.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// oauthProfile is what we keep from a provider's userinfo document.
type oauthProfile struct {
	ID    string
	Email string
	Name  string
}

// Callback exchanges the code, loads the profile and returns a JWT for the
// matching user, creating the account on first login.
func (s *OAuthService) Callback(ctx context.Context, provider, code string) (string, error) {
	conf, p, err := s.lookup(provider)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(code) == "" {
		return "", apperr.Validation("authorization code is empty")
	}
	name := strings.ToLower(strings.TrimSpace(provider))

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeUnauthorized, "oauth code exchange failed", err)
	}
	profile, err := fetchProfile(ctx, conf.Client(ctx, tok), p)
	if err != nil {
		return "", err
	}

	u, err := s.findOrCreate(ctx, name, profile)
	if err != nil {
		return "", err
	}
	return s.tokens.IssueToken(u.ID, u.Role)
}

func fetchProfile(ctx context.Context, client *http.Client, p config.OAuthProvider) (oauthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return oauthProfile{}, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return oauthProfile{}, apperr.Wrap(apperr.CodeUnauthorized, "oauth profile request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return oauthProfile{}, apperr.Unauthorized("oauth profile request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return oauthProfile{}, fmt.Errorf("read userinfo: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return oauthProfile{}, apperr.Unauthorized("oauth profile is not valid JSON")
	}

	profile := oauthProfile{ID: gjson.GetBytes(body, p.IDPath).String()}
	if p.EmailPath != "" {
		profile.Email = normalizeEmail(gjson.GetBytes(body, p.EmailPath).String())
	}
	if p.NamePath != "" {
		profile.Name = strings.TrimSpace(gjson.GetBytes(body, p.NamePath).String())
	}
	if profile.ID == "" {
		return oauthProfile{}, apperr.Unauthorized("oauth profile has no %q field", p.IDPath)
	}
	return profile, nil
}

func (s *OAuthService) findOrCreate(ctx context.Context, provider string, profile oauthProfile) (*models.User, error) {
	u, err := s.users.GetByProvider(ctx, provider, profile.ID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, s.tokens.promote(ctx, u)
	}

	email := profile.Email
	if email == "" {
		email = fmt.Sprintf("%s_%s@users.noreply", provider, profile.ID)
	}
	if other, err := s.users.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if other != nil {
		return nil, apperr.Conflict("email %q is registered with another login method", email)
	}

	nickname, err := s.freeNickname(ctx, provider, profile)
	if err != nil {
		return nil, err
	}
	created := models.User{
		Email:      email,
		Nickname:   nickname,
		Provider:   provider,
		ProviderID: profile.ID,
		Role:       s.tokens.roleFor(email),
	}
	created.ID, err = s.users.Create(ctx, created)
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent first login
		if u, gerr := s.users.GetByProvider(ctx, provider, profile.ID); gerr == nil && u != nil {
			return u, nil
		}
	}
	if err != nil {
		return nil, translate(err, "user")
	}
	return &created, nil
}

// freeNickname derives a nickname from the profile, adding a random suffix when taken.
func (s *OAuthService) freeNickname(ctx context.Context, provider string, profile oauthProfile) (string, error) {
	base := profile.Name
	if base == "" && profile.Email != "" {
		base, _, _ = strings.Cut(profile.Email, "@")
	}
	if base == "" {
		base = provider + "_user"
	}
	if r := []rune(base); len(r) > maxNicknameLen-9 {
		base = string(r[:maxNicknameLen-9])
	}

	candidate := base
	for i := 0; i < 3; i++ {
		u, err := s.users.GetByNickname(ctx, candidate)
		if err != nil {
			return "", err
		}
		if u == nil {
			return candidate, nil
		}
		candidate = base + "_" + uuid.NewString()[:8]
	}
	return "", apperr.Conflict("could not find a free nickname for %q", base)
}
