package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/config"
	"fitness_tracker/internal/models"
)

// fakeProvider serves a token endpoint and a userinfo endpoint.
func fakeProvider(t *testing.T, profile string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(profile))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func kakaoConfig(base string) map[string]config.OAuthProvider {
	return map[string]config.OAuthProvider{
		"Kakao": {
			ClientID:     "client",
			ClientSecret: "secret",
			AuthURL:      base + "/authorize",
			TokenURL:     base + "/token",
			UserInfoURL:  base + "/userinfo",
			RedirectURL:  "http://localhost:8080/auth/oauth/kakao/callback",
			Scopes:       []string{"profile"},
			IDPath:       "id",
			EmailPath:    "kakao_account.email",
			NamePath:     "properties.nickname",
		},
	}
}

func TestOAuthService_LoginURL(t *testing.T) {
	svc := NewOAuthService(kakaoConfig("https://kauth.example"), newMemUsers(), newTestAuth(newMemUsers()))

	if got := svc.Providers(); len(got) != 1 || got[0] != "kakao" {
		t.Fatalf("unexpected providers %v", got)
	}

	raw, err := svc.LoginURL("kakao", "state-1")
	if err != nil {
		t.Fatalf("LoginURL: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := u.Query()
	if u.Host != "kauth.example" || q.Get("state") != "state-1" || q.Get("client_id") != "client" || q.Get("response_type") != "code" {
		t.Fatalf("unexpected login url %s", raw)
	}

	if _, err := svc.LoginURL("github", "s"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for unknown provider, got %v", err)
	}
}

func TestOAuthService_CallbackCreatesThenReusesUser(t *testing.T) {
	srv := fakeProvider(t, `{"id":4242,"properties":{"nickname":"runner"},"kakao_account":{"email":"Runner@Kakao.com"}}`)
	users := newMemUsers()
	auth := newTestAuth(users)
	svc := NewOAuthService(kakaoConfig(srv.URL), users, auth)
	ctx := context.Background()

	// a local account already owns the derived nickname
	_, _ = users.Create(ctx, models.User{Email: "x@x.io", Nickname: "runner", Provider: models.ProviderLocal, ProviderID: "x@x.io", Role: models.RoleUser})

	token, err := svc.Callback(ctx, "kakao", "good-code")
	if err != nil {
		t.Fatalf("Callback: %v", err)
	}
	ident, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	u, _ := users.GetByID(ctx, ident.UserID)
	if u == nil || u.Provider != "kakao" || u.ProviderID != "4242" || u.Email != "runner@kakao.com" {
		t.Fatalf("unexpected oauth user %+v", u)
	}
	if !strings.HasPrefix(u.Nickname, "runner_") {
		t.Fatalf("expected suffixed nickname, got %q", u.Nickname)
	}

	token2, err := svc.Callback(ctx, "kakao", "good-code")
	if err != nil {
		t.Fatalf("second Callback: %v", err)
	}
	ident2, _ := auth.ParseToken(token2)
	if ident2.UserID != ident.UserID {
		t.Fatalf("expected same user on second login, got %d vs %d", ident2.UserID, ident.UserID)
	}
}

func TestOAuthService_CallbackErrors(t *testing.T) {
	srv := fakeProvider(t, `{"properties":{"nickname":"noid"}}`)
	users := newMemUsers()
	svc := NewOAuthService(kakaoConfig(srv.URL), users, newTestAuth(users))
	ctx := context.Background()

	if _, err := svc.Callback(ctx, "kakao", "bad-code"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for rejected code, got %v", err)
	}
	if _, err := svc.Callback(ctx, "kakao", "good-code"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for profile without id, got %v", err)
	}
	if _, err := svc.Callback(ctx, "kakao", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation for empty code, got %v", err)
	}
}

func TestOAuthService_CallbackGrantsListedAdmin(t *testing.T) {
	srv := fakeProvider(t, `{"id":7,"properties":{"nickname":"coach"},"kakao_account":{"email":"coach@kakao.com"}}`)
	users := newMemUsers()
	auth := NewAuthService(users, testSigningKey, time.Hour, []string{"coach@kakao.com"})
	svc := NewOAuthService(kakaoConfig(srv.URL), users, auth)

	token, err := svc.Callback(context.Background(), "kakao", "good-code")
	if err != nil {
		t.Fatalf("Callback: %v", err)
	}
	ident, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ident.Role != models.RoleAdmin {
		t.Fatalf("expected admin identity, got %+v", ident)
	}
}
