package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/service"
)

func TestOAuthHandler_LoginSetsStateCookie(t *testing.T) {
	oauth := &mockOAuth{loginURL: "https://provider.test/authorize?state=x"}
	r := newTestRouter(&service.Service{OAuth: oauth})

	w := doRequest(r, http.MethodGet, "/auth/oauth/google/login", "", "")
	if w.Code != http.StatusFound {
		t.Fatalf("status=%d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != oauth.loginURL {
		t.Fatalf("location=%q", loc)
	}
	var state *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == oauthStateCookie {
			state = ck
		}
	}
	if state == nil || state.Value != oauth.lastState || !state.HttpOnly {
		t.Fatalf("state cookie=%+v, service state=%q", state, oauth.lastState)
	}
	if oauth.lastProvider != "google" {
		t.Fatalf("provider=%q", oauth.lastProvider)
	}
}

func TestOAuthHandler_UnknownProvider(t *testing.T) {
	oauth := &mockOAuth{loginErr: apperr.NotFound("oauth provider %q is not configured", "myspace")}
	r := newTestRouter(&service.Service{OAuth: oauth})

	w := doRequest(r, http.MethodGet, "/auth/oauth/myspace/login", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestOAuthHandler_Callback(t *testing.T) {
	oauth := &mockOAuth{token: "jwt-token"}
	r := newTestRouter(&service.Service{OAuth: oauth})

	callback := func(query string, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/oauth/kakao/callback?"+query, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := callback("code=abc&state=s1", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing cookie status=%d", w.Code)
	}
	if w := callback("code=abc&state=s1", "other"); w.Code != http.StatusUnauthorized {
		t.Fatalf("mismatched state status=%d", w.Code)
	}
	if w := callback("error=access_denied&state=s1", "s1"); w.Code != http.StatusUnauthorized {
		t.Fatalf("provider error status=%d", w.Code)
	}

	w := callback("code=abc&state=s1", "s1")
	if w.Code != http.StatusOK || w.Body.String() != `{"token":"jwt-token"}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if oauth.lastProvider != "kakao" || oauth.lastCode != "abc" {
		t.Fatalf("provider=%q code=%q", oauth.lastProvider, oauth.lastCode)
	}

	oauth.callbackErr = apperr.Unauthorized("oauth code exchange failed")
	if w := callback("code=bad&state=s1", "s1"); w.Code != http.StatusUnauthorized {
		t.Fatalf("exchange failure status=%d", w.Code)
	}
}
