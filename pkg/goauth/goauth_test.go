package goauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/yhoon3002/schedule-bot/pkg/goauth"
)

func TestAuthCodeURL(t *testing.T) {
	client := goauth.New(goauth.Config{
		ClientID:    "cid",
		RedirectURL: "http://localhost:8080/oauth/google/callback",
	})

	u := client.AuthCodeURL("state-123", "")
	for _, want := range []string{
		"client_id=cid",
		"state=state-123",
		"access_type=offline",
		"prompt=consent",
		"scope=openid+email+profile",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("AuthCodeURL missing %q: %s", want, u)
		}
	}

	t.Run("Scope override", func(t *testing.T) {
		u := client.AuthCodeURL("state-123", "openid email")
		if !strings.Contains(u, "scope=openid+email") || strings.Contains(u, "calendar") {
			t.Errorf("scope override not applied: %s", u)
		}
	})
}

func TestExchangeE2E(t *testing.T) {
	var gotRedirect string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		r.ParseForm()
		gotRedirect = r.FormValue("redirect_uri")
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":3600,"scope":"openid email https://www.googleapis.com/auth/calendar"}`))
	}))
	defer ts.Close()

	client := goauth.New(goauth.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/oauth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  ts.URL + "/auth",
			TokenURL: ts.URL + "/token",
		},
	})

	t.Run("Successful exchange overrides redirect", func(t *testing.T) {
		tok, err := client.Exchange(context.Background(), "good-code", "http://popup.example/cb")
		if err != nil {
			t.Fatalf("Exchange() error = %v", err)
		}
		if tok.AccessToken != "at-1" || tok.RefreshToken != "rt-1" {
			t.Errorf("unexpected token: %+v", tok)
		}
		if gotRedirect != "http://popup.example/cb" {
			t.Errorf("redirect_uri = %q", gotRedirect)
		}
	})

	t.Run("Bad code fails", func(t *testing.T) {
		if _, err := client.Exchange(context.Background(), "bad-code", ""); err == nil {
			t.Fatalf("expected exchange failure")
		}
	})
}

func TestUserinfoE2E(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"123","name":"Tester","email":"a@b.com","picture":"http://img"}`))
	}))
	defer ts.Close()

	client := goauth.New(goauth.Config{UserinfoURL: ts.URL})

	t.Run("Profile decoded", func(t *testing.T) {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "at-1", TokenType: "Bearer"})
		info, err := client.Userinfo(context.Background(), src)
		if err != nil {
			t.Fatalf("Userinfo() error = %v", err)
		}
		if info.Email != "a@b.com" || info.Name != "Tester" {
			t.Errorf("unexpected profile: %+v", info)
		}
	})

	t.Run("Unauthorized surfaces error", func(t *testing.T) {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "wrong", TokenType: "Bearer"})
		if _, err := client.Userinfo(context.Background(), src); err == nil {
			t.Fatalf("expected userinfo failure")
		}
	})
}

func TestRevokeE2E(t *testing.T) {
	var gotToken string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		if gotToken == "dead" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := goauth.New(goauth.Config{RevokeURL: ts.URL})

	if err := client.Revoke(context.Background(), "at-1"); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if gotToken != "at-1" {
		t.Errorf("token param = %q", gotToken)
	}
	if err := client.Revoke(context.Background(), "dead"); err == nil {
		t.Fatalf("expected revoke failure")
	}
}

func TestHasScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{
			name:  "Full calendar scope",
			scope: "openid email https://www.googleapis.com/auth/calendar",
			want:  true,
		},
		{
			name:  "Readonly still counts",
			scope: "https://www.googleapis.com/auth/calendar.readonly",
			want:  true,
		},
		{
			name:  "Identity only",
			scope: "openid email profile",
			want:  false,
		},
		{
			name:  "Empty",
			scope: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goauth.HasScope(tt.scope, goauth.ScopeCalendar); got != tt.want {
				t.Errorf("HasScope() = %v, want %v", got, tt.want)
			}
		})
	}
}
