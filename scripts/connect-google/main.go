// scripts/connect-google/main.go
//
// Run this ONCE locally to connect a session to Google Calendar without
// going through the page: it walks the consent flow in your browser and
// stores the same token record the google backend mode reads.
//
// Usage:
//   go run scripts/connect-google/main.go [session-id]
//
// Without an argument it targets the session id the server mints, so a
// server started afterwards with backend.mode=google comes up already
// connected. The script listens on the configured redirect URL, so stop
// the server first if it is running on the same port.

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"

	"github.com/yhoon3002/schedule-bot/config"
	connRepo "github.com/yhoon3002/schedule-bot/internal/connection/repository"
	connGoogle "github.com/yhoon3002/schedule-bot/internal/connection/repository/google"
	"github.com/yhoon3002/schedule-bot/internal/session"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		log.Fatalf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	// Default to the id the server hands out, so the page finds the
	// token without a reconnect.
	sessionID := ""
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	} else {
		provider := session.NewProvider(logger, session.NewFileStorage(cfg.Session.StoragePath))
		sessionID = provider.SessionID()
	}

	redirect, err := url.Parse(cfg.Google.RedirectURL)
	if err != nil {
		log.Fatalf("Failed to parse google.redirect_url %q: %v", cfg.Google.RedirectURL, err)
	}

	client := goauth.New(goauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	repo := connGoogle.New(logger, client, goauth.NewStore(cfg.Google.TokenDir))

	ctx := context.Background()
	state := uuid.NewString()

	// Catch the consent redirect on the URL the OAuth app registers.
	codeChan := make(chan string)
	errChan := make(chan error)

	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if errMsg := q.Get("error"); errMsg != "" {
			fmt.Fprintln(w, "연결이 취소되었습니다. 이 창을 닫아도 됩니다.")
			errChan <- fmt.Errorf("consent denied: %s", errMsg)
			return
		}
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errChan <- fmt.Errorf("state mismatch on callback")
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			errChan <- fmt.Errorf("no authorization code received")
			return
		}
		fmt.Fprintln(w, "연결되었습니다. 이 창을 닫아도 됩니다.")
		codeChan <- code
	})

	server := &http.Server{Addr: redirect.Host, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := client.AuthCodeURL(state, "")
	fmt.Println("=================================================================")
	fmt.Println("1단계: 아래 URL을 브라우저에서 열고 Google 계정으로 로그인하세요:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Println("2단계: 동의하면 브라우저가 이 스크립트로 돌아옵니다. 기다리는 중...")

	select {
	case code := <-codeChan:
		_ = server.Shutdown(ctx)

		if err := repo.Connect(ctx, connRepo.ConnectInput{
			SessionID:   sessionID,
			Code:        code,
			RedirectURI: cfg.Google.RedirectURL,
		}); err != nil {
			log.Fatalf("Failed to exchange authorization code: %v", err)
		}

		snap, err := repo.Status(ctx, sessionID)
		if err != nil {
			log.Fatalf("Failed to read back token record: %v", err)
		}

		fmt.Println()
		fmt.Printf("토큰이 저장되었습니다: %s (세션 %s, 계정 %s)\n", cfg.Google.TokenDir, sessionID, snap.Email)
		fmt.Println("이제 google 모드로 서버를 시작하면 연결된 상태로 동작합니다:")
		fmt.Println("  BACKEND_MODE=google go run cmd/api/main.go")

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		log.Fatalf("OAuth flow failed: %v", err)
	}
}
