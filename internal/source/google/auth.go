// Package google adapts the Google Calendar, Tasks and Gmail APIs to
// the planner's DataSource contract, and pushes planned blocks and the
// morning brief back out.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
)

const (
	credentialsFile = "credentials.json"
	tokenFile       = "token.json"
	authListenAddr  = "localhost:6789"
)

// client builds an authenticated HTTP client from the credentials and
// token files in dir. A missing token triggers the browser-based
// authorization flow and the obtained token is cached in dir.
func client(ctx context.Context, dir string, scopes []string) (*http.Client, error) {
	raw, err := os.ReadFile(filepath.Join(dir, credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("google: read client credentials: %w", err)
	}
	cfg, err := googleauth.ConfigFromJSON(raw, scopes...)
	if err != nil {
		return nil, fmt.Errorf("google: parse client credentials: %w", err)
	}
	cfg.RedirectURL = "http://" + authListenAddr + "/oauth2callback"

	tokenPath := filepath.Join(dir, tokenFile)
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		tok, err = tokenFromWeb(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, tok); err != nil {
			return nil, err
		}
	}
	return cfg.Client(ctx, tok), nil
}

// tokenFromWeb runs the authorization-code flow: prints the consent
// URL and waits for the redirect on a local listener.
func tokenFromWeb(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", authListenAddr)
	if err != nil {
		return nil, fmt.Errorf("google: start auth listener: %w", err)
	}
	defer listener.Close()

	codeCh := make(chan string, 1)
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code missing", http.StatusBadRequest)
				return
			}
			fmt.Fprint(w, "Authorization complete. You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() { _ = server.Serve(listener) }()
	defer server.Shutdown(context.Background())

	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following URL to authorize briefd:\n%s\n", authURL)

	select {
	case code := <-codeCh:
		tok, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("google: exchange authorization code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("google: authorization timed out")
	}
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("google: decode token %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("google: create token dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("google: cache token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
