package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-user-admin/internal/logger"
)

// ErrIncompleteConfig is returned when the config endpoint responds without
// the parameters needed to construct the provider clients.
var ErrIncompleteConfig = errors.New("provider config is missing required parameters")

// ProviderConfig holds the backend connection parameters served by the
// config delivery endpoint.
type ProviderConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`

	// Endpoint overrides, used by emulators and tests. When empty, the
	// production endpoints are derived from ProjectID.
	IdentityEndpoint  string `json:"identityEndpoint,omitempty"`
	FirestoreEndpoint string `json:"firestoreEndpoint,omitempty"`
}

// Fetch performs a single GET against the config delivery endpoint and
// decodes the connection parameters. There is no retry: the caller treats
// any error as fatal to startup.
func Fetch(ctx context.Context, client *http.Client, url string) (*ProviderConfig, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch provider config", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("config endpoint returned non-200", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("config endpoint returned status %d", resp.StatusCode)
	}

	var cfg ProviderConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		logger.Log.Errorw("failed to decode provider config", "url", url, "error", err)
		return nil, err
	}

	if cfg.APIKey == "" || cfg.ProjectID == "" {
		return nil, ErrIncompleteConfig
	}

	logger.Log.Infow("provider config loaded", "project_id", cfg.ProjectID)
	return &cfg, nil
}

// IdentityURL returns the base URL of the identity provider REST API.
func (c *ProviderConfig) IdentityURL() string {
	if c.IdentityEndpoint != "" {
		return c.IdentityEndpoint
	}
	return "https://identitytoolkit.googleapis.com/v1"
}

// DocumentsURL returns the base URL of the document store REST API for the
// configured project's default database.
func (c *ProviderConfig) DocumentsURL() string {
	if c.FirestoreEndpoint != "" {
		return c.FirestoreEndpoint
	}
	return fmt.Sprintf("https://firestore.googleapis.com/v1/projects/%s/databases/(default)/documents", c.ProjectID)
}
