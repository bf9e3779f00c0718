package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
)

// identityCodes maps the identity provider's REST error codes to the
// canonical "auth/..." codes the user-facing message table is keyed on.
var identityCodes = map[string]string{
	"EMAIL_EXISTS":                "auth/email-already-in-use",
	"WEAK_PASSWORD":               "auth/weak-password",
	"INVALID_EMAIL":               "auth/invalid-email",
	"OPERATION_NOT_ALLOWED":       "auth/operation-not-allowed",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "auth/too-many-requests",
}

// IdentityRESTFacade implements account operations against the identity
// provider's REST API.
type IdentityRESTFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewIdentityRESTFacade creates a new facade for the given endpoint and API key.
func NewIdentityRESTFacade(baseURL, apiKey string, client *http.Client) *IdentityRESTFacade {
	return &IdentityRESTFacade{baseURL: baseURL, apiKey: apiKey, client: client}
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signUpResponse struct {
	LocalID   string `json:"localId"`
	IDToken   string `json:"idToken"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

type updateAccountRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates a new account with the given credentials and returns the
// account id and session token assigned by the provider.
func (f *IdentityRESTFacade) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	var resp signUpResponse
	err := f.post(ctx, "accounts:signUp", signUpRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		logger.Log.Errorw("account creation failed", "email", email, "error", err)
		return nil, err
	}

	account := &models.Account{
		UID:     resp.LocalID,
		Email:   resp.Email,
		IDToken: resp.IDToken,
	}

	// The token is read for its expiry only; it was just received from the
	// provider over TLS, so signature verification adds nothing here.
	if claims, err := decodeTokenClaims(resp.IDToken); err != nil {
		logger.Log.Warnw("could not decode session token claims", "uid", resp.LocalID, "error", err)
	} else if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		account.ExpiresAt = exp.Time
	}

	logger.Log.Infow("account created", "uid", account.UID, "email", account.Email)
	return account, nil
}

// UpdateDisplayName sets the display name on the account owning the session token.
func (f *IdentityRESTFacade) UpdateDisplayName(ctx context.Context, idToken, displayName string) error {
	err := f.post(ctx, "accounts:update", updateAccountRequest{
		IDToken:     idToken,
		DisplayName: displayName,
	}, &struct{}{})
	if err != nil {
		logger.Log.Errorw("display name update failed", "display_name", displayName, "error", err)
		return err
	}
	return nil
}

func (f *IdentityRESTFacade) post(ctx context.Context, action string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", f.baseURL, action, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return &Error{Code: "auth/network-request-failed", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp identityErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &Error{Code: "auth/internal-error", Message: fmt.Sprintf("status %d", resp.StatusCode)}
		}
		return &Error{
			Code:    canonicalIdentityCode(errResp.Error.Message),
			Message: errResp.Error.Message,
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// canonicalIdentityCode translates a REST error message such as
// "WEAK_PASSWORD : Password should be at least 6 characters" to its
// SDK-style code. Unknown codes are passed through lowercased under the
// auth/ namespace so the caller's default mapping branch applies.
func canonicalIdentityCode(message string) string {
	code := message
	if i := strings.IndexAny(code, " :"); i > 0 {
		code = code[:i]
	}
	if canonical, ok := identityCodes[code]; ok {
		return canonical
	}
	return "auth/" + strings.ToLower(strings.ReplaceAll(code, "_", "-"))
}

func decodeTokenClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
