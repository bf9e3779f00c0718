package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
)

// usersCollection is the collection holding one profile document per account id.
const usersCollection = "users"

// ProfilesRESTFacade implements profile document operations against the
// document store's REST API.
type ProfilesRESTFacade struct {
	baseURL string
	client  *http.Client
}

// NewProfilesRESTFacade creates a new facade for the given documents endpoint.
func NewProfilesRESTFacade(baseURL string, client *http.Client) *ProfilesRESTFacade {
	return &ProfilesRESTFacade{baseURL: baseURL, client: client}
}

// storeValue is a typed document field value on the wire.
type storeValue struct {
	StringValue    *string `json:"stringValue,omitempty"`
	TimestampValue *string `json:"timestampValue,omitempty"`
}

type storeDocument struct {
	Name       string                `json:"name,omitempty"`
	Fields     map[string]storeValue `json:"fields"`
	CreateTime string                `json:"createTime,omitempty"`
	UpdateTime string                `json:"updateTime,omitempty"`
}

type listDocumentsResponse struct {
	Documents []storeDocument `json:"documents"`
}

type storeErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Set writes the full profile document keyed by uid, overwriting any
// existing document with the same key.
func (f *ProfilesRESTFacade) Set(ctx context.Context, uid string, profile models.UserProfile) error {
	doc := storeDocument{Fields: encodeProfileFields(profile)}
	if err := f.do(ctx, http.MethodPatch, f.docURL(uid), doc, nil); err != nil {
		logger.Log.Errorw("profile write failed", "uid", uid, "error", err)
		return err
	}
	logger.Log.Infow("profile document written", "uid", uid, "username", profile.Username)
	return nil
}

// List returns all profile documents in the users collection. A single page
// is read; the listing is not paginated.
func (f *ProfilesRESTFacade) List(ctx context.Context) ([]models.UserProfile, error) {
	var resp listDocumentsResponse
	if err := f.do(ctx, http.MethodGet, f.collectionURL(), nil, &resp); err != nil {
		logger.Log.Errorw("profile listing failed", "error", err)
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(resp.Documents))
	for _, doc := range resp.Documents {
		profiles = append(profiles, decodeProfileDocument(doc))
	}
	return profiles, nil
}

// Update applies a partial update of the username, email, and displayName
// fields of the document keyed by uid. Other fields are left untouched.
func (f *ProfilesRESTFacade) Update(ctx context.Context, uid string, update models.ProfileUpdate) error {
	doc := storeDocument{Fields: map[string]storeValue{
		"username":    {StringValue: &update.Username},
		"email":       {StringValue: &update.Email},
		"displayName": {StringValue: &update.DisplayName},
	}}

	u := f.docURL(uid) + "?" + url.Values{
		"updateMask.fieldPaths": []string{"username", "email", "displayName"},
	}.Encode()

	if err := f.do(ctx, http.MethodPatch, u, doc, nil); err != nil {
		logger.Log.Errorw("profile update failed", "uid", uid, "error", err)
		return err
	}
	logger.Log.Infow("profile document updated", "uid", uid, "username", update.Username)
	return nil
}

// Delete removes the profile document keyed by uid. The underlying account
// at the identity provider is not touched.
func (f *ProfilesRESTFacade) Delete(ctx context.Context, uid string) error {
	if err := f.do(ctx, http.MethodDelete, f.docURL(uid), nil, nil); err != nil {
		logger.Log.Errorw("profile delete failed", "uid", uid, "error", err)
		return err
	}
	logger.Log.Infow("profile document deleted", "uid", uid)
	return nil
}

func (f *ProfilesRESTFacade) collectionURL() string {
	return f.baseURL + "/" + usersCollection
}

func (f *ProfilesRESTFacade) docURL(uid string) string {
	return f.baseURL + "/" + usersCollection + "/" + uid
}

func (f *ProfilesRESTFacade) do(ctx context.Context, method, url string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return &Error{Code: "network-request-failed", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp storeErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &Error{Code: "store/internal", Message: fmt.Sprintf("status %d", resp.StatusCode)}
		}
		code := "store/" + strings.ToLower(strings.ReplaceAll(errResp.Error.Status, "_", "-"))
		return &Error{Code: code, Message: errResp.Error.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func encodeProfileFields(profile models.UserProfile) map[string]storeValue {
	createdAt := profile.CreatedAt.UTC().Format(time.RFC3339Nano)
	return map[string]storeValue{
		"username":    {StringValue: &profile.Username},
		"email":       {StringValue: &profile.Email},
		"displayName": {StringValue: &profile.DisplayName},
		"uid":         {StringValue: &profile.UID},
		"createdAt":   {TimestampValue: &createdAt},
	}
}

func decodeProfileDocument(doc storeDocument) models.UserProfile {
	str := func(field string) string {
		if v, ok := doc.Fields[field]; ok && v.StringValue != nil {
			return *v.StringValue
		}
		return ""
	}

	profile := models.UserProfile{
		Username:    str("username"),
		Email:       str("email"),
		DisplayName: str("displayName"),
		UID:         str("uid"),
	}

	// The document key is authoritative for the id; the uid field is a copy.
	if doc.Name != "" {
		profile.UID = path.Base(doc.Name)
	}

	if v, ok := doc.Fields["createdAt"]; ok && v.TimestampValue != nil {
		if ts, err := time.Parse(time.RFC3339Nano, *v.TimestampValue); err == nil {
			profile.CreatedAt = ts
		}
	}

	return profile
}
