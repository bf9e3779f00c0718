package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProfilesRESTFacade_Set(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/documents/users/uid-1", r.URL.Path)

		var doc storeDocument
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "alice", *doc.Fields["username"].StringValue)
		assert.Equal(t, "alice@example.com", *doc.Fields["email"].StringValue)
		assert.Equal(t, "alice", *doc.Fields["displayName"].StringValue)
		assert.Equal(t, "uid-1", *doc.Fields["uid"].StringValue)
		assert.Equal(t, "2025-06-01T12:00:00Z", *doc.Fields["createdAt"].TimestampValue)

		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())

	err := facade.Set(context.Background(), "uid-1", models.UserProfile{
		UID:         "uid-1",
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "alice",
		CreatedAt:   createdAt,
	})
	assert.NoError(t, err)
}

func TestProfilesRESTFacade_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/documents/users", r.URL.Path)

		fmt.Fprint(w, `{"documents":[
			{"name":"projects/p/databases/(default)/documents/users/uid-1",
			 "fields":{"username":{"stringValue":"alice"},"email":{"stringValue":"alice@example.com"},
			           "displayName":{"stringValue":"alice"},"uid":{"stringValue":"uid-1"},
			           "createdAt":{"timestampValue":"2025-06-01T12:00:00Z"}}},
			{"name":"projects/p/databases/(default)/documents/users/uid-2",
			 "fields":{"username":{"stringValue":"bob"},"email":{"stringValue":"bob@example.com"},
			           "displayName":{"stringValue":"bob"}}}
		]}`)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())

	profiles, err := facade.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)

	assert.Equal(t, "uid-1", profiles[0].UID)
	assert.Equal(t, "alice", profiles[0].Username)
	assert.Equal(t, "alice@example.com", profiles[0].Email)
	assert.Equal(t, "alice", profiles[0].DisplayName)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), profiles[0].CreatedAt)

	// The document key wins over a missing uid field.
	assert.Equal(t, "uid-2", profiles[1].UID)
	assert.True(t, profiles[1].CreatedAt.IsZero())
}

func TestProfilesRESTFacade_List_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())

	profiles, err := facade.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfilesRESTFacade_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/documents/users/uid-1", r.URL.Path)
		assert.ElementsMatch(t,
			[]string{"username", "email", "displayName"},
			r.URL.Query()["updateMask.fieldPaths"])

		var doc storeDocument
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Len(t, doc.Fields, 3)
		assert.Equal(t, "bob2", *doc.Fields["username"].StringValue)
		assert.Equal(t, "bob2@x.com", *doc.Fields["email"].StringValue)
		assert.Equal(t, "bob2", *doc.Fields["displayName"].StringValue)

		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())

	err := facade.Update(context.Background(), "uid-1", models.ProfileUpdate{
		Username:    "bob2",
		Email:       "bob2@x.com",
		DisplayName: "bob2",
	})
	assert.NoError(t, err)
}

func TestProfilesRESTFacade_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/documents/users/uid-1", r.URL.Path)
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())
	assert.NoError(t, facade.Delete(context.Background(), "uid-1"))
}

func TestProfilesRESTFacade_StoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"status":"NOT_FOUND","message":"Document not found"}}`)
	}))
	defer srv.Close()

	facade := NewProfilesRESTFacade(srv.URL+"/v1/documents", srv.Client())

	err := facade.Delete(context.Background(), "missing")
	var provErr *Error
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, "store/not-found", provErr.Code)
	assert.Equal(t, "Document not found", provErr.Message)
}

func TestProfilesRESTFacade_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	facade := NewProfilesRESTFacade(url+"/v1/documents", &http.Client{})

	_, err := facade.List(context.Background())
	var provErr *Error
	assert.ErrorAs(t, err, &provErr)
	assert.Equal(t, "network-request-failed", provErr.Code)
}
