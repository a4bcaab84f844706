package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alligator-app/backend/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotificationsEmpty(t *testing.T) {
	userRepo := newFakeUserRepo()
	h := handlers.NewNotificationHandler(userRepo)
	alice := createTestUser(t, userRepo, "alice")

	c, rec := newJSONContext(http.MethodGet, "/notifications", "")
	asUser(c, alice.ID.Hex())
	require.NoError(t, h.GetNotifications(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetNotificationsVerbatim(t *testing.T) {
	userRepo := newFakeUserRepo()
	h := handlers.NewNotificationHandler(userRepo)
	alice := createTestUser(t, userRepo, "alice")
	require.NoError(t, userRepo.PushNotification(context.Background(), alice.ID,
		map[string]string{"kind": "external", "note": "written outside the API"}))

	c, rec := newJSONContext(http.MethodGet, "/notifications", "")
	asUser(c, alice.ID.Hex())
	require.NoError(t, h.GetNotifications(c))

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "external", entries[0]["kind"])
}
