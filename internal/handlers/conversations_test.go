package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createConversation(t *testing.T, s *testServer, senderID, recipientID uint) map[string]interface{} {
	t.Helper()

	body := fmt.Sprintf(`{"sender_id":%d,"recipient_id":%d}`, senderID, recipientID)
	w := s.request(t, http.MethodPost, "/conversations", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var conversation map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversation))
	return conversation
}

func TestCreateConversationIdempotentAndSymmetric(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	first := createConversation(t, s, alice, bob)
	repeat := createConversation(t, s, alice, bob)
	reversed := createConversation(t, s, bob, alice)

	assert.Equal(t, first["id"], repeat["id"])
	assert.Equal(t, first["id"], reversed["id"])

	sender := first["sender"].(map[string]interface{})
	recipient := first["recipient"].(map[string]interface{})
	assert.Equal(t, "alice", sender["username"])
	assert.Equal(t, "bob", recipient["username"])
}

func TestCreateConversationMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodPost, "/conversations", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "sender_id")
	assert.Contains(t, body, "recipient_id")
}

func TestCreateConversationUnknownUser(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")

	w := s.request(t, http.MethodPost, "/conversations", fmt.Sprintf(`{"sender_id":%d,"recipient_id":999}`, alice))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"recipient":["must exist"]}`, w.Body.String())
}

func TestGetConversationNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodGet, "/conversations/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Conversation not found"}`, w.Body.String())
}

func TestListConversationsRequiresUserID(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodGet, "/conversations", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListConversationsWithLastMessage(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	carol := s.createUser(t, "carol")

	conversation := createConversation(t, s, alice, bob)
	conversationID := uint(conversation["id"].(float64))

	// A second conversation with no messages stays hidden from the listing
	createConversation(t, s, alice, carol)

	for _, content := range []string{"hi", "latest"} {
		body := fmt.Sprintf(`{"message":{"content":"%s","user_id":%d}}`, content, alice)
		w := s.request(t, http.MethodPost, fmt.Sprintf("/conversations/%d/messages", conversationID), body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.request(t, http.MethodGet, fmt.Sprintf("/conversations?user_id=%d", alice), "")
	require.Equal(t, http.StatusOK, w.Code)

	var conversations []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversations))
	require.Len(t, conversations, 1)

	last := conversations[0]["last_message"].(map[string]interface{})
	assert.Equal(t, "latest", last["content"])
	assert.Equal(t, float64(alice), last["user_id"])
}
