package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodPost, "/users", `{"user":{"username":"alice","avatar_url":"https://example.com/a.png"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "https://example.com/a.png", body["avatar_url"])
	assert.NotZero(t, body["id"])
}

func TestCreateUserBlankUsername(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodPost, "/users", `{"user":{"username":"  "}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"username":["can't be blank"]}`, w.Body.String())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "alice")

	w := s.request(t, http.MethodPost, "/users", `{"user":{"username":"alice"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"username":["has already been taken"]}`, w.Body.String())
}

func TestListUsers(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "alice")
	s.createUser(t, "bob")

	w := s.request(t, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["username"])
	assert.Equal(t, "bob", users[1]["username"])
}
