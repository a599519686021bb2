package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fbrandt/pigeon/internal/broadcast"
	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/handlers"
	"github.com/fbrandt/pigeon/internal/models"
)

type testServer struct {
	router *gin.Engine
	db     *database.Database
	hub    *broadcast.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}))

	db := database.NewDatabase(gormDB)

	hub := broadcast.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	notifier := handlers.NewNotifier(hub)
	userH := handlers.NewUserHandler(db)
	conversationH := handlers.NewConversationHandler(db)
	messageH := handlers.NewMessageHandler(db, notifier)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.New()
	router.GET("/users", userH.ListUsers)
	router.POST("/users", userH.CreateUser)
	router.GET("/conversations", conversationH.ListConversations)
	router.POST("/conversations", conversationH.CreateConversation)
	router.GET("/conversations/:id", conversationH.GetConversation)
	router.GET("/conversations/:id/messages", messageH.ListMessages)
	router.POST("/conversations/:id/messages", messageH.CreateMessage)
	router.GET("/messages", messageH.ListMessages)
	router.POST("/messages", messageH.CreateMessage)
	router.GET("/ws", wsH.HandleWebSocket)

	return &testServer{router: router, db: db, hub: hub}
}

func (s *testServer) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createUser(t *testing.T, username string) uint {
	t.Helper()

	w := s.request(t, http.MethodPost, "/users", `{"user":{"username":"`+username+`"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.ID
}

// subscriber binds a bare hub client to a topic, standing in for a live
// websocket connection.
func (s *testServer) subscriber(topic string) *broadcast.Client {
	client := broadcast.NewClient(s.hub, nil)
	s.hub.Subscribe(client, topic)
	return client
}

func receiveEvent(t *testing.T, client *broadcast.Client) broadcast.Event {
	t.Helper()

	select {
	case payload := <-client.Send:
		var event broadcast.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("expected an event, got none")
		return broadcast.Event{}
	}
}

func assertNoEvent(t *testing.T, client *broadcast.Client) {
	t.Helper()

	select {
	case payload := <-client.Send:
		t.Fatalf("expected no event, got %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}
