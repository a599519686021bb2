package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fbrandt/pigeon/internal/handlers"
)

func APIEndpoints(
	r *gin.Engine,
	userH *handlers.UserHandler,
	conversationH *handlers.ConversationHandler,
	messageH *handlers.MessageHandler,
	wsH *handlers.WebSocketHandler,
) {
	r.GET("/users", userH.ListUsers)
	r.POST("/users", userH.CreateUser)

	conversations := r.Group("/conversations")
	{
		conversations.GET("", conversationH.ListConversations)
		conversations.POST("", conversationH.CreateConversation)
		conversations.GET("/:id", conversationH.GetConversation)
		conversations.GET("/:id/messages", messageH.ListMessages)
		conversations.POST("/:id/messages", messageH.CreateMessage)
	}

	// Global room
	r.GET("/messages", messageH.ListMessages)
	r.POST("/messages", messageH.CreateMessage)

	r.GET("/ws", wsH.HandleWebSocket)
}
