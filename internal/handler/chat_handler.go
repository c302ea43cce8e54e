package handler

import (
	"net/http"
	"time"

	"appakabar/backend/internal/auth"
	"appakabar/backend/internal/hub"
	"appakabar/backend/internal/models"
	"appakabar/backend/internal/pairid"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SendMessageInput defines the structure for sending a chat message.
type SendMessageInput struct {
	Body string `json:"body" binding:"required" example:"hi"`
}

// MessageResponse is one chat message.
type MessageResponse struct {
	ID        uint      `json:"id" example:"1"`
	Sender    string    `json:"sender" example:"alice"`
	Receiver  string    `json:"receiver" example:"bob"`
	Body      string    `json:"body" example:"hi"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse is the full history of one conversation.
type ConversationResponse struct {
	Data     []MessageResponse `json:"data"`
	Receiver string            `json:"receiver" example:"bob"`
}

func newMessageResponse(m models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// endregion

// GetChat godoc
// @Summary      Get a conversation
// @Description  Returns every message between the authenticated user and the peer encoded in the chat id, oldest first.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        chatID path string true "Conversation id, e.g. alice_bob"
// @Success      200  {object}  ConversationResponse
// @Failure      400  {object}  ErrorResponse "Malformed chat id or caller not a participant"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chats/{chatID} [get]
func GetChat(c *gin.Context) {
	username := auth.CurrentUser(c)
	chatID := c.Param("chatID")

	// Deriving the peer also proves the caller belongs to this conversation.
	receiver, err := pairid.OtherParticipant(chatID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	messages, err := relationships.ListMessages(username, receiver)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		data = append(data, newMessageResponse(m))
	}

	c.JSON(http.StatusOK, ConversationResponse{
		Data:     data,
		Receiver: receiver,
	})
}

// SendChatMessage godoc
// @Summary      Send a message
// @Description  Appends a message to the conversation and pings the peer's live connection, if any.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID path string true "Conversation id, e.g. alice_bob"
// @Param        input  body SendMessageInput true "Message body"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [post]
func SendChatMessage(c *gin.Context) {
	username := auth.CurrentUser(c)
	chatID := c.Param("chatID")

	receiver, err := pairid.OtherParticipant(chatID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := relationships.SendMessage(username, receiver, input.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	// Fire-and-forget: the peer re-fetches the conversation on "update".
	events.Notify(receiver, hub.UpdateEvent(username))

	c.JSON(http.StatusCreated, newMessageResponse(*message))
}
