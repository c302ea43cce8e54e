package handler

import (
	"io"

	"appakabar/backend/internal/auth"
	"appakabar/backend/internal/hub"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// StreamEvents godoc
// @Summary      Subscribe to live events
// @Description  Server-sent-events stream. Attaching registers the user as online; events are best-effort "update" pings telling the client to re-fetch.
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string "event stream"
// @Failure      401  {object}  ErrorResponse
// @Router       /events [get]
func StreamEvents(c *gin.Context) {
	username := auth.CurrentUser(c)

	client := hub.NewClient()
	events.Register(username, client)
	defer events.Unregister(username, client)

	log.WithField("username", username).Info("event stream attached")
	defer log.WithField("username", username).Info("event stream detached")

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				// Replaced by a newer connection for the same user.
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
