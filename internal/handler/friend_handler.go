package handler

import (
	"net/http"
	"time"

	"appakabar/backend/internal/auth"
	"appakabar/backend/internal/hub"
	"appakabar/backend/internal/pairid"
	apperrors "appakabar/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// region --- DTOs ---

// AddFriendInput defines the structure for adding a friend.
type AddFriendInput struct {
	FriendUsername string `json:"friend_username" binding:"required" example:"bob"`
}

// PublicUserResponse defines a user's public profile.
type PublicUserResponse struct {
	Username  string `json:"username" example:"bob"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ContactResponse is one entry of the contact list. ChatID is the canonical
// pair id and doubles as the conversation address.
type ContactResponse struct {
	ChatID    string    `json:"chat_id" example:"alice_bob"`
	Friend    string    `json:"friend" example:"bob"`
	CreatedAt time.Time `json:"created_at"`
}

// endregion

// FindFriend godoc
// @Summary      Find a user to add
// @Description  Looks up a user by exact username before sending them a friend add.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        username query string true "Username to look up"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse "Looking up yourself"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /friends/search [get]
func FindFriend(c *gin.Context) {
	username := auth.CurrentUser(c)
	findUsername := c.Query("username")

	if findUsername == username {
		respondError(c, apperrors.ErrSelfFriend)
		return
	}

	friend, err := relationships.FindUserByUsername(findUsername)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PublicUserResponse{
		Username:  friend.Username,
		AvatarURL: friend.AvatarURL,
	})
}

// AddFriend godoc
// @Summary      Add a friend
// @Description  Creates a mutual friendship with another user. There is no pending state; adding is immediate.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddFriendInput true "Friend to add"
// @Success      201  {object}  ContactResponse
// @Failure      400  {object}  ErrorResponse "Adding yourself"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Friend already added"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends [post]
func AddFriend(c *gin.Context) {
	username := auth.CurrentUser(c)

	var input AddFriendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := relationships.FindUserByUsername(input.FriendUsername); err != nil {
		respondError(c, err)
		return
	}

	friendship, err := relationships.AddFriendship(username, input.FriendUsername)
	if err != nil {
		respondError(c, err)
		return
	}

	// Best effort: tell the new friend to refresh their contact list.
	events.Notify(input.FriendUsername, hub.UpdateEvent(username))

	c.JSON(http.StatusCreated, ContactResponse{
		ChatID:    friendship.ID,
		Friend:    input.FriendUsername,
		CreatedAt: friendship.CreatedAt,
	})
}

// GetContacts godoc
// @Summary      List contacts
// @Description  Lists every friendship of the authenticated user, whichever side initiated it.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ContactResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends [get]
func GetContacts(c *gin.Context) {
	username := auth.CurrentUser(c)

	friendships, err := relationships.ListFriendships(username)
	if err != nil {
		respondError(c, err)
		return
	}

	contacts := make([]ContactResponse, 0, len(friendships))
	for _, f := range friendships {
		friend, err := pairid.OtherParticipant(f.ID, username)
		if err != nil {
			// A row the predicates matched but the codec cannot split
			// would mean corrupt data; skip it rather than fail the list.
			log.WithField("id", f.ID).Warn("skipping unparsable friendship id")
			continue
		}
		contacts = append(contacts, ContactResponse{
			ChatID:    f.ID,
			Friend:    friend,
			CreatedAt: f.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, contacts)
}
