package store

import (
	"fmt"
	"testing"

	"appakabar/backend/internal/database"
	apperrors "appakabar/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// A named in-memory database: gorm's connection pool would get a fresh,
	// empty database per connection with a plain ":memory:" DSN.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return New(db)
}

func TestCreateAndFindUser(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateUser("alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	found, err := s.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash1", found.PasswordHash)
}

func TestFindUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindUserByUsername("carol")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("alice", "hash1")
	require.NoError(t, err)

	_, err = s.CreateUser("alice", "hash2")
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestAddFriendshipStoresRequesterFirst(t *testing.T) {
	s := newTestStore(t)

	friendship, err := s.AddFriendship("alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice_bob", friendship.ID)

	exists, err := s.FriendshipExists("alice", "bob")
	require.NoError(t, err)
	assert.True(t, exists)

	// Symmetric: the reversed lookup sees the same row.
	exists, err = s.FriendshipExists("bob", "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAddFriendshipDuplicateEitherOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddFriendship("alice", "bob")
	require.NoError(t, err)

	_, err = s.AddFriendship("alice", "bob")
	assert.ErrorIs(t, err, apperrors.ErrFriendshipExists)

	_, err = s.AddFriendship("bob", "alice")
	assert.ErrorIs(t, err, apperrors.ErrFriendshipExists)

	friendships, err := s.ListFriendships("alice")
	require.NoError(t, err)
	assert.Len(t, friendships, 1)
}

func TestAddFriendshipSelf(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddFriendship("alice", "alice")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriend)

	friendships, err := s.ListFriendships("alice")
	require.NoError(t, err)
	assert.Empty(t, friendships)
}

func TestListFriendshipsMatchesBothSides(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddFriendship("alice", "bob")
	require.NoError(t, err)
	_, err = s.AddFriendship("carol", "alice")
	require.NoError(t, err)
	_, err = s.AddFriendship("carol", "dave")
	require.NoError(t, err)

	friendships, err := s.ListFriendships("alice")
	require.NoError(t, err)

	ids := make([]string, len(friendships))
	for i, f := range friendships {
		ids[i] = f.ID
	}
	assert.ElementsMatch(t, []string{"alice_bob", "carol_alice"}, ids)

	// "bob" matches only via the suffix predicate.
	friendships, err = s.ListFriendships("bob")
	require.NoError(t, err)
	require.Len(t, friendships, 1)
	assert.Equal(t, "alice_bob", friendships[0].ID)
}

func TestConversationFlow(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("alice", "secret1")
	require.NoError(t, err)
	_, err = s.CreateUser("bob", "secret2")
	require.NoError(t, err)

	_, err = s.AddFriendship("alice", "bob")
	require.NoError(t, err)

	_, err = s.SendMessage("alice", "bob", "hi")
	require.NoError(t, err)
	_, err = s.SendMessage("bob", "alice", "hey")
	require.NoError(t, err)

	messages, err := s.ListMessages("alice", "bob")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "alice", messages[0].Sender)
	assert.Equal(t, "bob", messages[0].Receiver)
	assert.Equal(t, "hi", messages[0].Body)
	assert.Equal(t, "bob", messages[1].Sender)
	assert.Equal(t, "alice", messages[1].Receiver)
	assert.Equal(t, "hey", messages[1].Body)

	// Stable across repeated reads with no intervening writes.
	again, err := s.ListMessages("bob", "alice")
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, messages[0].ID, again[0].ID)
	assert.Equal(t, messages[1].ID, again[1].ID)
}

func TestListMessagesExcludesOtherConversations(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SendMessage("alice", "bob", "for bob")
	require.NoError(t, err)
	_, err = s.SendMessage("alice", "carol", "for carol")
	require.NoError(t, err)

	messages, err := s.ListMessages("alice", "bob")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for bob", messages[0].Body)
}

func TestSendMessageToSelf(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SendMessage("alice", "alice", "hello me")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriend)
}
