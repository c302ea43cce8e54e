// Package store is the durable CRUD surface behind the HTTP handlers:
// users, friendships keyed by their canonical pair id, and messages.
package store

import (
	"errors"
	"strings"

	"appakabar/backend/internal/models"
	"appakabar/backend/internal/pairid"
	apperrors "appakabar/backend/pkg/errors"

	"gorm.io/gorm"
)

// Store wraps the database handle with the domain queries.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindUserByUsername returns the user or ErrUserNotFound.
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to look up user", err)
	}
	return &user, nil
}

// CreateUser inserts a new user. The unique constraint on username turns a
// duplicate into ErrUsernameTaken, concurrent registrations included.
func (s *Store) CreateUser(username, passwordHash string) (*models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create user", err)
	}
	return &user, nil
}

// FriendshipExists checks both canonical orderings of the pair.
func (s *Store) FriendshipExists(userA, userB string) (bool, error) {
	idAB, err := pairid.Encode(userA, userB)
	if err != nil {
		return false, err
	}
	idBA, _ := pairid.Encode(userB, userA)

	var count int64
	if err := s.db.Model(&models.Friendship{}).
		Where("id IN ?", []string{idAB, idBA}).
		Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.CodeInternal, "failed to look up friendship", err)
	}
	return count > 0, nil
}

// AddFriendship stores the relationship under the id "requester_target".
// The check-then-insert sequence is not transactional; two concurrent adds
// for the same pair race and the primary key rejects the loser, which is
// reported as ErrFriendshipExists like any other duplicate.
func (s *Store) AddFriendship(requester, target string) (*models.Friendship, error) {
	id, err := pairid.Encode(requester, target)
	if err != nil {
		return nil, err
	}

	exists, err := s.FriendshipExists(requester, target)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrFriendshipExists
	}

	friendship := models.Friendship{ID: id}
	if err := s.db.Create(&friendship).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrFriendshipExists
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create friendship", err)
	}
	return &friendship, nil
}

// ListFriendships returns every friendship touching username, regardless of
// which side initiated it.
func (s *Store) ListFriendships(username string) ([]models.Friendship, error) {
	// The separator must be escaped: an unescaped "_" is a single-character
	// wildcard in SQL LIKE and would match ids of unrelated users.
	prefix := username + `\` + pairid.Separator + `%`
	suffix := `%` + `\` + pairid.Separator + username

	var friendships []models.Friendship
	if err := s.db.
		Where(`id LIKE ? ESCAPE '\'`, prefix).
		Or(`id LIKE ? ESCAPE '\'`, suffix).
		Order("created_at ASC").
		Find(&friendships).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list friendships", err)
	}
	return friendships, nil
}

// ListMessages returns the full conversation between two users in creation
// order. Every call re-reads the whole history; there is no cursor.
func (s *Store) ListMessages(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to list messages", err)
	}
	return messages, nil
}

// SendMessage appends one message. The body is stored as-is; sender and
// receiver existence is the caller's responsibility.
func (s *Store) SendMessage(sender, receiver, body string) (*models.Message, error) {
	if sender == receiver {
		return nil, apperrors.ErrSelfFriend
	}
	message := models.Message{
		Sender:   sender,
		Receiver: receiver,
		Body:     body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to store message", err)
	}
	return &message, nil
}

// isUniqueViolation matches the duplicate-key errors of the supported
// dialects. gorm normalizes most of them; the sqlite driver leaks its own
// message through, hence the string check.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
