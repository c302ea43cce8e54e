// Package pairid derives the canonical string address of an unordered pair
// of users. The same id is the friendship primary key and the conversation
// id clients put on the wire, so its exact byte layout is a contract:
// "requester_target", requester first, never reordered.
package pairid

import (
	"regexp"
	"strings"

	apperrors "appakabar/backend/pkg/errors"
)

// Separator joins the two usernames inside a pair id. Usernames must never
// contain it; ValidateUsername enforces that at registration time.
const Separator = "_"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9.-]{3,32}$`)

// ValidateUsername rejects usernames that could not round-trip through a
// pair id: the allowed set excludes the separator character.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return apperrors.ErrInvalidUsername
	}
	return nil
}

// Encode returns the canonical id for the pair, requester first. The two
// orderings encode to different strings; Matches treats them as equal.
func Encode(requester, target string) (string, error) {
	if requester == target {
		return "", apperrors.ErrSelfFriend
	}
	return requester + Separator + target, nil
}

// Matches reports whether id addresses the unordered pair {a, b}.
func Matches(id, a, b string) bool {
	return id == a+Separator+b || id == b+Separator+a
}

// OtherParticipant returns the participant of id that is not known.
// Fails if known appears on both sides or on neither, rather than
// silently picking a side.
func OtherParticipant(id, known string) (string, error) {
	left, right, ok := strings.Cut(id, Separator)
	if !ok || left == "" || right == "" {
		return "", apperrors.ErrMalformedPairID
	}
	switch known {
	case left:
		if right == known {
			return "", apperrors.ErrMalformedPairID
		}
		return right, nil
	case right:
		return left, nil
	default:
		return "", apperrors.ErrMalformedPairID
	}
}

// StartsWithParticipant reports whether username is the requester side of id.
func StartsWithParticipant(id, username string) bool {
	return strings.HasPrefix(id, username+Separator)
}

// EndsWithParticipant reports whether username is the target side of id.
func EndsWithParticipant(id, username string) bool {
	return strings.HasSuffix(id, Separator+username)
}
