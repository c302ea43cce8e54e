package pairid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appakabar/backend/pkg/errors"
)

func TestEncodeIsOrderPreserving(t *testing.T) {
	ab, err := Encode("alice", "bob")
	require.NoError(t, err)
	ba, err := Encode("bob", "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice_bob", ab)
	assert.Equal(t, "bob_alice", ba)
	assert.NotEqual(t, ab, ba)
}

func TestEncodeRejectsSelfPair(t *testing.T) {
	_, err := Encode("alice", "alice")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriend)
}

func TestMatchesIsSymmetric(t *testing.T) {
	ab, _ := Encode("alice", "bob")
	ba, _ := Encode("bob", "alice")

	assert.True(t, Matches(ab, "alice", "bob"))
	assert.True(t, Matches(ab, "bob", "alice"))
	assert.True(t, Matches(ba, "alice", "bob"))
	assert.True(t, Matches(ba, "bob", "alice"))

	assert.False(t, Matches(ab, "alice", "carol"))
	assert.False(t, Matches("alice_bob_extra", "alice", "bob"))
}

func TestOtherParticipant(t *testing.T) {
	id, _ := Encode("alice", "bob")

	other, err := OtherParticipant(id, "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", other)

	other, err = OtherParticipant(id, "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", other)
}

func TestOtherParticipantMalformed(t *testing.T) {
	cases := map[string]struct {
		id    string
		known string
	}{
		"unknown participant": {"alice_bob", "carol"},
		"self pair":           {"alice_alice", "alice"},
		"no separator":        {"alicebob", "alice"},
		"empty side":          {"alice_", "alice"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := OtherParticipant(tc.id, tc.known)
			assert.ErrorIs(t, err, apperrors.ErrMalformedPairID)
		})
	}
}

func TestParticipantPredicates(t *testing.T) {
	id, _ := Encode("alice", "bob")

	assert.True(t, StartsWithParticipant(id, "alice"))
	assert.False(t, StartsWithParticipant(id, "bob"))
	assert.True(t, EndsWithParticipant(id, "bob"))
	assert.False(t, EndsWithParticipant(id, "alice"))

	// Either predicate matching is the "touches this user" query.
	assert.False(t, StartsWithParticipant(id, "carol") || EndsWithParticipant(id, "carol"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername("Bob-2.0"))

	for _, bad := range []string{"", "ab", "with_underscore", "way.too.long.username.over.32.characters", "spa ce"} {
		assert.Error(t, ValidateUsername(bad), bad)
	}
}
