package errors

var (
	// Domain errors — used in store/codec/handlers
	ErrUserNotFound      = NotFound("user not found")
	ErrUsernameTaken     = AlreadyExists("username already exists")
	ErrFriendshipExists  = AlreadyExists("friend already added")
	ErrSelfFriend        = InvalidArg("you cannot add yourself as a friend")
	ErrInvalidCredential = Unauthorized("invalid credentials")
	ErrMalformedPairID   = InvalidArg("malformed conversation id")
	ErrInvalidUsername   = InvalidArg("username must be 3-32 chars, letters, numbers, dots and dashes only")
)
