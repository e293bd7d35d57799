package errors

import "errors"

var (
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidFollowInput = errors.New("following username is required")
)
