package errors

import "errors"

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrUnknownGroup        = errors.New("post references an unknown group")
	ErrNotAuthor           = errors.New("only the author may modify this resource")
	ErrInvalidPostInput    = errors.New("post text is required")
	ErrInvalidCommentInput = errors.New("comment text is required")
	ErrPageNotFound        = errors.New("page not found")
)
