package service

import "errors"

// Error taxonomy shared across services. Handlers translate these to
// HTTP status codes: validation and bad-parent errors to 4xx, conflicts
// to 409, permission failures to 403.
var (
	ErrInvalidUsername  = errors.New("username contains invalid characters")
	ErrReservedUsername = errors.New("username 'me' is reserved")
	ErrInvalidSlug      = errors.New("slug contains invalid characters")
	ErrInvalidYear      = errors.New("release year cannot be in the future")
	ErrInvalidRole      = errors.New("unknown role")

	ErrUserConflict   = errors.New("username or email already in use")
	ErrSlugConflict   = errors.New("slug already in use")
	ErrReviewConflict = errors.New("title already reviewed by this author")

	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrTitleNotFound    = errors.New("title not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCommentNotFound  = errors.New("comment not found")

	ErrInvalidCode  = errors.New("invalid confirmation code")
	ErrInvalidToken = errors.New("invalid token")
	ErrMailDelivery = errors.New("confirmation mail delivery failed")

	ErrForbidden = errors.New("insufficient permissions")
)
