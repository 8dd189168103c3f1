package feed

import (
	"fmt"
	"strings"
	"time"
)

// MaxContentLength caps post and comment bodies.
const MaxContentLength = 500

// Post is a short text update on the social feed.
type Post struct {
	ID        int64
	UserID    int64
	Username  string
	Content   string
	CreatedAt time.Time
	LikeCount int
	Comments  []Comment
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Username  string
	Content   string
	CreatedAt time.Time
}

func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("content is required")
	}
	if len(trimmed) > MaxContentLength {
		return fmt.Errorf("content exceeds %d characters", MaxContentLength)
	}
	return nil
}
