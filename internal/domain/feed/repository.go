package feed

import "context"

// Repository describes feed persistence needs from use cases. ListPosts
// returns newest-first pages plus the total post count.
type Repository interface {
	ListPosts(ctx context.Context, offset, limit int) ([]Post, int, error)
	GetPost(ctx context.Context, postID int64) (Post, bool, error)
	CreatePost(ctx context.Context, userID int64, content string) (Post, error)
	DeletePost(ctx context.Context, postID int64) error

	CreateComment(ctx context.Context, postID, userID int64, content string) (Comment, error)
	GetComment(ctx context.Context, commentID int64) (Comment, bool, error)
	DeleteComment(ctx context.Context, commentID int64) error

	HasLike(ctx context.Context, postID, userID int64) (bool, error)
	CreateLike(ctx context.Context, postID, userID int64) error
	DeleteLike(ctx context.Context, postID, userID int64) error
	CountLikes(ctx context.Context, postID int64) (int, error)
}
