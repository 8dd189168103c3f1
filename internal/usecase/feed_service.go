package usecase

import (
	"context"
	"fmt"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	"github.com/Evowe/baseball-stats-api/internal/domain/feed"
)

// PostsPerPage is the feed page size.
const PostsPerPage = 10

// FeedPage is one page of the social feed.
type FeedPage struct {
	Posts      []feed.Post
	Page       int
	TotalPosts int
	TotalPages int
}

// LikeState is the result of toggling a like.
type LikeState struct {
	Liked     bool
	LikeCount int
}

type FeedService struct {
	feedRepo feed.Repository
}

func NewFeedService(feedRepo feed.Repository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

// ListPosts returns the requested page, newest first. Pages start at 1;
// out-of-range pages return an empty page rather than an error.
func (s *FeedService) ListPosts(ctx context.Context, page int) (FeedPage, error) {
	ctx, span := startUsecaseSpan(ctx, "FeedService.ListPosts")
	defer span.End()

	if page < 1 {
		page = 1
	}

	posts, total, err := s.feedRepo.ListPosts(ctx, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return FeedPage{}, fmt.Errorf("list posts: %w", err)
	}

	totalPages := (total + PostsPerPage - 1) / PostsPerPage
	return FeedPage{
		Posts:      notNil(posts),
		Page:       page,
		TotalPosts: total,
		TotalPages: totalPages,
	}, nil
}

func (s *FeedService) CreatePost(ctx context.Context, author account.Principal, content string) (feed.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "FeedService.CreatePost")
	defer span.End()

	if err := feed.ValidateContent(content); err != nil {
		return feed.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	post, err := s.feedRepo.CreatePost(ctx, author.UserID, content)
	if err != nil {
		return feed.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post. Only the author or an admin may delete.
func (s *FeedService) DeletePost(ctx context.Context, actor account.Principal, postID int64) error {
	ctx, span := startUsecaseSpan(ctx, "FeedService.DeletePost")
	defer span.End()

	post, exists, err := s.feedRepo.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: post=%d", ErrNotFound, postID)
	}
	if post.UserID != actor.UserID && !actor.IsAdmin {
		return fmt.Errorf("%w: not the post author", ErrForbidden)
	}

	if err := s.feedRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *FeedService) AddComment(ctx context.Context, author account.Principal, postID int64, content string) (feed.Comment, error) {
	ctx, span := startUsecaseSpan(ctx, "FeedService.AddComment")
	defer span.End()

	if err := feed.ValidateContent(content); err != nil {
		return feed.Comment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.feedRepo.GetPost(ctx, postID)
	if err != nil {
		return feed.Comment{}, fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return feed.Comment{}, fmt.Errorf("%w: post=%d", ErrNotFound, postID)
	}

	comment, err := s.feedRepo.CreateComment(ctx, postID, author.UserID, content)
	if err != nil {
		return feed.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author or an admin may
// delete.
func (s *FeedService) DeleteComment(ctx context.Context, actor account.Principal, commentID int64) error {
	ctx, span := startUsecaseSpan(ctx, "FeedService.DeleteComment")
	defer span.End()

	comment, exists, err := s.feedRepo.GetComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: comment=%d", ErrNotFound, commentID)
	}
	if comment.UserID != actor.UserID && !actor.IsAdmin {
		return fmt.Errorf("%w: not the comment author", ErrForbidden)
	}

	if err := s.feedRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// ToggleLike flips the actor's like on the post and reports the new
// state with the refreshed count.
func (s *FeedService) ToggleLike(ctx context.Context, actor account.Principal, postID int64) (LikeState, error) {
	ctx, span := startUsecaseSpan(ctx, "FeedService.ToggleLike")
	defer span.End()

	_, exists, err := s.feedRepo.GetPost(ctx, postID)
	if err != nil {
		return LikeState{}, fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return LikeState{}, fmt.Errorf("%w: post=%d", ErrNotFound, postID)
	}

	liked, err := s.feedRepo.HasLike(ctx, postID, actor.UserID)
	if err != nil {
		return LikeState{}, fmt.Errorf("get like: %w", err)
	}

	if liked {
		err = s.feedRepo.DeleteLike(ctx, postID, actor.UserID)
	} else {
		err = s.feedRepo.CreateLike(ctx, postID, actor.UserID)
	}
	if err != nil {
		return LikeState{}, fmt.Errorf("toggle like: %w", err)
	}

	count, err := s.feedRepo.CountLikes(ctx, postID)
	if err != nil {
		return LikeState{}, fmt.Errorf("count likes: %w", err)
	}

	return LikeState{Liked: !liked, LikeCount: count}, nil
}
