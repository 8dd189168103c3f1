package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
)

var (
	alice = account.Principal{UserID: 1, Username: "alice"}
	bob   = account.Principal{UserID: 2, Username: "bob"}
	root  = account.Principal{UserID: 99, Username: "root", IsAdmin: true}
)

func TestFeedService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	service := NewFeedService(newStubFeedRepository())
	ctx := context.Background()

	if _, err := service.CreatePost(ctx, alice, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank content, got %v", err)
	}
	if _, err := service.CreatePost(ctx, alice, strings.Repeat("x", 501)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized content, got %v", err)
	}

	post, err := service.CreatePost(ctx, alice, strings.Repeat("x", 500))
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}
	if post.UserID != alice.UserID {
		t.Fatalf("unexpected author: %d", post.UserID)
	}
}

func TestFeedService_ListPosts_Pagination(t *testing.T) {
	t.Parallel()

	repo := newStubFeedRepository()
	service := NewFeedService(repo)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := service.CreatePost(ctx, alice, "post"); err != nil {
			t.Fatalf("CreatePost error: %v", err)
		}
	}

	page, err := service.ListPosts(ctx, 1)
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if len(page.Posts) != PostsPerPage || page.TotalPosts != 25 || page.TotalPages != 3 {
		t.Fatalf("unexpected page: %d posts, total=%d pages=%d", len(page.Posts), page.TotalPosts, page.TotalPages)
	}

	page, err = service.ListPosts(ctx, 3)
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if len(page.Posts) != 5 {
		t.Fatalf("unexpected last page size: %d", len(page.Posts))
	}

	page, err = service.ListPosts(ctx, 10)
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if len(page.Posts) != 0 || page.Posts == nil {
		t.Fatalf("out-of-range page should be empty, not nil: %v", page.Posts)
	}

	page, err = service.ListPosts(ctx, 0)
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page should clamp to 1, got %d", page.Page)
	}
}

func TestFeedService_DeletePost_Authorization(t *testing.T) {
	t.Parallel()

	repo := newStubFeedRepository()
	service := NewFeedService(repo)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, alice, "mine")
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}

	if err := service.DeletePost(ctx, bob, post.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	if err := service.DeletePost(ctx, root, post.ID); err != nil {
		t.Fatalf("admin delete error: %v", err)
	}
	if err := service.DeletePost(ctx, alice, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted post, got %v", err)
	}
}

func TestFeedService_Comments(t *testing.T) {
	t.Parallel()

	repo := newStubFeedRepository()
	service := NewFeedService(repo)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, alice, "hello")
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}

	if _, err := service.AddComment(ctx, bob, post.ID+100, "hi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing post, got %v", err)
	}

	comment, err := service.AddComment(ctx, bob, post.ID, "hi")
	if err != nil {
		t.Fatalf("AddComment error: %v", err)
	}

	if err := service.DeleteComment(ctx, alice, comment.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	if err := service.DeleteComment(ctx, bob, comment.ID); err != nil {
		t.Fatalf("author delete error: %v", err)
	}
}

func TestFeedService_ToggleLike(t *testing.T) {
	t.Parallel()

	repo := newStubFeedRepository()
	service := NewFeedService(repo)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, alice, "like me")
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}

	state, err := service.ToggleLike(ctx, bob, post.ID)
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if !state.Liked || state.LikeCount != 1 {
		t.Fatalf("unexpected state after like: %+v", state)
	}

	state, err = service.ToggleLike(ctx, bob, post.ID)
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if state.Liked || state.LikeCount != 0 {
		t.Fatalf("unexpected state after unlike: %+v", state)
	}

	if _, err := service.ToggleLike(ctx, bob, post.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing post, got %v", err)
	}
}
