package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Evowe/baseball-stats-api/internal/domain/feed"
	"github.com/Evowe/baseball-stats-api/internal/usecase"
)

type commentDTO struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type postDTO struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Username  string       `json:"username"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	LikeCount int          `json:"like_count"`
	Comments  []commentDTO `json:"comments"`
}

type feedPageDTO struct {
	Posts      []postDTO `json:"posts"`
	Page       int       `json:"page"`
	TotalPosts int       `json:"total_posts"`
	TotalPages int       `json:"total_pages"`
}

type createPostRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type likeStateDTO struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

func (h *Handler) ListFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFeed")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, fmt.Errorf("%w: page must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		page = parsed
	}

	feedPage, err := h.feedService.ListPosts(ctx, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "list feed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	posts := make([]postDTO, 0, len(feedPage.Posts))
	for _, post := range feedPage.Posts {
		posts = append(posts, toPostDTO(post))
	}
	writeSuccess(ctx, w, http.StatusOK, feedPageDTO{
		Posts:      posts,
		Page:       feedPage.Page,
		TotalPosts: feedPage.TotalPosts,
		TotalPages: feedPage.TotalPages,
	})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	var req createPostRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	post, err := h.feedService.CreatePost(ctx, principal, req.Content)
	if err != nil {
		h.logger.ErrorContext(ctx, "create post failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toPostDTO(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePost")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	postID, err := pathInt64(r, "postID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.feedService.DeletePost(ctx, principal, postID); err != nil {
		h.logger.ErrorContext(ctx, "delete post failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddComment")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	postID, err := pathInt64(r, "postID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createCommentRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comment, err := h.feedService.AddComment(ctx, principal, postID, req.Content)
	if err != nil {
		h.logger.ErrorContext(ctx, "add comment failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toCommentDTO(comment))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteComment")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	commentID, err := pathInt64(r, "commentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.feedService.DeleteComment(ctx, principal, commentID); err != nil {
		h.logger.ErrorContext(ctx, "delete comment failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleLike")
	defer span.End()

	if h.feedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: feed service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	postID, err := pathInt64(r, "postID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.feedService.ToggleLike(ctx, principal, postID)
	if err != nil {
		h.logger.ErrorContext(ctx, "toggle like failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, likeStateDTO{
		Liked:     state.Liked,
		LikeCount: state.LikeCount,
	})
}

func toPostDTO(post feed.Post) postDTO {
	comments := make([]commentDTO, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, toCommentDTO(comment))
	}
	return postDTO{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  post.Username,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		LikeCount: post.LikeCount,
		Comments:  comments,
	}
}

func toCommentDTO(comment feed.Comment) commentDTO {
	return commentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
