package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Evowe/baseball-stats-api/internal/domain/feed"
	qb "github.com/Evowe/baseball-stats-api/internal/platform/querybuilder"
)

type FeedRepository struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

type postTableModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	LikeCount int       `db:"like_count"`
}

type commentTableModel struct {
	ID        int64     `db:"id"`
	PostID    int64     `db:"post_id"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (m postTableModel) toDomain() feed.Post {
	return feed.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		LikeCount: m.LikeCount,
	}
}

func (m commentTableModel) toDomain() feed.Comment {
	return feed.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

var postColumns = []string{
	"po.id AS id",
	"po.user_id AS user_id",
	"u.username AS username",
	"po.content AS content",
	"po.created_at AS created_at",
	"(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = po.id) AS like_count",
}

// ListPosts returns one newest-first page of posts with their comments
// attached, plus the total post count for pagination.
func (r *FeedRepository) ListPosts(ctx context.Context, offset, limit int) ([]feed.Post, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM posts"); err != nil {
		return nil, 0, errors.Wrap(err, "count posts")
	}

	query, args, err := qb.Select(postColumns...).
		From("posts po").
		Join("users u ON po.user_id = u.id").
		OrderBy("po.created_at DESC", "po.id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build list posts query")
	}

	var rows []postTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, errors.Wrap(err, "select posts")
	}

	posts := make([]feed.Post, 0, len(rows))
	postIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
		postIDs = append(postIDs, row.ID)
	}

	if err := r.attachComments(ctx, posts, postIDs); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *FeedRepository) attachComments(ctx context.Context, posts []feed.Post, postIDs []int64) error {
	if len(postIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		SELECT c.id AS id, c.post_id AS post_id, c.user_id AS user_id,
		       u.username AS username, c.content AS content, c.created_at AS created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id IN (?)
		ORDER BY c.created_at ASC, c.id ASC`, postIDs)
	if err != nil {
		return errors.Wrap(err, "build comments query")
	}

	var rows []commentTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "select comments")
	}

	byPost := make(map[int64][]feed.Comment, len(posts))
	for _, row := range rows {
		byPost[row.PostID] = append(byPost[row.PostID], row.toDomain())
	}
	for i := range posts {
		posts[i].Comments = byPost[posts[i].ID]
	}
	return nil
}

func (r *FeedRepository) GetPost(ctx context.Context, postID int64) (feed.Post, bool, error) {
	query, args, err := qb.Select(postColumns...).
		From("posts po").
		Join("users u ON po.user_id = u.id").
		Where(qb.Eq("po.id", postID)).
		ToSQL()
	if err != nil {
		return feed.Post{}, false, errors.Wrap(err, "build get post query")
	}

	var row postTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return feed.Post{}, false, nil
		}
		return feed.Post{}, false, errors.Wrap(err, "select post")
	}

	posts := []feed.Post{row.toDomain()}
	if err := r.attachComments(ctx, posts, []int64{row.ID}); err != nil {
		return feed.Post{}, false, err
	}
	return posts[0], true, nil
}

func (r *FeedRepository) CreatePost(ctx context.Context, userID int64, content string) (feed.Post, error) {
	query, args, err := qb.InsertInto("posts").
		Columns("user_id", "content").
		Values(userID, content).
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		return feed.Post{}, errors.Wrap(err, "build insert post query")
	}

	var inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &inserted, query, args...); err != nil {
		return feed.Post{}, errors.Wrap(err, "insert post")
	}

	post, _, err := r.GetPost(ctx, inserted.ID)
	return post, err
}

// DeletePost relies on ON DELETE CASCADE for the post's comments and
// likes.
func (r *FeedRepository) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := qb.DeleteFrom("posts").
		Where(qb.Eq("id", postID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete post query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete post")
	}
	return nil
}

func (r *FeedRepository) CreateComment(ctx context.Context, postID, userID int64, content string) (feed.Comment, error) {
	query, args, err := qb.InsertInto("comments").
		Columns("post_id", "user_id", "content").
		Values(postID, userID, content).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return feed.Comment{}, errors.Wrap(err, "build insert comment query")
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return feed.Comment{}, errors.Wrap(err, "insert comment")
	}

	comment, _, err := r.GetComment(ctx, id)
	return comment, err
}

func (r *FeedRepository) GetComment(ctx context.Context, commentID int64) (feed.Comment, bool, error) {
	query, args, err := qb.Select(
		"c.id AS id",
		"c.post_id AS post_id",
		"c.user_id AS user_id",
		"u.username AS username",
		"c.content AS content",
		"c.created_at AS created_at",
	).From("comments c").
		Join("users u ON c.user_id = u.id").
		Where(qb.Eq("c.id", commentID)).
		ToSQL()
	if err != nil {
		return feed.Comment{}, false, errors.Wrap(err, "build get comment query")
	}

	var row commentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return feed.Comment{}, false, nil
		}
		return feed.Comment{}, false, errors.Wrap(err, "select comment")
	}
	return row.toDomain(), true, nil
}

func (r *FeedRepository) DeleteComment(ctx context.Context, commentID int64) error {
	query, args, err := qb.DeleteFrom("comments").
		Where(qb.Eq("id", commentID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete comment query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete comment")
	}
	return nil
}

func (r *FeedRepository) HasLike(ctx context.Context, postID, userID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("post_likes").
		Where(qb.Eq("post_id", postID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build has like query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, errors.Wrap(err, "select like")
	}
	return count > 0, nil
}

func (r *FeedRepository) CreateLike(ctx context.Context, postID, userID int64) error {
	query, args, err := qb.InsertInto("post_likes").
		Columns("post_id", "user_id").
		Values(postID, userID).
		Suffix("ON CONFLICT (post_id, user_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert like query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert like")
	}
	return nil
}

func (r *FeedRepository) DeleteLike(ctx context.Context, postID, userID int64) error {
	query, args, err := qb.DeleteFrom("post_likes").
		Where(qb.Eq("post_id", postID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete like query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete like")
	}
	return nil
}

func (r *FeedRepository) CountLikes(ctx context.Context, postID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("post_likes").
		Where(qb.Eq("post_id", postID)).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count likes query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count likes")
	}
	return count, nil
}
