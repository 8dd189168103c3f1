package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	"github.com/Evowe/baseball-stats-api/internal/domain/batting"
	"github.com/Evowe/baseball-stats-api/internal/domain/feed"
	"github.com/Evowe/baseball-stats-api/internal/domain/fielding"
	"github.com/Evowe/baseball-stats-api/internal/domain/halloffame"
	"github.com/Evowe/baseball-stats-api/internal/domain/people"
	"github.com/Evowe/baseball-stats-api/internal/domain/pitching"
	"github.com/Evowe/baseball-stats-api/internal/domain/teams"
)

type stubPeopleRepository struct {
	players     map[string]people.Player
	suggestions []people.Suggestion
	suggestErr  error
	suggestHits int
}

func (s *stubPeopleRepository) GetByID(_ context.Context, playerID string) (people.Player, bool, error) {
	p, ok := s.players[playerID]
	return p, ok, nil
}

func (s *stubPeopleRepository) Suggest(context.Context, string, int) ([]people.Suggestion, error) {
	s.suggestHits++
	return s.suggestions, s.suggestErr
}

type stubTeamsRepository struct {
	suggestions []teams.Suggestion
	suggestErr  error
	suggestHits int
}

func (s *stubTeamsRepository) Suggest(context.Context, string, int) ([]teams.Suggestion, error) {
	s.suggestHits++
	return s.suggestions, s.suggestErr
}

type stubBattingRepository struct {
	teamLines   []batting.SeasonLine
	careerLines []batting.SeasonLine
	err         error
}

func (s *stubBattingRepository) ListByTeamSeason(context.Context, string, int) ([]batting.SeasonLine, error) {
	return s.teamLines, s.err
}

func (s *stubBattingRepository) ListCareer(context.Context, string) ([]batting.SeasonLine, error) {
	return s.careerLines, s.err
}

type stubPitchingRepository struct {
	teamLines   []pitching.SeasonLine
	careerLines []pitching.SeasonLine
	err         error
}

func (s *stubPitchingRepository) ListByTeamSeason(context.Context, string, int) ([]pitching.SeasonLine, error) {
	return s.teamLines, s.err
}

func (s *stubPitchingRepository) ListCareer(context.Context, string) ([]pitching.SeasonLine, error) {
	return s.careerLines, s.err
}

type stubFieldingRepository struct {
	teamLines   []fielding.SeasonLine
	careerLines []fielding.SeasonLine
	err         error
}

func (s *stubFieldingRepository) ListByTeamSeason(context.Context, string, int) ([]fielding.SeasonLine, error) {
	return s.teamLines, s.err
}

func (s *stubFieldingRepository) ListCareer(context.Context, string) ([]fielding.SeasonLine, error) {
	return s.careerLines, s.err
}

type stubHallOfFameRepository struct {
	inductions map[string]halloffame.Induction
}

func (s *stubHallOfFameRepository) GetInduction(_ context.Context, playerID string) (halloffame.Induction, bool, error) {
	ind, ok := s.inductions[playerID]
	return ind, ok, nil
}

type stubAccountRepository struct {
	nextID int64
	users  map[int64]account.User
}

func newStubAccountRepository() *stubAccountRepository {
	return &stubAccountRepository{users: make(map[int64]account.User)}
}

func (s *stubAccountRepository) Create(_ context.Context, user account.User) (account.User, error) {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

func (s *stubAccountRepository) GetByID(_ context.Context, userID int64) (account.User, bool, error) {
	u, ok := s.users[userID]
	return u, ok, nil
}

func (s *stubAccountRepository) GetByUsername(_ context.Context, username string) (account.User, bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return account.User{}, false, nil
}

func (s *stubAccountRepository) GetByEmail(_ context.Context, email string) (account.User, bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return account.User{}, false, nil
}

func (s *stubAccountRepository) List(context.Context) ([]account.User, error) {
	out := make([]account.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubAccountRepository) SetAdmin(_ context.Context, userID int64, isAdmin bool) error {
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("no such user")
	}
	u.IsAdmin = isAdmin
	s.users[userID] = u
	return nil
}

func (s *stubAccountRepository) Delete(_ context.Context, userID int64) error {
	delete(s.users, userID)
	return nil
}

type stubSessionManager struct {
	nextToken int
	sessions  map[string]account.Principal
}

func newStubSessionManager() *stubSessionManager {
	return &stubSessionManager{sessions: make(map[string]account.Principal)}
}

func (s *stubSessionManager) Issue(_ context.Context, principal account.Principal) string {
	s.nextToken++
	token := "token-" + strconv.Itoa(s.nextToken)
	s.sessions[token] = principal
	return token
}

func (s *stubSessionManager) Resolve(_ context.Context, token string) (account.Principal, bool) {
	p, ok := s.sessions[token]
	return p, ok
}

func (s *stubSessionManager) Revoke(_ context.Context, token string) {
	delete(s.sessions, token)
}

type stubFeedRepository struct {
	nextID   int64
	posts    map[int64]feed.Post
	comments map[int64]feed.Comment
	likes    map[string]bool
}

func newStubFeedRepository() *stubFeedRepository {
	return &stubFeedRepository{
		posts:    make(map[int64]feed.Post),
		comments: make(map[int64]feed.Comment),
		likes:    make(map[string]bool),
	}
}

func likeKey(postID, userID int64) string {
	return fmt.Sprintf("%d:%d", postID, userID)
}

func (s *stubFeedRepository) ListPosts(_ context.Context, offset, limit int) ([]feed.Post, int, error) {
	all := make([]feed.Post, 0, len(s.posts))
	for id := s.nextID; id >= 1; id-- {
		if p, ok := s.posts[id]; ok {
			all = append(all, p)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *stubFeedRepository) GetPost(_ context.Context, postID int64) (feed.Post, bool, error) {
	p, ok := s.posts[postID]
	return p, ok, nil
}

func (s *stubFeedRepository) CreatePost(_ context.Context, userID int64, content string) (feed.Post, error) {
	s.nextID++
	post := feed.Post{ID: s.nextID, UserID: userID, Content: content, CreatedAt: time.Now()}
	s.posts[post.ID] = post
	return post, nil
}

func (s *stubFeedRepository) DeletePost(_ context.Context, postID int64) error {
	delete(s.posts, postID)
	return nil
}

func (s *stubFeedRepository) CreateComment(_ context.Context, postID, userID int64, content string) (feed.Comment, error) {
	s.nextID++
	comment := feed.Comment{ID: s.nextID, PostID: postID, UserID: userID, Content: content, CreatedAt: time.Now()}
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *stubFeedRepository) GetComment(_ context.Context, commentID int64) (feed.Comment, bool, error) {
	c, ok := s.comments[commentID]
	return c, ok, nil
}

func (s *stubFeedRepository) DeleteComment(_ context.Context, commentID int64) error {
	delete(s.comments, commentID)
	return nil
}

func (s *stubFeedRepository) HasLike(_ context.Context, postID, userID int64) (bool, error) {
	return s.likes[likeKey(postID, userID)], nil
}

func (s *stubFeedRepository) CreateLike(_ context.Context, postID, userID int64) error {
	s.likes[likeKey(postID, userID)] = true
	return nil
}

func (s *stubFeedRepository) DeleteLike(_ context.Context, postID, userID int64) error {
	delete(s.likes, likeKey(postID, userID))
	return nil
}

func (s *stubFeedRepository) CountLikes(_ context.Context, postID int64) (int, error) {
	prefix := strconv.FormatInt(postID, 10) + ":"
	count := 0
	for key, liked := range s.likes {
		if liked && strings.HasPrefix(key, prefix) {
			count++
		}
	}
	return count, nil
}
