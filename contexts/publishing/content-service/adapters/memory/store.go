package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
)

// Store keeps posts, comments, and groups in process memory. It doubles as
// Clock and IDGenerator for in-memory module wiring, matching the postgres
// adapter surface.
type Store struct {
	mu sync.RWMutex

	postsByID    map[string]entities.Post
	postOrder    []string
	commentsByID map[string]entities.Comment
	commentOrder []string
	groupsByID   map[string]entities.Group
	groupOrder   []string
}

func NewStore(seedGroups []entities.Group) *Store {
	groups := make(map[string]entities.Group, len(seedGroups))
	order := make([]string, 0, len(seedGroups))
	for _, item := range seedGroups {
		groups[item.GroupID] = item
		order = append(order, item.GroupID)
	}
	return &Store{
		postsByID:    make(map[string]entities.Post),
		commentsByID: make(map[string]entities.Comment),
		groupsByID:   groups,
		groupOrder:   order,
	}
}

func (s *Store) CreatePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.postsByID[post.PostID]; exists {
		return domainerrors.ErrInvalidPostInput
	}
	s.postsByID[post.PostID] = post
	s.postOrder = append(s.postOrder, post.PostID)
	return nil
}

func (s *Store) GetPost(_ context.Context, postID string) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.postsByID[strings.TrimSpace(postID)]
	if !exists {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return item, nil
}

func (s *Store) ListPosts(_ context.Context, offset int, limit int) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.postOrder) {
		return []entities.Post{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(s.postOrder) {
		end = len(s.postOrder)
	}
	items := make([]entities.Post, 0, end-offset)
	for _, id := range s.postOrder[offset:end] {
		items = append(items, s.postsByID[id])
	}
	return items, nil
}

func (s *Store) CountPosts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postOrder), nil
}

func (s *Store) UpdatePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.postsByID[post.PostID]; !exists {
		return domainerrors.ErrPostNotFound
	}
	s.postsByID[post.PostID] = post
	return nil
}

func (s *Store) DeletePost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	postID = strings.TrimSpace(postID)
	if _, exists := s.postsByID[postID]; !exists {
		return domainerrors.ErrPostNotFound
	}
	delete(s.postsByID, postID)
	s.postOrder = removeID(s.postOrder, postID)

	// Comments do not outlive their parent post.
	kept := s.commentOrder[:0]
	for _, id := range s.commentOrder {
		if s.commentsByID[id].PostID == postID {
			delete(s.commentsByID, id)
			continue
		}
		kept = append(kept, id)
	}
	s.commentOrder = kept
	return nil
}

func (s *Store) CreateComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.commentsByID[comment.CommentID]; exists {
		return domainerrors.ErrInvalidCommentInput
	}
	s.commentsByID[comment.CommentID] = comment
	s.commentOrder = append(s.commentOrder, comment.CommentID)
	return nil
}

func (s *Store) GetComment(_ context.Context, commentID string) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.commentsByID[strings.TrimSpace(commentID)]
	if !exists {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return item, nil
}

func (s *Store) ListCommentsByPost(_ context.Context, postID string) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	postID = strings.TrimSpace(postID)
	items := make([]entities.Comment, 0)
	for _, id := range s.commentOrder {
		if item := s.commentsByID[id]; item.PostID == postID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) UpdateComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.commentsByID[comment.CommentID]; !exists {
		return domainerrors.ErrCommentNotFound
	}
	s.commentsByID[comment.CommentID] = comment
	return nil
}

func (s *Store) DeleteComment(_ context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	commentID = strings.TrimSpace(commentID)
	if _, exists := s.commentsByID[commentID]; !exists {
		return domainerrors.ErrCommentNotFound
	}
	delete(s.commentsByID, commentID)
	s.commentOrder = removeID(s.commentOrder, commentID)
	return nil
}

func (s *Store) GetGroup(_ context.Context, groupID string) (entities.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.groupsByID[strings.TrimSpace(groupID)]
	if !exists {
		return entities.Group{}, domainerrors.ErrGroupNotFound
	}
	return item, nil
}

func (s *Store) ListGroups(_ context.Context) ([]entities.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Group, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		items = append(items, s.groupsByID[id])
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func removeID(ids []string, target string) []string {
	kept := ids[:0]
	for _, id := range ids {
		if id != target {
			kept = append(kept, id)
		}
	}
	return kept
}
