package repository

import (
	"fmt"
	"strings"

	"mythos_backend/internal/model"
)

func (s *ContentStore) AllForums() []model.DiscussionForum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forums.filter(nil)
}

func (s *ContentStore) ForumByID(id uint) (*model.DiscussionForum, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forums.get(id)
}

func (s *ContentStore) ForumsByCategory(category string) []model.DiscussionForum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forums.filter(func(f *model.DiscussionForum) bool {
		return strings.EqualFold(f.Category, category)
	})
}

func (s *ContentStore) CreateForum(in model.DiscussionForumInput) model.DiscussionForum {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forums.insert(func(id uint) model.DiscussionForum {
		forum := model.DiscussionForum{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			ImageURL:    in.ImageURL,
			IsActive:    true,
		}
		if in.IsActive != nil {
			forum.IsActive = *in.IsActive
		}
		forum.Touch(s.now())
		return forum
	})
}

func (s *ContentStore) ThreadsByForumID(forumID uint) []model.DiscussionThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads.filter(func(t *model.DiscussionThread) bool { return t.ForumID == forumID })
}

func (s *ContentStore) ThreadByID(id uint) (*model.DiscussionThread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads.get(id)
}

func (s *ContentStore) ThreadsByUser(userID uint) []model.DiscussionThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads.filter(func(t *model.DiscussionThread) bool { return t.UserID == userID })
}

func (s *ContentStore) CreateThread(in model.DiscussionThreadInput) model.DiscussionThread {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threads.insert(func(id uint) model.DiscussionThread {
		now := s.now()
		thread := model.DiscussionThread{
			ID:             id,
			ForumID:        in.ForumID,
			UserID:         in.UserID,
			Title:          in.Title,
			Content:        in.Content,
			IsPinned:       in.IsPinned,
			LastActivityAt: now,
		}
		thread.Touch(now)
		return thread
	})
}

// IncrementThreadViewCount adds one view and returns the updated thread.
// It fails with ErrThreadNotFound for an unknown id.
func (s *ContentStore) IncrementThreadViewCount(id uint) (*model.DiscussionThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread, ok := s.threads.update(id, func(t *model.DiscussionThread) {
		t.ViewCount++
	})
	if !ok {
		return nil, fmt.Errorf("increment view count of thread %d: %w", id, ErrThreadNotFound)
	}
	return thread, nil
}

func (s *ContentStore) CommentsByThreadID(threadID uint) []model.DiscussionComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comments.filter(func(c *model.DiscussionComment) bool { return c.ThreadID == threadID })
}

func (s *ContentStore) CommentsByUser(userID uint) []model.DiscussionComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comments.filter(func(c *model.DiscussionComment) bool { return c.UserID == userID })
}

// CommentReplies returns the direct replies to a comment.
func (s *ContentStore) CommentReplies(commentID uint) []model.DiscussionComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comments.filter(func(c *model.DiscussionComment) bool {
		return c.ParentCommentID != nil && *c.ParentCommentID == commentID
	})
}

// CreateComment stores the comment and moves the parent thread's activity
// timestamps to the comment's creation time.
func (s *ContentStore) CreateComment(in model.DiscussionCommentInput) model.DiscussionComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	comment := s.comments.insert(func(id uint) model.DiscussionComment {
		c := model.DiscussionComment{
			ID:              id,
			ThreadID:        in.ThreadID,
			UserID:          in.UserID,
			Content:         in.Content,
			ParentCommentID: in.ParentCommentID,
		}
		c.Touch(now)
		return c
	})

	s.threads.update(in.ThreadID, func(t *model.DiscussionThread) {
		t.LastActivityAt = now
		t.UpdatedAt = now
	})
	return comment
}
