package service

import (
	"context"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

type CommunityService struct {
	Store     *repository.ContentStore
	Publisher ActivityPublisher
}

func NewCommunityService(store *repository.ContentStore, publisher ActivityPublisher) *CommunityService {
	return &CommunityService{Store: store, Publisher: publisher}
}

// ViewThread returns the thread after counting the view. found is false for
// an unknown id; err is set only when the view could not be counted.
func (s *CommunityService) ViewThread(id uint) (thread *model.DiscussionThread, found bool, err error) {
	if _, ok := s.Store.ThreadByID(id); !ok {
		return nil, false, nil
	}
	thread, err = s.Store.IncrementThreadViewCount(id)
	if err != nil {
		return nil, true, err
	}
	return thread, true, nil
}

func (s *CommunityService) CreateForum(in model.DiscussionForumInput) model.DiscussionForum {
	return s.Store.CreateForum(in)
}

func (s *CommunityService) CreateThread(ctx context.Context, in model.DiscussionThreadInput) model.DiscussionThread {
	thread := s.Store.CreateThread(in)
	emit(ctx, s.Publisher, ActivityEvent{
		Type:       EventThreadCreated,
		UserID:     thread.UserID,
		EntityID:   thread.ID,
		OccurredAt: thread.CreatedAt,
		Payload:    thread,
	})
	return thread
}

func (s *CommunityService) CreateComment(ctx context.Context, in model.DiscussionCommentInput) model.DiscussionComment {
	comment := s.Store.CreateComment(in)
	emit(ctx, s.Publisher, ActivityEvent{
		Type:       EventCommentCreated,
		UserID:     comment.UserID,
		EntityID:   comment.ID,
		OccurredAt: comment.CreatedAt,
		Payload:    comment,
	})
	return comment
}
