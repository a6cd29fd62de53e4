package service

import (
	"context"
	"strconv"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

// ProgressService tracks reading progress, the points ledger and the
// achievements derived from it.
type ProgressService struct {
	Store     *repository.ContentStore
	Publisher ActivityPublisher
}

func NewProgressService(store *repository.ContentStore, publisher ActivityPublisher) *ProgressService {
	return &ProgressService{Store: store, Publisher: publisher}
}

func (s *ProgressService) StartProgress(ctx context.Context, in model.UserProgressInput) model.UserProgress {
	progress := s.Store.CreateUserProgress(in)
	if progress.Completed() {
		s.emitCompleted(ctx, progress)
	}
	return progress
}

// UpdateProgress merges patch into an existing record. It reports false when
// the user has not started the story.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID, storyID uint, patch model.UserProgressPatch) (*model.UserProgress, bool) {
	progress, completed, ok := s.Store.UpdateUserProgress(userID, storyID, patch)
	if !ok {
		return nil, false
	}
	if completed {
		s.emitCompleted(ctx, *progress)
	}
	return progress, true
}

func (s *ProgressService) emitCompleted(ctx context.Context, p model.UserProgress) {
	emit(ctx, s.Publisher, ActivityEvent{
		Type:       EventProgressCompleted,
		UserID:     p.UserID,
		EntityID:   p.StoryID,
		OccurredAt: *p.CompletedAt,
		Payload:    p,
	})
}

func (s *ProgressService) AwardPoints(ctx context.Context, in model.UserPointsInput) model.UserPoints {
	entry := s.Store.CreateUserPoints(in)
	emit(ctx, s.Publisher, ActivityEvent{
		Type:       EventPointsAwarded,
		UserID:     entry.UserID,
		EntityID:   entry.ID,
		OccurredAt: entry.EarnedAt,
		Payload:    entry,
	})
	return entry
}

// UserPoints is the body of the points endpoints. Category is set only for
// per-category totals.
type UserPoints struct {
	UserID   uint   `json:"userId"`
	Category string `json:"category,omitempty"`
	Points   int    `json:"points"`
}

func (s *ProgressService) TotalPoints(userID uint) UserPoints {
	return UserPoints{UserID: userID, Points: s.Store.UserPointsTotal(userID)}
}

func (s *ProgressService) CategoryPoints(userID uint, category string) UserPoints {
	return UserPoints{UserID: userID, Category: category, Points: s.Store.UserPointsByCategory(userID, category)}
}

// UserAchievements evaluates every achievement for a user. An achievement is
// unlocked when the user's point total reaches its threshold or when one of
// the user's progress records lists it. Secret achievements stay hidden
// until unlocked.
func (s *ProgressService) UserAchievements(userID uint) []model.AchievementStatus {
	points := s.Store.UserPointsTotal(userID)

	granted := make(map[uint]struct{})
	for _, p := range s.Store.UserProgressOverview(userID) {
		for _, raw := range p.AchievementsUnlocked {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				granted[uint(id)] = struct{}{}
			}
		}
	}

	achievements := s.Store.AllAchievements()
	out := make([]model.AchievementStatus, 0, len(achievements))
	for _, a := range achievements {
		_, listed := granted[a.ID]
		status := model.AchievementStatus{
			Achievement: a,
			Unlocked:    listed || points >= a.RequiredPoints,
			Percent:     percentOf(points, a.RequiredPoints),
		}
		if status.Unlocked {
			status.Percent = 100
		}
		if a.IsSecret && !status.Unlocked {
			continue
		}
		out = append(out, status)
	}
	return out
}

func percentOf(points, required int) int {
	if required <= 0 || points >= required {
		return 100
	}
	return points * 100 / required
}
