package repository

import (
	"slices"
	"strings"

	"mythos_backend/internal/model"
)

// UserProgressByStory returns the progress of a user through one story.
func (s *ContentStore) UserProgressByStory(userID, storyID uint) (*model.UserProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.progressIndex[progressKey{userID: userID, storyID: storyID}]
	if !ok {
		return nil, false
	}
	return s.progress.get(id)
}

// UserProgressOverview lists every progress record of a user.
func (s *ContentStore) UserProgressOverview(userID uint) []model.UserProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.filter(func(p *model.UserProgress) bool { return p.UserID == userID })
}

// CreateUserProgress stores a fresh record for the (user, story) pair. An
// existing record for the same pair is replaced, so there is never more
// than one.
func (s *ContentStore) CreateUserProgress(in model.UserProgressInput) model.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID: in.UserID, storyID: in.StoryID}
	if old, ok := s.progressIndex[key]; ok {
		s.progress.remove(old)
	}

	rec := s.progress.insert(func(id uint) model.UserProgress {
		now := s.now()
		p := model.UserProgress{
			ID:                   id,
			UserID:               in.UserID,
			StoryID:              in.StoryID,
			CurrentChapter:       1,
			AchievementsUnlocked: orEmpty(in.AchievementsUnlocked),
			LastAccessedAt:       now,
		}
		if in.Progress != nil {
			p.Progress = *in.Progress
		}
		if in.CurrentChapter != nil {
			p.CurrentChapter = *in.CurrentChapter
		}
		if p.Progress == model.ProgressComplete {
			p.CompletedAt = &now
		}
		return p
	})
	s.progressIndex[key] = rec.ID
	return rec
}

// UpdateUserProgress merges patch into the record of the pair. It does not
// create a missing record. CompletedAt is set only the first time Progress
// reaches 100, and completed reports whether this call set it.
func (s *ContentStore) UpdateUserProgress(userID, storyID uint, patch model.UserProgressPatch) (progress *model.UserProgress, completed, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.progressIndex[progressKey{userID: userID, storyID: storyID}]
	if !ok {
		return nil, false, false
	}
	progress, ok = s.progress.update(id, func(p *model.UserProgress) {
		now := s.now()
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		if patch.CurrentChapter != nil {
			p.CurrentChapter = *patch.CurrentChapter
		}
		if patch.AchievementsUnlocked != nil {
			p.AchievementsUnlocked = slices.Clone(patch.AchievementsUnlocked)
		}
		if p.Progress == model.ProgressComplete && p.CompletedAt == nil {
			p.CompletedAt = &now
			completed = true
		}
		p.LastAccessedAt = now
	})
	return progress, completed, ok
}

func (s *ContentStore) AllAchievements() []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.achievements.filter(nil)
}

func (s *ContentStore) AchievementsByCategory(category string) []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.achievements.filter(func(a *model.Achievement) bool {
		return strings.EqualFold(a.Category, category)
	})
}

func (s *ContentStore) AchievementByID(id uint) (*model.Achievement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.achievements.get(id)
}

func (s *ContentStore) CreateAchievement(in model.AchievementInput) model.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.achievements.insert(func(id uint) model.Achievement {
		return model.Achievement{
			ID:             id,
			Title:          in.Title,
			Description:    in.Description,
			ImageURL:       in.ImageURL,
			Category:       in.Category,
			RequiredPoints: in.RequiredPoints,
			IsSecret:       in.IsSecret,
			RelatedStoryID: in.RelatedStoryID,
		}
	})
}

// UserPointsTotal sums the ledger entries of a user.
func (s *ContentStore) UserPointsTotal(userID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sumPoints(func(p *model.UserPoints) bool { return p.UserID == userID })
}

// UserPointsByCategory sums the ledger entries of a user in one category.
func (s *ContentStore) UserPointsByCategory(userID uint, category string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sumPoints(func(p *model.UserPoints) bool {
		return p.UserID == userID && strings.EqualFold(p.Category, category)
	})
}

func (s *ContentStore) sumPoints(match func(*model.UserPoints) bool) int {
	total := 0
	for _, p := range s.points.filter(match) {
		total += p.Points
	}
	return total
}

// CreateUserPoints appends an entry to the ledger. Entries are never changed.
func (s *ContentStore) CreateUserPoints(in model.UserPointsInput) model.UserPoints {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points.insert(func(id uint) model.UserPoints {
		return model.UserPoints{
			ID:                id,
			UserID:            in.UserID,
			Points:            in.Points,
			Category:          in.Category,
			Source:            in.Source,
			RelatedEntityID:   in.RelatedEntityID,
			RelatedEntityType: in.RelatedEntityType,
			EarnedAt:          s.now(),
		}
	})
}
