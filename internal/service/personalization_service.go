package service

import (
	"context"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

// PersonalizationService covers preferences, interactions, recommendations
// and bookmarks.
type PersonalizationService struct {
	Store     *repository.ContentStore
	Publisher ActivityPublisher
}

func NewPersonalizationService(store *repository.ContentStore, publisher ActivityPublisher) *PersonalizationService {
	return &PersonalizationService{Store: store, Publisher: publisher}
}

// SavePreferences updates the user's preference record, creating it on first use.
func (s *PersonalizationService) SavePreferences(userID uint, in model.UserPreferenceInput) model.UserPreference {
	return s.Store.UpsertUserPreference(userID, in)
}

func (s *PersonalizationService) RecordInteraction(ctx context.Context, in model.StoryInteractionInput) model.StoryInteraction {
	interaction := s.Store.CreateStoryInteraction(in)
	emit(ctx, s.Publisher, ActivityEvent{
		Type:       EventInteractionRecorded,
		UserID:     interaction.UserID,
		EntityID:   interaction.StoryID,
		OccurredAt: interaction.Timestamp,
		Payload:    interaction,
	})
	return interaction
}

func (s *PersonalizationService) Recommendations(userID uint, limit int) []model.Story {
	return s.Store.RecommendedStories(userID, limit)
}

// UserProfile summarizes one reader.
type UserProfile struct {
	model.User
	Points           int `json:"points"`
	Bookmarks        int `json:"bookmarks"`
	StoriesStarted   int `json:"storiesStarted"`
	StoriesCompleted int `json:"storiesCompleted"`
}

func (s *PersonalizationService) Profile(userID uint) (*UserProfile, bool) {
	user, ok := s.Store.UserByID(userID)
	if !ok {
		return nil, false
	}

	profile := &UserProfile{
		User:      *user,
		Points:    s.Store.UserPointsTotal(userID),
		Bookmarks: len(s.Store.UserBookmarks(userID)),
	}
	for _, p := range s.Store.UserProgressOverview(userID) {
		profile.StoriesStarted++
		if p.Completed() {
			profile.StoriesCompleted++
		}
	}
	return profile, true
}
