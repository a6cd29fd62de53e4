package repository

import (
	"slices"
	"strings"
	"time"

	"mythos_backend/internal/model"
)

// DefaultRecommendationLimit applies when a caller passes a negative limit.
const DefaultRecommendationLimit = 5

func (s *ContentStore) UserByID(id uint) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

func (s *ContentStore) UserByUsername(username string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(func(u *model.User) bool { return u.Username == username })
}

func (s *ContentStore) CreateUser(in model.UserInput) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.insert(func(id uint) model.User {
		return model.User{ID: id, Username: in.Username}
	})
}

// UserPreferences returns the preference record of a user, if any.
func (s *ContentStore) UserPreferences(userID uint) (*model.UserPreference, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences.find(func(p *model.UserPreference) bool { return p.UserID == userID })
}

func (s *ContentStore) CreateUserPreference(in model.UserPreferenceInput) model.UserPreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPreference(in)
}

func (s *ContentStore) insertPreference(in model.UserPreferenceInput) model.UserPreference {
	return s.preferences.insert(func(id uint) model.UserPreference {
		return model.UserPreference{
			ID:                  id,
			UserID:              in.UserID,
			PreferredCategories: orEmpty(in.PreferredCategories),
			PreferenceTags:      orEmpty(in.PreferenceTags),
			LastUpdated:         s.now(),
		}
	})
}

// UpdateUserPreference replaces the lists present in patch and stamps LastUpdated.
func (s *ContentStore) UpdateUserPreference(id uint, patch model.UserPreferenceInput) (*model.UserPreference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences.update(id, func(p *model.UserPreference) {
		applyPreferencePatch(p, patch, s.now())
	})
}

func applyPreferencePatch(p *model.UserPreference, patch model.UserPreferenceInput, now time.Time) {
	if patch.PreferredCategories != nil {
		p.PreferredCategories = slices.Clone(patch.PreferredCategories)
	}
	if patch.PreferenceTags != nil {
		p.PreferenceTags = slices.Clone(patch.PreferenceTags)
	}
	p.LastUpdated = now
}

// UpsertUserPreference updates the user's preference record, or creates it
// when the user has none. Lookup and write happen under one lock.
func (s *ContentStore) UpsertUserPreference(userID uint, in model.UserPreferenceInput) model.UserPreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.UserID = userID
	if existing, ok := s.preferences.find(func(p *model.UserPreference) bool { return p.UserID == userID }); ok {
		if updated, ok := s.preferences.update(existing.ID, func(p *model.UserPreference) {
			applyPreferencePatch(p, in, s.now())
		}); ok {
			return *updated
		}
	}
	return s.insertPreference(in)
}

func (s *ContentStore) StoryInteractionsByUser(userID uint) []model.StoryInteraction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interactions.filter(func(i *model.StoryInteraction) bool { return i.UserID == userID })
}

func (s *ContentStore) StoryInteractionsByStory(storyID uint) []model.StoryInteraction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interactions.filter(func(i *model.StoryInteraction) bool { return i.StoryID == storyID })
}

func (s *ContentStore) CreateStoryInteraction(in model.StoryInteractionInput) model.StoryInteraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interactions.insert(func(id uint) model.StoryInteraction {
		return model.StoryInteraction{
			ID:              id,
			UserID:          in.UserID,
			StoryID:         in.StoryID,
			InteractionType: in.InteractionType,
			Timestamp:       s.now(),
		}
	})
}

// RecommendedStories returns up to limit stories the user has not interacted
// with yet. When the user has preferred categories, matching stories come
// first and the original order is kept within each group.
func (s *ContentStore) RecommendedStories(userID uint, limit int) []model.Story {
	if limit < 0 {
		limit = DefaultRecommendationLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, hasPrefs := s.preferences.find(func(p *model.UserPreference) bool { return p.UserID == userID })

	seen := make(map[uint]struct{})
	for _, i := range s.interactions.filter(func(i *model.StoryInteraction) bool { return i.UserID == userID }) {
		seen[i.StoryID] = struct{}{}
	}

	candidates := s.stories.filter(func(st *model.Story) bool {
		_, interacted := seen[st.ID]
		return !interacted
	})

	if hasPrefs && len(prefs.PreferredCategories) > 0 {
		preferred := func(st model.Story) bool {
			return slices.ContainsFunc(prefs.PreferredCategories, func(c string) bool {
				return strings.EqualFold(c, st.Category)
			})
		}
		slices.SortStableFunc(candidates, func(a, b model.Story) int {
			pa, pb := preferred(a), preferred(b)
			switch {
			case pa && !pb:
				return -1
			case !pa && pb:
				return 1
			}
			return 0
		})
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func (s *ContentStore) UserBookmarks(userID uint) []model.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks.filter(func(b *model.Bookmark) bool { return b.UserID == userID })
}

func (s *ContentStore) CreateBookmark(in model.BookmarkInput) model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarks.insert(func(id uint) model.Bookmark {
		return model.Bookmark{
			ID:        id,
			UserID:    in.UserID,
			StoryID:   in.StoryID,
			Notes:     in.Notes,
			CreatedAt: s.now(),
		}
	})
}

// DeleteBookmark reports whether a bookmark was removed.
func (s *ContentStore) DeleteBookmark(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarks.remove(id)
}
