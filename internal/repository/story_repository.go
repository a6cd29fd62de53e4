package repository

import (
	"slices"
	"strings"

	"mythos_backend/internal/model"
)

func (s *ContentStore) AllStories() []model.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stories.filter(nil)
}

func (s *ContentStore) FeaturedStories() []model.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stories.filter(func(st *model.Story) bool { return st.Featured })
}

func (s *ContentStore) StoryByID(id uint) (*model.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stories.get(id)
}

func (s *ContentStore) StoriesByCategory(category string) []model.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stories.filter(func(st *model.Story) bool {
		return strings.EqualFold(st.Category, category)
	})
}

// SearchStories matches query case-insensitively against title, summary,
// content and category.
func (s *ContentStore) SearchStories(query string) []model.Story {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stories.filter(func(st *model.Story) bool {
		return containsFold(st.Title, q) ||
			containsFold(st.Summary, q) ||
			containsFold(st.Content, q) ||
			containsFold(st.Category, q)
	})
}

func (s *ContentStore) CreateStory(in model.StoryInput) model.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stories.insert(func(id uint) model.Story {
		return model.Story{
			ID:       id,
			Title:    in.Title,
			Summary:  in.Summary,
			Content:  in.Content,
			ImageURL: in.ImageURL,
			Category: in.Category,
			Featured: in.Featured,
		}
	})
}

func (s *ContentStore) AllDeities() []model.Deity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deities.filter(nil)
}

func (s *ContentStore) DeityByID(id uint) (*model.Deity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deities.get(id)
}

func (s *ContentStore) CreateDeity(in model.DeityInput) model.Deity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deities.insert(func(id uint) model.Deity {
		return model.Deity{ID: id, Name: in.Name, Title: in.Title, ImageURL: in.ImageURL}
	})
}

func (s *ContentStore) AllEpics() []model.Epic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epics.filter(nil)
}

func (s *ContentStore) EpicByID(id uint) (*model.Epic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epics.get(id)
}

func (s *ContentStore) CreateEpic(in model.EpicInput) model.Epic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epics.insert(func(id uint) model.Epic {
		return model.Epic{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			Tags:        slices.Clone(in.Tags),
		}
	})
}

// RelatedStories returns the relations that start at storyID.
func (s *ContentStore) RelatedStories(storyID uint) []model.RelatedStory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.related.filter(func(r *model.RelatedStory) bool { return r.StoryID == storyID })
}

func (s *ContentStore) CreateRelatedStory(in model.RelatedStoryInput) model.RelatedStory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.related.insert(func(id uint) model.RelatedStory {
		return model.RelatedStory{
			ID:               id,
			StoryID:          in.StoryID,
			RelatedStoryID:   in.RelatedStoryID,
			RelationStrength: in.RelationStrength,
			RelationReason:   in.RelationReason,
		}
	})
}
