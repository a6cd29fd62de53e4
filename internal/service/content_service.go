package service

import (
	"strings"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

// ContentService serves stories, deities and epics.
type ContentService struct {
	Store *repository.ContentStore
}

func NewContentService(store *repository.ContentStore) *ContentService {
	return &ContentService{Store: store}
}

// SearchStories trims the query; an empty query matches nothing.
func (s *ContentService) SearchStories(query string) []model.Story {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Story{}
	}
	return s.Store.SearchStories(query)
}

// RelatedStories resolves every relation of storyID to its target story,
// one lookup per relation.
func (s *ContentService) RelatedStories(storyID uint) []model.RelatedStoryView {
	relations := s.Store.RelatedStories(storyID)
	views := make([]model.RelatedStoryView, 0, len(relations))
	for _, rel := range relations {
		view := model.RelatedStoryView{RelatedStory: rel}
		if story, ok := s.Store.StoryByID(rel.RelatedStoryID); ok {
			view.Story = story
		}
		views = append(views, view)
	}
	return views
}

func (s *ContentService) CreateRelatedStory(in model.RelatedStoryInput) model.RelatedStory {
	return s.Store.CreateRelatedStory(in)
}
