package repository

import (
	"maps"
	"slices"
	"strings"

	"mythos_backend/internal/model"
)

func (s *ContentStore) AllGlossaryTerms() []model.GlossaryTerm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.glossary.filter(nil)
}

// GlossaryTermsByCategory matches the category exactly.
func (s *ContentStore) GlossaryTermsByCategory(category string) []model.GlossaryTerm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.glossary.filter(func(g *model.GlossaryTerm) bool {
		return g.Category != nil && *g.Category == category
	})
}

// GlossaryTermByTerm looks a term up ignoring case.
func (s *ContentStore) GlossaryTermByTerm(term string) (*model.GlossaryTerm, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.glossary.find(func(g *model.GlossaryTerm) bool { return strings.EqualFold(g.Term, term) })
}

func (s *ContentStore) CreateGlossaryTerm(in model.GlossaryTermInput) model.GlossaryTerm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.glossary.insert(func(id uint) model.GlossaryTerm {
		return model.GlossaryTerm{
			ID:           id,
			Term:         in.Term,
			Definition:   in.Definition,
			Category:     in.Category,
			RelatedTerms: slices.Clone(in.RelatedTerms),
		}
	})
}

// CharacterRelationships returns the relationships on either side of a character.
func (s *ContentStore) CharacterRelationships(characterID uint) []model.CharacterRelationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.characters.filter(func(r *model.CharacterRelationship) bool {
		return r.Character1ID == characterID || r.Character2ID == characterID
	})
}

func (s *ContentStore) CreateCharacterRelationship(in model.CharacterRelationshipInput) model.CharacterRelationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.characters.insert(func(id uint) model.CharacterRelationship {
		return model.CharacterRelationship{
			ID:               id,
			Character1ID:     in.Character1ID,
			Character2ID:     in.Character2ID,
			RelationshipType: in.RelationshipType,
			Description:      in.Description,
		}
	})
}

func (s *ContentStore) StoryElements(storyID uint) []model.StoryElement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elements.filter(func(e *model.StoryElement) bool { return e.StoryID == storyID })
}

func (s *ContentStore) CreateStoryElement(in model.StoryElementInput) model.StoryElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elements.insert(func(id uint) model.StoryElement {
		position := maps.Clone(in.Position)
		if position == nil {
			position = map[string]any{}
		}
		return model.StoryElement{
			ID:          id,
			StoryID:     in.StoryID,
			ElementType: in.ElementType,
			ElementName: in.ElementName,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			Position:    position,
		}
	})
}

func (s *ContentStore) AudioAssetsByType(assetType string) []model.AudioAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audio.filter(func(a *model.AudioAsset) bool { return a.Type == assetType })
}

func (s *ContentStore) AudioAssetsByMood(mood string) []model.AudioAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audio.filter(func(a *model.AudioAsset) bool { return a.Mood != nil && *a.Mood == mood })
}

func (s *ContentStore) CreateAudioAsset(in model.AudioAssetInput) model.AudioAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audio.insert(func(id uint) model.AudioAsset {
		return model.AudioAsset{
			ID:       id,
			Title:    in.Title,
			URL:      in.URL,
			Type:     in.Type,
			Duration: in.Duration,
			Mood:     in.Mood,
		}
	})
}
