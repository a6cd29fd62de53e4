package repository

import (
	"strings"

	"mythos_backend/internal/model"
)

// VRModels lists the models of an entity type. A zero entityID matches every
// entity of that type.
func (s *ContentStore) VRModels(entityType string, entityID uint) []model.VRModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrModels.filter(func(m *model.VRModel) bool {
		if m.EntityType != entityType {
			return false
		}
		return entityID == 0 || m.AssociatedEntityID == entityID
	})
}

func (s *ContentStore) VRModelByID(id uint) (*model.VRModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrModels.get(id)
}

func (s *ContentStore) CreateVRModel(in model.VRModelInput) model.VRModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vrModels.insert(func(id uint) model.VRModel {
		return model.VRModel{
			ID:                 id,
			Title:              in.Title,
			ModelURL:           in.ModelURL,
			ThumbnailURL:       in.ThumbnailURL,
			Description:        in.Description,
			AssociatedEntityID: in.AssociatedEntityID,
			EntityType:         in.EntityType,
		}
	})
}

func (s *ContentStore) AllVRScenes() []model.VRScene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.filter(nil)
}

func (s *ContentStore) FeaturedVRScenes() []model.VRScene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.filter(func(v *model.VRScene) bool { return v.Featured })
}

func (s *ContentStore) VRSceneByID(id uint) (*model.VRScene, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.get(id)
}

func (s *ContentStore) VRScenesByDeity(deity string) []model.VRScene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.filter(func(v *model.VRScene) bool { return v.Deity == deity })
}

func (s *ContentStore) VRScenesByCategory(category string) []model.VRScene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.filter(func(v *model.VRScene) bool { return v.Category == category })
}

// SearchVRScenes matches query case-insensitively against name, description
// and details.
func (s *ContentStore) SearchVRScenes(query string) []model.VRScene {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vrScenes.filter(func(v *model.VRScene) bool {
		return containsFold(v.Name, q) ||
			containsFold(v.Description, q) ||
			containsFold(v.Details, q)
	})
}

func (s *ContentStore) CreateVRScene(in model.VRSceneInput) model.VRScene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vrScenes.insert(func(id uint) model.VRScene {
		return model.VRScene{
			ID:             id,
			Name:           in.Name,
			Deity:          in.Deity,
			Description:    in.Description,
			Details:        in.Details,
			ImageURL:       in.ImageURL,
			ModelID:        in.ModelID,
			Difficulty:     in.Difficulty,
			Duration:       in.Duration,
			Featured:       in.Featured,
			Category:       in.Category,
			RelatedStoryID: in.RelatedStoryID,
		}
	})
}
