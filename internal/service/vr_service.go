package service

import (
	"strings"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

type VRService struct {
	Store *repository.ContentStore
}

func NewVRService(store *repository.ContentStore) *VRService {
	return &VRService{Store: store}
}

// SceneWithModel is a VR scene with its 3D model resolved, when it has one.
type SceneWithModel struct {
	model.VRScene
	Model *model.VRModel `json:"model"`
}

func (s *VRService) Scene(id uint) (*SceneWithModel, bool) {
	scene, ok := s.Store.VRSceneByID(id)
	if !ok {
		return nil, false
	}
	out := &SceneWithModel{VRScene: *scene}
	if scene.ModelID != nil {
		if m, ok := s.Store.VRModelByID(*scene.ModelID); ok {
			out.Model = m
		}
	}
	return out, true
}

func (s *VRService) SearchScenes(query string) []model.VRScene {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.VRScene{}
	}
	return s.Store.SearchVRScenes(query)
}
