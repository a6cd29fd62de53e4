package service

import (
	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

// LoreService serves the glossary, character relationships, story
// annotations and audio.
type LoreService struct {
	Store *repository.ContentStore
}

func NewLoreService(store *repository.ContentStore) *LoreService {
	return &LoreService{Store: store}
}

// AudioAssets filters by type, by mood, or by both when both are given.
func (s *LoreService) AudioAssets(assetType, mood string) []model.AudioAsset {
	switch {
	case assetType != "" && mood != "":
		out := make([]model.AudioAsset, 0)
		for _, a := range s.Store.AudioAssetsByType(assetType) {
			if a.Mood != nil && *a.Mood == mood {
				out = append(out, a)
			}
		}
		return out
	case assetType != "":
		return s.Store.AudioAssetsByType(assetType)
	default:
		return s.Store.AudioAssetsByMood(mood)
	}
}
