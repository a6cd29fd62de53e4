package model

// VRModel is a 3D asset attached to a deity, character or story scene.
type VRModel struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	ModelURL           string `json:"modelUrl"`
	ThumbnailURL       string `json:"thumbnailUrl"`
	Description        string `json:"description"`
	AssociatedEntityID uint   `json:"associatedEntityId"`
	EntityType         string `json:"entityType"`
}

func (m VRModel) RecordID() uint       { return m.ID }
func (VRModel) CollectionName() string { return "vr_models" }

type VRModelInput struct {
	Title              string `json:"title" yaml:"title" binding:"required"`
	ModelURL           string `json:"modelUrl" yaml:"modelUrl" binding:"required"`
	ThumbnailURL       string `json:"thumbnailUrl" yaml:"thumbnailUrl" binding:"required"`
	Description        string `json:"description" yaml:"description" binding:"required"`
	AssociatedEntityID uint   `json:"associatedEntityId" yaml:"associatedEntityId" binding:"required"`
	EntityType         string `json:"entityType" yaml:"entityType" binding:"required"`
}

type VRScene struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Deity          string  `json:"deity"`
	Description    string  `json:"description"`
	Details        string  `json:"details"`
	ImageURL       string  `json:"imageUrl"`
	ModelID        *uint   `json:"modelId"`
	Difficulty     *string `json:"difficulty"`
	Duration       *int    `json:"duration"` // minutes
	Featured       bool    `json:"featured"`
	Category       string  `json:"category"`
	RelatedStoryID *uint   `json:"relatedStoryId"`
}

func (s VRScene) RecordID() uint       { return s.ID }
func (VRScene) CollectionName() string { return "vr_scenes" }

type VRSceneInput struct {
	Name           string  `json:"name" yaml:"name" binding:"required"`
	Deity          string  `json:"deity" yaml:"deity" binding:"required"`
	Description    string  `json:"description" yaml:"description" binding:"required"`
	Details        string  `json:"details" yaml:"details" binding:"required"`
	ImageURL       string  `json:"imageUrl" yaml:"imageUrl" binding:"required"`
	ModelID        *uint   `json:"modelId" yaml:"modelId"`
	Difficulty     *string `json:"difficulty" yaml:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Duration       *int    `json:"duration" yaml:"duration" binding:"omitempty,min=1"`
	Featured       bool    `json:"featured" yaml:"featured"`
	Category       string  `json:"category" yaml:"category" binding:"required"`
	RelatedStoryID *uint   `json:"relatedStoryId" yaml:"relatedStoryId"`
}
