package model

type GlossaryTerm struct {
	ID           uint     `json:"id"`
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Category     *string  `json:"category"`
	RelatedTerms []string `json:"relatedTerms"`
}

func (g GlossaryTerm) RecordID() uint       { return g.ID }
func (GlossaryTerm) CollectionName() string { return "glossary_terms" }

type GlossaryTermInput struct {
	Term         string   `json:"term" yaml:"term" binding:"required"`
	Definition   string   `json:"definition" yaml:"definition" binding:"required"`
	Category     *string  `json:"category" yaml:"category"`
	RelatedTerms []string `json:"relatedTerms" yaml:"relatedTerms"`
}

// CharacterRelationship connects two deities, e.g. "parent" or "spouse".
type CharacterRelationship struct {
	ID               uint   `json:"id"`
	Character1ID     uint   `json:"character1Id"`
	Character2ID     uint   `json:"character2Id"`
	RelationshipType string `json:"relationshipType"`
	Description      string `json:"description"`
}

func (r CharacterRelationship) RecordID() uint       { return r.ID }
func (CharacterRelationship) CollectionName() string { return "character_relationships" }

type CharacterRelationshipInput struct {
	Character1ID     uint   `json:"character1Id" yaml:"character1Id" binding:"required"`
	Character2ID     uint   `json:"character2Id" yaml:"character2Id" binding:"required"`
	RelationshipType string `json:"relationshipType" yaml:"relationshipType" binding:"required"`
	Description      string `json:"description" yaml:"description" binding:"required"`
}

// StoryElement annotates a story illustration. Position holds free-form
// placement data such as {x, y, width, height}.
type StoryElement struct {
	ID          uint           `json:"id"`
	StoryID     uint           `json:"storyId"`
	ElementType string         `json:"elementType"`
	ElementName string         `json:"elementName"`
	Description string         `json:"description"`
	ImageURL    *string        `json:"imageUrl"`
	Position    map[string]any `json:"position"`
}

func (e StoryElement) RecordID() uint       { return e.ID }
func (StoryElement) CollectionName() string { return "story_elements" }

type StoryElementInput struct {
	StoryID     uint           `json:"storyId" yaml:"storyId" binding:"required"`
	ElementType string         `json:"elementType" yaml:"elementType" binding:"required"`
	ElementName string         `json:"elementName" yaml:"elementName" binding:"required"`
	Description string         `json:"description" yaml:"description" binding:"required"`
	ImageURL    *string        `json:"imageUrl" yaml:"imageUrl"`
	Position    map[string]any `json:"position" yaml:"position"`
}

type AudioAsset struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Type     string  `json:"type"`
	Duration int     `json:"duration"` // seconds
	Mood     *string `json:"mood"`
}

func (a AudioAsset) RecordID() uint       { return a.ID }
func (AudioAsset) CollectionName() string { return "audio_assets" }

type AudioAssetInput struct {
	Title    string  `json:"title" yaml:"title" binding:"required"`
	URL      string  `json:"url" yaml:"url" binding:"required"`
	Type     string  `json:"type" yaml:"type" binding:"required"`
	Duration int     `json:"duration" yaml:"duration" binding:"min=0"`
	Mood     *string `json:"mood" yaml:"mood"`
}
