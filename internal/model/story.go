package model

import (
	"time"
)

// swagger:model Story
type Story struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

func (s Story) RecordID() uint       { return s.ID }
func (Story) CollectionName() string { return "stories" }

type StoryInput struct {
	Title    string `json:"title" yaml:"title" binding:"required"`
	Summary  string `json:"summary" yaml:"summary" binding:"required"`
	Content  string `json:"content" yaml:"content" binding:"required"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl" binding:"required"`
	Category string `json:"category" yaml:"category" binding:"required"`
	Featured bool   `json:"featured" yaml:"featured"`
}

type Deity struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

func (d Deity) RecordID() uint       { return d.ID }
func (Deity) CollectionName() string { return "deities" }

type DeityInput struct {
	Name     string `json:"name" yaml:"name" binding:"required"`
	Title    string `json:"title" yaml:"title" binding:"required"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl" binding:"required"`
}

type Epic struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

func (e Epic) RecordID() uint       { return e.ID }
func (Epic) CollectionName() string { return "epics" }

type EpicInput struct {
	Name        string   `json:"name" yaml:"name" binding:"required"`
	Description string   `json:"description" yaml:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl" yaml:"imageUrl" binding:"required"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Interaction kinds recorded against a story.
const (
	InteractionView     = "view"
	InteractionLike     = "like"
	InteractionBookmark = "bookmark"
)

type StoryInteraction struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"userId"`
	StoryID         uint      `json:"storyId"`
	InteractionType string    `json:"interactionType"`
	Timestamp       time.Time `json:"timestamp"`
}

func (i StoryInteraction) RecordID() uint       { return i.ID }
func (StoryInteraction) CollectionName() string { return "story_interactions" }

type StoryInteractionInput struct {
	UserID          uint   `json:"userId" yaml:"userId" binding:"required"`
	StoryID         uint   `json:"storyId" yaml:"storyId" binding:"required"`
	InteractionType string `json:"interactionType" yaml:"interactionType" binding:"required,min=1"`
}

// RelatedStory links a story to another one with a 1..10 strength.
type RelatedStory struct {
	ID               uint   `json:"id"`
	StoryID          uint   `json:"storyId"`
	RelatedStoryID   uint   `json:"relatedStoryId"`
	RelationStrength int    `json:"relationStrength"`
	RelationReason   string `json:"relationReason"`
}

func (r RelatedStory) RecordID() uint       { return r.ID }
func (RelatedStory) CollectionName() string { return "related_stories" }

type RelatedStoryInput struct {
	StoryID          uint   `json:"storyId" yaml:"storyId" binding:"required"`
	RelatedStoryID   uint   `json:"relatedStoryId" yaml:"relatedStoryId" binding:"required"`
	RelationStrength int    `json:"relationStrength" yaml:"relationStrength" binding:"required,min=1,max=10"`
	RelationReason   string `json:"relationReason" yaml:"relationReason" binding:"required"`
}

// RelatedStoryView is a relation resolved to its target story.
// Story is nil when the target no longer resolves.
type RelatedStoryView struct {
	RelatedStory
	Story *Story `json:"story"`
}
