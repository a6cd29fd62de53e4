package model

import (
	"time"
)

// swagger:model Achievement
type Achievement struct {
	ID             uint    `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImageURL       *string `json:"imageUrl"`
	Category       string  `json:"category"`
	RequiredPoints int     `json:"requiredPoints"`
	IsSecret       bool    `json:"isSecret"`
	RelatedStoryID *uint   `json:"relatedStoryId"`
}

func (a Achievement) RecordID() uint       { return a.ID }
func (Achievement) CollectionName() string { return "achievements" }

type AchievementInput struct {
	Title          string  `json:"title" yaml:"title" binding:"required"`
	Description    string  `json:"description" yaml:"description" binding:"required"`
	ImageURL       *string `json:"imageUrl" yaml:"imageUrl"`
	Category       string  `json:"category" yaml:"category" binding:"required"`
	RequiredPoints int     `json:"requiredPoints" yaml:"requiredPoints" binding:"min=0"`
	IsSecret       bool    `json:"isSecret" yaml:"isSecret"`
	RelatedStoryID *uint   `json:"relatedStoryId" yaml:"relatedStoryId"`
}

// AchievementStatus is an achievement evaluated against one user's points.
// Unlocked is computed on every request and never stored.
type AchievementStatus struct {
	Achievement
	Unlocked bool `json:"unlocked"`
	Percent  int  `json:"percent"`
}

// UserPoints is one entry of the append-only points ledger.
type UserPoints struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"userId"`
	Points            int       `json:"points"`
	Category          string    `json:"category"`
	Source            string    `json:"source"`
	RelatedEntityID   *uint     `json:"relatedEntityId"`
	RelatedEntityType *string   `json:"relatedEntityType"`
	EarnedAt          time.Time `json:"earnedAt"`
}

func (p UserPoints) RecordID() uint       { return p.ID }
func (UserPoints) CollectionName() string { return "user_points" }

type UserPointsInput struct {
	UserID            uint    `json:"userId" yaml:"userId" binding:"required"`
	Points            int     `json:"points" yaml:"points" binding:"min=0"`
	Category          string  `json:"category" yaml:"category" binding:"required"`
	Source            string  `json:"source" yaml:"source" binding:"required"`
	RelatedEntityID   *uint   `json:"relatedEntityId" yaml:"relatedEntityId"`
	RelatedEntityType *string `json:"relatedEntityType" yaml:"relatedEntityType"`
}
