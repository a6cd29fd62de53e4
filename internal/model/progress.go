package model

import (
	"time"
)

// ProgressComplete is the progress value that marks a story as finished.
const ProgressComplete = 100

// UserProgress tracks one reader's position in one story.
// There is at most one record per (UserID, StoryID).
type UserProgress struct {
	ID                   uint       `json:"id"`
	UserID               uint       `json:"userId"`
	StoryID              uint       `json:"storyId"`
	Progress             int        `json:"progress"`
	CurrentChapter       int        `json:"currentChapter"`
	AchievementsUnlocked []string   `json:"achievementsUnlocked"`
	CompletedAt          *time.Time `json:"completedAt"`
	LastAccessedAt       time.Time  `json:"lastAccessedAt"`
}

func (p UserProgress) RecordID() uint       { return p.ID }
func (UserProgress) CollectionName() string { return "user_progress" }

// Completed reports whether the story has been finished.
func (p UserProgress) Completed() bool {
	return p.CompletedAt != nil
}

type UserProgressInput struct {
	UserID               uint     `json:"userId" yaml:"userId" binding:"required"`
	StoryID              uint     `json:"storyId" yaml:"storyId" binding:"required"`
	Progress             *int     `json:"progress" yaml:"progress" binding:"omitempty,min=0,max=100"`
	CurrentChapter       *int     `json:"currentChapter" yaml:"currentChapter" binding:"omitempty,min=1"`
	AchievementsUnlocked []string `json:"achievementsUnlocked" yaml:"achievementsUnlocked"`
}

// UserProgressPatch carries the fields a PATCH may change. Nil fields are left alone.
type UserProgressPatch struct {
	Progress             *int     `json:"progress" binding:"omitempty,min=0,max=100"`
	CurrentChapter       *int     `json:"currentChapter" binding:"omitempty,min=1"`
	AchievementsUnlocked []string `json:"achievementsUnlocked"`
}
