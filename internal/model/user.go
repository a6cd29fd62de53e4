package model

import (
	"time"
)

// swagger:model User
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (u User) RecordID() uint       { return u.ID }
func (User) CollectionName() string { return "users" }

type UserInput struct {
	Username string `json:"username" yaml:"username" binding:"required,min=1,max=50"`
}

// UserPreference holds the story categories and tags a reader prefers.
// Each user has at most one preference record.
type UserPreference struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"userId"`
	PreferredCategories []string  `json:"preferredCategories"`
	PreferenceTags      []string  `json:"preferenceTags"`
	LastUpdated         time.Time `json:"lastUpdated"`
}

func (p UserPreference) RecordID() uint       { return p.ID }
func (UserPreference) CollectionName() string { return "user_preferences" }

// UserPreferenceInput is bound from the request body. UserID comes from the path.
type UserPreferenceInput struct {
	UserID              uint     `json:"-" yaml:"userId"`
	PreferredCategories []string `json:"preferredCategories" yaml:"preferredCategories" binding:"omitempty,dive,min=1"`
	PreferenceTags      []string `json:"preferenceTags" yaml:"preferenceTags" binding:"omitempty,dive,min=1"`
}

// Bookmark is a saved story with optional reader notes.
type Bookmark struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	StoryID   uint      `json:"storyId"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b Bookmark) RecordID() uint       { return b.ID }
func (Bookmark) CollectionName() string { return "bookmarks" }

type BookmarkInput struct {
	UserID  uint    `json:"userId" yaml:"userId" binding:"required"`
	StoryID uint    `json:"storyId" yaml:"storyId" binding:"required"`
	Notes   *string `json:"notes" yaml:"notes"`
}
