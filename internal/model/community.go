package model

import (
	"time"
)

// swagger:model DiscussionForum
type DiscussionForum struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    bool    `json:"isActive"`
	Timestamps
}

func (f DiscussionForum) RecordID() uint       { return f.ID }
func (DiscussionForum) CollectionName() string { return "discussion_forums" }

type DiscussionForumInput struct {
	Title       string  `json:"title" yaml:"title" binding:"required,min=3,max=100"`
	Description string  `json:"description" yaml:"description" binding:"required"`
	Category    string  `json:"category" yaml:"category" binding:"required"`
	ImageURL    *string `json:"imageUrl" yaml:"imageUrl"`
	IsActive    *bool   `json:"isActive" yaml:"isActive"`
}

// DiscussionThread is a topic inside a forum. ViewCount grows on every read
// and LastActivityAt moves whenever a comment is posted.
type DiscussionThread struct {
	ID             uint      `json:"id"`
	ForumID        uint      `json:"forumId"`
	UserID         uint      `json:"userId"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	IsPinned       bool      `json:"isPinned"`
	ViewCount      int       `json:"viewCount"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	Timestamps
}

func (t DiscussionThread) RecordID() uint       { return t.ID }
func (DiscussionThread) CollectionName() string { return "discussion_threads" }

type DiscussionThreadInput struct {
	ForumID  uint   `json:"forumId" yaml:"forumId" binding:"required"`
	UserID   uint   `json:"userId" yaml:"userId" binding:"required"`
	Title    string `json:"title" yaml:"title" binding:"required,min=5,max=100"`
	Content  string `json:"content" yaml:"content" binding:"required,min=10,max=2000"`
	IsPinned bool   `json:"isPinned" yaml:"isPinned"`
}

// DiscussionComment replies to a thread, or to another comment one level deep.
type DiscussionComment struct {
	ID              uint   `json:"id"`
	ThreadID        uint   `json:"threadId"`
	UserID          uint   `json:"userId"`
	Content         string `json:"content"`
	ParentCommentID *uint  `json:"parentCommentId"`
	IsEdited        bool   `json:"isEdited"`
	Timestamps
}

func (c DiscussionComment) RecordID() uint       { return c.ID }
func (DiscussionComment) CollectionName() string { return "discussion_comments" }

type DiscussionCommentInput struct {
	ThreadID        uint   `json:"threadId" yaml:"threadId" binding:"required"`
	UserID          uint   `json:"userId" yaml:"userId" binding:"required"`
	Content         string `json:"content" yaml:"content" binding:"required,min=1,max=2000"`
	ParentCommentID *uint  `json:"parentCommentId" yaml:"parentCommentId"`
}
