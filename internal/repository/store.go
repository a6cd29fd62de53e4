package repository

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"mythos_backend/internal/model"
)

// ErrThreadNotFound is returned when a thread id has no record.
var ErrThreadNotFound = errors.New("thread not found")

// progressKey indexes progress records by reader and story.
type progressKey struct {
	userID  uint
	storyID uint
}

// ContentStore is the in-memory source of truth for every collection.
// Lookups report a missing record with a false flag instead of an error.
type ContentStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users        *collection[model.User]
	stories      *collection[model.Story]
	deities      *collection[model.Deity]
	epics        *collection[model.Epic]
	quizzes      *collection[model.Quiz]
	questions    *collection[model.QuizQuestion]
	preferences  *collection[model.UserPreference]
	interactions *collection[model.StoryInteraction]
	related      *collection[model.RelatedStory]
	bookmarks    *collection[model.Bookmark]
	glossary     *collection[model.GlossaryTerm]
	characters   *collection[model.CharacterRelationship]
	elements     *collection[model.StoryElement]
	audio        *collection[model.AudioAsset]
	vrModels     *collection[model.VRModel]
	vrScenes     *collection[model.VRScene]
	forums       *collection[model.DiscussionForum]
	threads      *collection[model.DiscussionThread]
	comments     *collection[model.DiscussionComment]
	progress     *collection[model.UserProgress]
	achievements *collection[model.Achievement]
	points       *collection[model.UserPoints]

	progressIndex map[progressKey]uint
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		now:           time.Now,
		users:         newCollection[model.User](),
		stories:       newCollection[model.Story](),
		deities:       newCollection[model.Deity](),
		epics:         newCollection[model.Epic](),
		quizzes:       newCollection[model.Quiz](),
		questions:     newCollection[model.QuizQuestion](),
		preferences:   newCollection[model.UserPreference](),
		interactions:  newCollection[model.StoryInteraction](),
		related:       newCollection[model.RelatedStory](),
		bookmarks:     newCollection[model.Bookmark](),
		glossary:      newCollection[model.GlossaryTerm](),
		characters:    newCollection[model.CharacterRelationship](),
		elements:      newCollection[model.StoryElement](),
		audio:         newCollection[model.AudioAsset](),
		vrModels:      newCollection[model.VRModel](),
		vrScenes:      newCollection[model.VRScene](),
		forums:        newCollection[model.DiscussionForum](),
		threads:       newCollection[model.DiscussionThread](),
		comments:      newCollection[model.DiscussionComment](),
		progress:      newCollection[model.UserProgress](),
		achievements:  newCollection[model.Achievement](),
		points:        newCollection[model.UserPoints](),
		progressIndex: make(map[progressKey]uint),
	}
}

// Stats returns the number of records per collection, keyed by collection name.
func (s *ContentStore) Stats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int, 22)
	add := func(name string, n int) { stats[name] = n }
	add(s.users.name(), s.users.len())
	add(s.stories.name(), s.stories.len())
	add(s.deities.name(), s.deities.len())
	add(s.epics.name(), s.epics.len())
	add(s.quizzes.name(), s.quizzes.len())
	add(s.questions.name(), s.questions.len())
	add(s.preferences.name(), s.preferences.len())
	add(s.interactions.name(), s.interactions.len())
	add(s.related.name(), s.related.len())
	add(s.bookmarks.name(), s.bookmarks.len())
	add(s.glossary.name(), s.glossary.len())
	add(s.characters.name(), s.characters.len())
	add(s.elements.name(), s.elements.len())
	add(s.audio.name(), s.audio.len())
	add(s.vrModels.name(), s.vrModels.len())
	add(s.vrScenes.name(), s.vrScenes.len())
	add(s.forums.name(), s.forums.len())
	add(s.threads.name(), s.threads.len())
	add(s.comments.name(), s.comments.len())
	add(s.progress.name(), s.progress.len())
	add(s.achievements.name(), s.achievements.len())
	add(s.points.name(), s.points.len())
	return stats
}

// containsFold expects lowerSubstr to be lower-cased already.
func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

// orEmpty copies in, turning nil into an empty slice.
func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
