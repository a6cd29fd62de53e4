package repository

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mythos_backend/internal/model"
)

func seededStore(t *testing.T) *ContentStore {
	t.Helper()
	fx, err := DefaultFixtures()
	require.NoError(t, err)

	store := NewContentStore()
	store.Seed(fx)
	return store
}

func intPtr(v int) *int { return &v }

func TestSeed_Counts(t *testing.T) {
	store := seededStore(t)

	assert.Len(t, store.AllStories(), 12)
	assert.Len(t, store.FeaturedStories(), 4)
	assert.Len(t, store.AllDeities(), 6)
	assert.Len(t, store.AllEpics(), 2)
	assert.Len(t, store.AllQuizzes(), 3)
	assert.Len(t, store.AllForums(), 3)
	assert.Len(t, store.AllAchievements(), 5)
	assert.Len(t, store.AllVRScenes(), 5)

	questions := 0
	for _, q := range store.AllQuizzes() {
		questions += len(store.QuestionsByQuizID(q.ID))
	}
	assert.Equal(t, 9, questions)

	stats := store.Stats()
	assert.Equal(t, 3, stats["discussion_threads"])
	assert.Equal(t, 2, stats["discussion_comments"])
	assert.Equal(t, 1, stats["users"])
	assert.Equal(t, 0, stats["user_progress"])
}

func TestCreate_IDsStrictlyIncrease(t *testing.T) {
	store := NewContentStore()

	var last uint
	for i := 0; i < 5; i++ {
		st := store.CreateStory(model.StoryInput{Title: "t", Summary: "s", Content: "c", ImageURL: "i", Category: "x"})
		assert.Greater(t, st.ID, last)
		last = st.ID
	}
	assert.Equal(t, uint(1), store.AllStories()[0].ID)

	// Counters are per collection.
	d := store.CreateDeity(model.DeityInput{Name: "Agni", Title: "Fire", ImageURL: "i"})
	assert.Equal(t, uint(1), d.ID)
}

func TestStoryByID_Missing(t *testing.T) {
	store := seededStore(t)

	st, ok := store.StoryByID(999)
	assert.False(t, ok)
	assert.Nil(t, st)

	st, ok = store.StoryByID(1)
	require.True(t, ok)
	assert.Equal(t, "The Story of Ganesha", st.Title)
}

func TestStoriesByCategory_IgnoresCase(t *testing.T) {
	store := seededStore(t)

	lower := store.StoriesByCategory("shiva")
	upper := store.StoriesByCategory("SHIVA")
	assert.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestSearchStories(t *testing.T) {
	store := seededStore(t)

	got := store.SearchStories("ganesh")
	require.NotEmpty(t, got)

	matches := func(st model.Story) bool {
		for _, f := range []string{st.Title, st.Summary, st.Content, st.Category} {
			if strings.Contains(strings.ToLower(f), "ganesh") {
				return true
			}
		}
		return false
	}

	ids := make(map[uint]bool)
	for _, st := range got {
		assert.True(t, matches(st), "story %d does not mention ganesh", st.ID)
		ids[st.ID] = true
	}
	for _, st := range store.AllStories() {
		if matches(st) {
			assert.True(t, ids[st.ID], "story %d mentions ganesh but was not returned", st.ID)
		}
	}

	assert.Equal(t, got, store.SearchStories("GANESH"))
	assert.Empty(t, store.SearchStories("no such myth"))
}

func TestIncrementThreadViewCount(t *testing.T) {
	store := seededStore(t)

	before, ok := store.ThreadByID(1)
	require.True(t, ok)

	after, err := store.IncrementThreadViewCount(1)
	require.NoError(t, err)
	assert.Equal(t, before.ViewCount+1, after.ViewCount)

	_, err = store.IncrementThreadViewCount(999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThreadNotFound))
}

func TestCreateComment_TouchesThread(t *testing.T) {
	store := seededStore(t)

	comment := store.CreateComment(model.DiscussionCommentInput{ThreadID: 1, UserID: 1, Content: "test"})

	thread, ok := store.ThreadByID(1)
	require.True(t, ok)
	assert.False(t, thread.LastActivityAt.Before(comment.CreatedAt))
	assert.Equal(t, thread.LastActivityAt, thread.UpdatedAt)
	assert.Nil(t, comment.ParentCommentID)
	assert.False(t, comment.IsEdited)
}

func TestCommentReplies(t *testing.T) {
	store := seededStore(t)

	parent := store.CreateComment(model.DiscussionCommentInput{ThreadID: 2, UserID: 1, Content: "root"})
	store.CreateComment(model.DiscussionCommentInput{ThreadID: 2, UserID: 1, Content: "reply", ParentCommentID: &parent.ID})

	replies := store.CommentReplies(parent.ID)
	require.Len(t, replies, 1)
	assert.Equal(t, "reply", replies[0].Content)
}

func TestUserProgress_CompositeKeyAndCompletion(t *testing.T) {
	store := NewContentStore()

	created := store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 3})
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, 1, created.CurrentChapter)
	assert.Equal(t, []string{}, created.AchievementsUnlocked)
	assert.Nil(t, created.CompletedAt)

	got, ok := store.UserProgressByStory(1, 3)
	require.True(t, ok)
	assert.Equal(t, created, *got)

	_, ok = store.UserProgressByStory(3, 1)
	assert.False(t, ok)

	done, completed, ok := store.UpdateUserProgress(1, 3, model.UserProgressPatch{Progress: intPtr(100)})
	require.True(t, ok)
	assert.True(t, completed)
	require.NotNil(t, done.CompletedAt)
	firstCompletion := *done.CompletedAt

	time.Sleep(time.Millisecond)
	again, completed, ok := store.UpdateUserProgress(1, 3, model.UserProgressPatch{Progress: intPtr(100), CurrentChapter: intPtr(4)})
	require.True(t, ok)
	assert.False(t, completed)
	assert.Equal(t, firstCompletion, *again.CompletedAt)
	assert.Equal(t, 4, again.CurrentChapter)
	assert.True(t, again.LastAccessedAt.After(firstCompletion))
}

func TestUserProgress_NoUpsertAndSinglePerPair(t *testing.T) {
	store := NewContentStore()

	_, _, ok := store.UpdateUserProgress(1, 1, model.UserProgressPatch{Progress: intPtr(10)})
	assert.False(t, ok)

	store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 1})
	second := store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 1, Progress: intPtr(20)})

	overview := store.UserProgressOverview(1)
	require.Len(t, overview, 1)
	assert.Equal(t, second.ID, overview[0].ID)
	assert.Equal(t, 20, overview[0].Progress)
}

func TestUserPoints_SumsLedger(t *testing.T) {
	store := NewContentStore()
	assert.Equal(t, 0, store.UserPointsTotal(1))

	store.CreateUserPoints(model.UserPointsInput{UserID: 1, Points: 10, Category: "Reading", Source: "story_reading"})
	store.CreateUserPoints(model.UserPointsInput{UserID: 1, Points: 25, Category: "Quiz", Source: "quiz_completion"})
	store.CreateUserPoints(model.UserPointsInput{UserID: 2, Points: 99, Category: "Quiz", Source: "quiz_completion"})

	before := store.UserPointsTotal(1)
	assert.Equal(t, 35, before)
	assert.Equal(t, 25, store.UserPointsByCategory(1, "quiz"))

	store.CreateUserPoints(model.UserPointsInput{UserID: 1, Points: 7, Category: "Reading", Source: "story_reading"})
	assert.Equal(t, before+7, store.UserPointsTotal(1))
	assert.Equal(t, 17, store.UserPointsByCategory(1, "Reading"))
}

func TestRecommendedStories(t *testing.T) {
	store := seededStore(t)

	interacted := []uint{1, 2, 5}
	for _, id := range interacted {
		store.CreateStoryInteraction(model.StoryInteractionInput{UserID: 1, StoryID: id, InteractionType: model.InteractionView})
	}

	recs := store.RecommendedStories(1, 20)
	assert.Len(t, recs, 9)
	for _, st := range recs {
		assert.NotContains(t, interacted, st.ID)
	}

	assert.Len(t, store.RecommendedStories(1, 3), 3)
	assert.Empty(t, store.RecommendedStories(1, 0))
	assert.Len(t, store.RecommendedStories(1, -1), DefaultRecommendationLimit)
}

func TestUpsertUserPreference(t *testing.T) {
	store := seededStore(t)
	before := store.Stats()[store.preferences.name()]

	created := store.UpsertUserPreference(42, model.UserPreferenceInput{PreferredCategories: []string{"Hindu"}})
	assert.Equal(t, uint(42), created.UserID)
	assert.Equal(t, []string{"Hindu"}, created.PreferredCategories)
	assert.Empty(t, created.PreferenceTags)

	updated := store.UpsertUserPreference(42, model.UserPreferenceInput{PreferenceTags: []string{"wisdom"}})
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{"Hindu"}, updated.PreferredCategories)
	assert.Equal(t, []string{"wisdom"}, updated.PreferenceTags)
	assert.Equal(t, before+1, store.Stats()[store.preferences.name()])
}

func TestUpsertUserPreference_Concurrent(t *testing.T) {
	store := NewContentStore()

	const writers = 32
	ids := make([]uint, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = store.UpsertUserPreference(7, model.UserPreferenceInput{PreferenceTags: []string{"war"}}).ID
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Stats()[store.preferences.name()])
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	pref, ok := store.UserPreferences(7)
	require.True(t, ok)
	assert.Equal(t, []string{"war"}, pref.PreferenceTags)
}

func TestRecommendedStories_PreferredFirst(t *testing.T) {
	store := seededStore(t)
	store.CreateUserPreference(model.UserPreferenceInput{UserID: 1, PreferredCategories: []string{"shiva"}})

	recs := store.RecommendedStories(1, 12)
	require.Len(t, recs, 12)

	shiva := store.StoriesByCategory("Shiva")
	for i, st := range shiva {
		assert.Equal(t, st.ID, recs[i].ID)
	}
	// The rest keep their original relative order.
	rest := recs[len(shiva):]
	for i := 1; i < len(rest); i++ {
		assert.Less(t, rest[i-1].ID, rest[i].ID)
	}
}

func TestUserPreference_Update(t *testing.T) {
	store := NewContentStore()

	created := store.CreateUserPreference(model.UserPreferenceInput{UserID: 4})
	assert.Equal(t, []string{}, created.PreferredCategories)
	assert.Equal(t, []string{}, created.PreferenceTags)

	updated, ok := store.UpdateUserPreference(created.ID, model.UserPreferenceInput{PreferredCategories: []string{"Vishnu"}})
	require.True(t, ok)
	assert.Equal(t, []string{"Vishnu"}, updated.PreferredCategories)
	assert.Equal(t, []string{}, updated.PreferenceTags)

	got, ok := store.UserPreferences(4)
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	_, ok = store.UpdateUserPreference(42, model.UserPreferenceInput{})
	assert.False(t, ok)
}

func TestBookmarks(t *testing.T) {
	store := NewContentStore()

	b := store.CreateBookmark(model.BookmarkInput{UserID: 1, StoryID: 2})
	assert.Nil(t, b.Notes)
	assert.Len(t, store.UserBookmarks(1), 1)

	assert.True(t, store.DeleteBookmark(b.ID))
	assert.False(t, store.DeleteBookmark(b.ID))
	assert.Empty(t, store.UserBookmarks(1))

	next := store.CreateBookmark(model.BookmarkInput{UserID: 1, StoryID: 3})
	assert.Greater(t, next.ID, b.ID)
}

func TestLoreLookups(t *testing.T) {
	store := seededStore(t)

	term, ok := store.GlossaryTermByTerm("dharma")
	require.True(t, ok)
	assert.Equal(t, "Dharma", term.Term)

	rels := store.CharacterRelationships(1)
	for _, r := range rels {
		assert.True(t, r.Character1ID == 1 || r.Character2ID == 1)
	}
	assert.NotEmpty(t, rels)

	assert.Len(t, store.AudioAssetsByType("background_music"), 2)
	assert.Empty(t, store.AudioAssetsByType("Background_Music"))

	el := store.CreateStoryElement(model.StoryElementInput{StoryID: 1, ElementType: "character", ElementName: "Ganesha", Description: "d"})
	assert.NotNil(t, el.Position)
	assert.Nil(t, el.ImageURL)
}

func TestVRScenes(t *testing.T) {
	store := seededStore(t)

	for _, s := range store.FeaturedVRScenes() {
		assert.True(t, s.Featured)
	}
	assert.NotEmpty(t, store.VRScenesByDeity("Shiva"))
	assert.Empty(t, store.VRScenesByDeity("shiva"))

	for _, s := range store.SearchVRScenes("DANCE") {
		text := strings.ToLower(s.Name + s.Description + s.Details)
		assert.Contains(t, text, "dance")
	}

	m := store.CreateVRModel(model.VRModelInput{Title: "Trishul", ModelURL: "m", ThumbnailURL: "t", Description: "d", AssociatedEntityID: 2, EntityType: "deity"})
	assert.Len(t, store.VRModels("deity", 0), 1)
	assert.Len(t, store.VRModels("deity", 2), 1)
	assert.Empty(t, store.VRModels("deity", 3))
	got, ok := store.VRModelByID(m.ID)
	require.True(t, ok)
	assert.Equal(t, m, *got)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := seededStore(t)

	st, ok := store.StoryByID(1)
	require.True(t, ok)
	st.Title = "changed"

	again, _ := store.StoryByID(1)
	assert.Equal(t, "The Story of Ganesha", again.Title)
}

func TestLoadFixtures_MissingFile(t *testing.T) {
	_, err := LoadFixtures("does-not-exist.yaml")
	assert.Error(t, err)
}
