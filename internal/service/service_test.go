package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ActivityEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func seeded(t *testing.T) *repository.ContentStore {
	t.Helper()
	fx, err := repository.DefaultFixtures()
	require.NoError(t, err)
	store := repository.NewContentStore()
	store.Seed(fx)
	return store
}

func intPtr(v int) *int { return &v }

func TestSavePreferences_Upserts(t *testing.T) {
	svc := NewPersonalizationService(seeded(t), NopActivityPublisher{})

	first := svc.SavePreferences(1, model.UserPreferenceInput{PreferredCategories: []string{"Shiva"}})
	second := svc.SavePreferences(1, model.UserPreferenceInput{PreferredCategories: []string{"Vishnu"}, PreferenceTags: []string{"avatar"}})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, uint(1), second.UserID)
	assert.Equal(t, []string{"Vishnu"}, second.PreferredCategories)
	assert.Equal(t, []string{"avatar"}, second.PreferenceTags)
	assert.Equal(t, 1, svc.Store.Stats()["user_preferences"])
}

func TestRecordInteraction_PublishesAndExcludesFromRecommendations(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewPersonalizationService(seeded(t), pub)

	svc.RecordInteraction(context.Background(), model.StoryInteractionInput{UserID: 1, StoryID: 1, InteractionType: model.InteractionLike})

	assert.Equal(t, []string{EventInteractionRecorded}, pub.types())
	for _, st := range svc.Recommendations(1, 20) {
		assert.NotEqual(t, uint(1), st.ID)
	}
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("redis down")}
	svc := NewCommunityService(seeded(t), pub)

	thread := svc.CreateThread(context.Background(), model.DiscussionThreadInput{
		ForumID: 1, UserID: 1, Title: "On the Churning", Content: "Who really won the amrita?",
	})
	assert.NotZero(t, thread.ID)
	assert.Equal(t, []string{EventThreadCreated}, pub.types())
}

func TestViewThread(t *testing.T) {
	svc := NewCommunityService(seeded(t), NopActivityPublisher{})

	first, found, err := svc.ViewThread(1)
	require.NoError(t, err)
	require.True(t, found)
	second, _, err := svc.ViewThread(1)
	require.NoError(t, err)
	assert.Equal(t, first.ViewCount+1, second.ViewCount)

	_, found, err = svc.ViewThread(999)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestUserAchievements_DerivedFromPoints(t *testing.T) {
	store := seeded(t)
	svc := NewProgressService(store, NopActivityPublisher{})

	for _, s := range svc.UserAchievements(1) {
		assert.False(t, s.Unlocked, s.Title)
	}

	svc.AwardPoints(context.Background(), model.UserPointsInput{UserID: 1, Points: 100, Category: "Reading", Source: "story_reading"})

	statuses := svc.UserAchievements(1)
	require.Len(t, statuses, 5)
	for _, s := range statuses {
		assert.Equal(t, 100 >= s.RequiredPoints, s.Unlocked, s.Title)
		if !s.Unlocked {
			assert.Equal(t, 100*100/s.RequiredPoints, s.Percent, s.Title)
		}
	}

	// Another user is unaffected.
	for _, s := range svc.UserAchievements(2) {
		assert.False(t, s.Unlocked)
	}
}

func TestUserAchievements_ListedInProgressAndSecret(t *testing.T) {
	store := seeded(t)
	svc := NewProgressService(store, NopActivityPublisher{})

	secret := store.CreateAchievement(model.AchievementInput{Title: "Hidden Path", Description: "d", Category: "Secret", RequiredPoints: 500, IsSecret: true})
	assert.Len(t, svc.UserAchievements(1), 5)

	store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 1, AchievementsUnlocked: []string{"5", "not-an-id"}})

	statuses := svc.UserAchievements(1)
	byID := map[uint]model.AchievementStatus{}
	for _, s := range statuses {
		byID[s.ID] = s
	}
	assert.True(t, byID[5].Unlocked)
	assert.NotContains(t, byID, secret.ID)
}

func TestUpdateProgress_PublishesCompletionOnce(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewProgressService(seeded(t), pub)
	ctx := context.Background()

	_, ok := svc.UpdateProgress(ctx, 1, 2, model.UserProgressPatch{Progress: intPtr(50)})
	assert.False(t, ok)

	svc.StartProgress(ctx, model.UserProgressInput{UserID: 1, StoryID: 2})
	_, ok = svc.UpdateProgress(ctx, 1, 2, model.UserProgressPatch{Progress: intPtr(100)})
	require.True(t, ok)
	_, ok = svc.UpdateProgress(ctx, 1, 2, model.UserProgressPatch{Progress: intPtr(100)})
	require.True(t, ok)

	assert.Equal(t, []string{EventProgressCompleted}, pub.types())
}

func TestUpdateProgress_ConcurrentCompletionPublishesOnce(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewProgressService(seeded(t), pub)
	ctx := context.Background()
	svc.StartProgress(ctx, model.UserProgressInput{UserID: 2, StoryID: 4})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := svc.UpdateProgress(ctx, 2, 4, model.UserProgressPatch{Progress: intPtr(100)})
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{EventProgressCompleted}, pub.types())
}

func TestPointsTotals(t *testing.T) {
	svc := NewProgressService(seeded(t), NopActivityPublisher{})
	ctx := context.Background()

	svc.AwardPoints(ctx, model.UserPointsInput{UserID: 3, Points: 5, Category: "Quiz", Source: "quiz_completion"})
	svc.AwardPoints(ctx, model.UserPointsInput{UserID: 3, Points: 8, Category: "Reading", Source: "story_reading"})

	assert.Equal(t, UserPoints{UserID: 3, Points: 13}, svc.TotalPoints(3))
	assert.Equal(t, UserPoints{UserID: 3, Category: "Quiz", Points: 5}, svc.CategoryPoints(3, "Quiz"))
}

func TestQuizSubmit(t *testing.T) {
	store := seeded(t)
	pub := &recordingPublisher{}
	svc := NewQuizService(store, pub)

	questions := store.QuestionsByQuizID(1)
	require.NotEmpty(t, questions)

	answers := map[uint]string{questions[0].ID: questions[0].CorrectAnswer}
	res, ok := svc.Submit(context.Background(), 1, QuizSubmission{UserID: 1, Answers: answers})
	require.True(t, ok)

	assert.Equal(t, len(questions), res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, len(questions)-1, res.Incorrect)
	assert.Equal(t, PointsPerCorrect, res.PointsAwarded)
	require.NotNil(t, res.LedgerEntryID)
	assert.Equal(t, PointsPerCorrect, store.UserPointsByCategory(1, QuizPointsCategory))
	assert.Equal(t, []string{EventPointsAwarded}, pub.types())

	// Anonymous submissions are graded but not rewarded.
	res, ok = svc.Submit(context.Background(), 1, QuizSubmission{Answers: answers})
	require.True(t, ok)
	assert.Nil(t, res.LedgerEntryID)

	_, ok = svc.Submit(context.Background(), 999, QuizSubmission{Answers: answers})
	assert.False(t, ok)
}

func TestRelatedStories_ResolvesTargets(t *testing.T) {
	store := seeded(t)
	svc := NewContentService(store)

	svc.CreateRelatedStory(model.RelatedStoryInput{StoryID: 1, RelatedStoryID: 6, RelationStrength: 8, RelationReason: "same_deity"})
	svc.CreateRelatedStory(model.RelatedStoryInput{StoryID: 1, RelatedStoryID: 999, RelationStrength: 2, RelationReason: "similar_category"})

	views := svc.RelatedStories(1)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].Story)
	assert.Equal(t, uint(6), views[0].Story.ID)
	assert.Nil(t, views[1].Story)

	assert.Empty(t, svc.SearchStories("   "))
}

func TestAudioAssets(t *testing.T) {
	svc := NewLoreService(seeded(t))

	assert.Len(t, svc.AudioAssets("background_music", ""), 2)
	for _, a := range svc.AudioAssets("", "peaceful") {
		require.NotNil(t, a.Mood)
		assert.Equal(t, "peaceful", *a.Mood)
	}
	for _, a := range svc.AudioAssets("background_music", "dramatic") {
		assert.Equal(t, "background_music", a.Type)
		assert.Equal(t, "dramatic", *a.Mood)
	}
}

func TestProfile(t *testing.T) {
	store := seeded(t)
	svc := NewPersonalizationService(store, NopActivityPublisher{})

	store.CreateBookmark(model.BookmarkInput{UserID: 1, StoryID: 2})
	store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 2, Progress: intPtr(100)})
	store.CreateUserProgress(model.UserProgressInput{UserID: 1, StoryID: 3})

	profile, ok := svc.Profile(1)
	require.True(t, ok)
	assert.Equal(t, "seeker", profile.Username)
	assert.Equal(t, 1, profile.Bookmarks)
	assert.Equal(t, 2, profile.StoriesStarted)
	assert.Equal(t, 1, profile.StoriesCompleted)

	_, ok = svc.Profile(99)
	assert.False(t, ok)
}
