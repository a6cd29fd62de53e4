package service

import (
	"context"
	"math"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
)

// Points ledger values used for quiz rewards.
const (
	QuizPointsCategory = "Knowledge"
	QuizPointsSource   = "quiz_completion"
	PointsPerCorrect   = 10
	quizEntityType     = "quiz"
)

type QuizService struct {
	Store     *repository.ContentStore
	Publisher ActivityPublisher
}

func NewQuizService(store *repository.ContentStore, publisher ActivityPublisher) *QuizService {
	return &QuizService{Store: store, Publisher: publisher}
}

// QuizSubmission carries a reader's answers keyed by question id.
type QuizSubmission struct {
	UserID  uint            `json:"userId"`
	Answers map[uint]string `json:"answers" binding:"required"`
}

type QuizResult struct {
	QuizID        uint  `json:"quizId"`
	Total         int   `json:"total"`
	Correct       int   `json:"correct"`
	Incorrect     int   `json:"incorrect"`
	Score         int   `json:"score"` // percent, rounded
	PointsAwarded int   `json:"pointsAwarded"`
	LedgerEntryID *uint `json:"ledgerEntryId"`
}

// Submit grades answers against each question's correct answer. Unanswered
// questions count as incorrect. When the submission names a user and at least
// one answer is right, the reward is appended to the points ledger.
func (s *QuizService) Submit(ctx context.Context, quizID uint, sub QuizSubmission) (*QuizResult, bool) {
	if _, ok := s.Store.QuizByID(quizID); !ok {
		return nil, false
	}
	questions := s.Store.QuestionsByQuizID(quizID)

	res := &QuizResult{QuizID: quizID, Total: len(questions)}
	for _, q := range questions {
		if answer, ok := sub.Answers[q.ID]; ok && answer == q.CorrectAnswer {
			res.Correct++
		}
	}
	res.Incorrect = res.Total - res.Correct
	if res.Total > 0 {
		res.Score = int(math.Round(float64(res.Correct) * 100 / float64(res.Total)))
	}

	if sub.UserID == 0 || res.Correct == 0 {
		return res, true
	}

	entityType := quizEntityType
	entry := s.Store.CreateUserPoints(model.UserPointsInput{
		UserID:            sub.UserID,
		Points:            res.Correct * PointsPerCorrect,
		Category:          QuizPointsCategory,
		Source:            QuizPointsSource,
		RelatedEntityID:   &quizID,
		RelatedEntityType: &entityType,
	})
	res.PointsAwarded = entry.Points
	res.LedgerEntryID = &entry.ID

	emit(ctx, s.Publisher, ActivityEvent{
		Type:     EventPointsAwarded,
		UserID:   entry.UserID,
		EntityID: entry.ID,
		Payload:  entry,
	})
	return res, true
}
