package repository

import (
	"slices"
	"strings"

	"mythos_backend/internal/model"
)

func (s *ContentStore) AllQuizzes() []model.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes.filter(nil)
}

func (s *ContentStore) QuizByID(id uint) (*model.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes.get(id)
}

func (s *ContentStore) QuizzesByCategory(category string) []model.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes.filter(func(q *model.Quiz) bool { return strings.EqualFold(q.Category, category) })
}

func (s *ContentStore) QuizzesByDifficulty(difficulty string) []model.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes.filter(func(q *model.Quiz) bool { return strings.EqualFold(q.Difficulty, difficulty) })
}

func (s *ContentStore) CreateQuiz(in model.QuizInput) model.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quizzes.insert(func(id uint) model.Quiz {
		return model.Quiz{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Difficulty:  in.Difficulty,
			ImageURL:    in.ImageURL,
		}
	})
}

func (s *ContentStore) QuestionsByQuizID(quizID uint) []model.QuizQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.filter(func(q *model.QuizQuestion) bool { return q.QuizID == quizID })
}

func (s *ContentStore) QuestionByID(id uint) (*model.QuizQuestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.get(id)
}

// CreateQuizQuestion does not check that CorrectAnswer is one of Options.
func (s *ContentStore) CreateQuizQuestion(in model.QuizQuestionInput) model.QuizQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions.insert(func(id uint) model.QuizQuestion {
		return model.QuizQuestion{
			ID:            id,
			QuizID:        in.QuizID,
			Question:      in.Question,
			Options:       slices.Clone(in.Options),
			CorrectAnswer: in.CorrectAnswer,
			Explanation:   in.Explanation,
		}
	})
}
