package model

// swagger:model Quiz
type Quiz struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	ImageURL    string `json:"imageUrl"`
}

func (q Quiz) RecordID() uint       { return q.ID }
func (Quiz) CollectionName() string { return "quizzes" }

type QuizInput struct {
	Title       string `json:"title" yaml:"title" binding:"required"`
	Description string `json:"description" yaml:"description" binding:"required"`
	Category    string `json:"category" yaml:"category" binding:"required"`
	Difficulty  string `json:"difficulty" yaml:"difficulty" binding:"required"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl" binding:"required"`
}

// QuizQuestion belongs to a quiz. CorrectAnswer is expected, not required,
// to be one of Options.
type QuizQuestion struct {
	ID            uint     `json:"id"`
	QuizID        uint     `json:"quizId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

func (q QuizQuestion) RecordID() uint       { return q.ID }
func (QuizQuestion) CollectionName() string { return "quiz_questions" }

type QuizQuestionInput struct {
	QuizID        uint     `json:"quizId" yaml:"quizId" binding:"required"`
	Question      string   `json:"question" yaml:"question" binding:"required"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correctAnswer" yaml:"correctAnswer" binding:"required"`
	Explanation   *string  `json:"explanation" yaml:"explanation"`
}
