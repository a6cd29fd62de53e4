package repository

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mythos_backend/internal/model"
)

//go:embed fixtures/fixtures.yaml
var defaultFixtures []byte

// Fixtures is the seed document. Keys mirror the JSON field names.
type Fixtures struct {
	Users                  []model.UserInput                  `yaml:"users"`
	Forums                 []model.DiscussionForumInput       `yaml:"forums"`
	Threads                []model.DiscussionThreadInput      `yaml:"threads"`
	Comments               []model.DiscussionCommentInput     `yaml:"comments"`
	Achievements           []model.AchievementInput           `yaml:"achievements"`
	Stories                []model.StoryInput                 `yaml:"stories"`
	Deities                []model.DeityInput                 `yaml:"deities"`
	Epics                  []model.EpicInput                  `yaml:"epics"`
	Quizzes                []model.QuizInput                  `yaml:"quizzes"`
	QuizQuestions          []model.QuizQuestionInput          `yaml:"quizQuestions"`
	VRScenes               []model.VRSceneInput               `yaml:"vrScenes"`
	GlossaryTerms          []model.GlossaryTermInput          `yaml:"glossaryTerms"`
	CharacterRelationships []model.CharacterRelationshipInput `yaml:"characterRelationships"`
	AudioAssets            []model.AudioAssetInput            `yaml:"audioAssets"`
}

// DefaultFixtures decodes the fixtures compiled into the binary.
func DefaultFixtures() (*Fixtures, error) {
	return parseFixtures(defaultFixtures)
}

// LoadFixtures reads a fixtures document from disk.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &fx, nil
}

// Seed inserts the fixtures in document order so that ids referenced between
// sections line up.
func (s *ContentStore) Seed(fx *Fixtures) {
	for _, in := range fx.Users {
		s.CreateUser(in)
	}
	for _, in := range fx.Forums {
		s.CreateForum(in)
	}
	for _, in := range fx.Threads {
		s.CreateThread(in)
	}
	for _, in := range fx.Comments {
		s.CreateComment(in)
	}
	for _, in := range fx.Achievements {
		s.CreateAchievement(in)
	}
	for _, in := range fx.Stories {
		s.CreateStory(in)
	}
	for _, in := range fx.Deities {
		s.CreateDeity(in)
	}
	for _, in := range fx.Epics {
		s.CreateEpic(in)
	}
	for _, in := range fx.Quizzes {
		s.CreateQuiz(in)
	}
	for _, in := range fx.QuizQuestions {
		s.CreateQuizQuestion(in)
	}
	for _, in := range fx.VRScenes {
		s.CreateVRScene(in)
	}
	for _, in := range fx.GlossaryTerms {
		s.CreateGlossaryTerm(in)
	}
	for _, in := range fx.CharacterRelationships {
		s.CreateCharacterRelationship(in)
	}
	for _, in := range fx.AudioAssets {
		s.CreateAudioAsset(in)
	}
}
