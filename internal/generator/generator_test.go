package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

func seededGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func assertWellFormed(t *testing.T, q models.Question) {
	t.Helper()

	assert.True(t, strings.HasPrefix(q.QuestionID, "q_"))
	assert.NotEmpty(t, q.Text)
	assert.NotEmpty(t, q.Explanation)
	require.GreaterOrEqual(t, len(q.Options), 2)

	seen := make(map[string]struct{}, len(q.Options))
	matches := 0
	for _, opt := range q.Options {
		_, dup := seen[opt]
		assert.False(t, dup, "duplicate option %q", opt)
		seen[opt] = struct{}{}
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "correct answer must appear exactly once among options")

	limit, ok := archetypeTimeLimits[q.Type]
	require.True(t, ok, "unknown archetype %q", q.Type)
	assert.Equal(t, limit, q.TimeLimitSeconds)
}

func TestGenerateQuestionsStructure(t *testing.T) {
	g := seededGenerator(42)

	questions := g.GenerateQuestions(SkillProgramming, "python", models.DifficultyIntermediate, 10)
	require.Len(t, questions, 10)
	for _, q := range questions {
		assertWellFormed(t, q)
		assert.Equal(t, SkillProgramming, q.SkillType)
		assert.Equal(t, "python", q.Topic)
		assert.Equal(t, models.DifficultyIntermediate, q.Difficulty)
	}
}

func TestGenerateQuestionsCapsOptionsAtFour(t *testing.T) {
	g := seededGenerator(7)

	questions := g.GenerateQuestions(SkillProblemSolving, "dataStructures", models.DifficultyAdvanced, 20)
	require.Len(t, questions, 20)
	for _, q := range questions {
		assertWellFormed(t, q)
		assert.LessOrEqual(t, len(q.Options), 4)
	}
}

func TestGenerateQuestionsPracticalSkill(t *testing.T) {
	g := seededGenerator(3)

	questions := g.GenerateQuestions(SkillPractical, "webDevelopment", models.DifficultyBeginner, 5)
	require.Len(t, questions, 5)
	for _, q := range questions {
		assertWellFormed(t, q)
		assert.Contains(t, []string{"realWorld", "bestPractice"}, q.Type)
	}
}

func TestGenerateQuestionsUnknownTopicFallsBack(t *testing.T) {
	g := seededGenerator(9)

	questions := g.GenerateQuestions(SkillProgramming, "fortran", models.DifficultyBeginner, 4)
	require.Len(t, questions, 4)
	for _, q := range questions {
		assertWellFormed(t, q)
		assert.Equal(t, "fortran", q.Topic)
	}
}

func TestGenerateQuestionsUnknownSkillFallsBack(t *testing.T) {
	g := seededGenerator(11)

	questions := g.GenerateQuestions("juggling", "python", models.DifficultyBeginner, 2)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, SkillProgramming, q.SkillType)
	}
}

func TestGenerateSkillBasedExam(t *testing.T) {
	g := seededGenerator(100)

	skills := []SkillRequest{
		{Type: SkillProgramming, Topic: "python", QuestionCount: 4},
		{Type: SkillProblemSolving, Topic: "dataStructures", QuestionCount: 3},
	}
	exam := g.GenerateSkillBasedExam(skills, models.DifficultyIntermediate)

	require.Len(t, exam.Questions, 7)
	assert.Equal(t, 7, exam.TotalQuestions)
	assert.Equal(t, models.ExamStatusDraft, exam.Status)
	assert.Equal(t, 100, exam.MaxScore)
	assert.Equal(t, "Practical Skills Exam - python, dataStructures", exam.Title)
	assert.Equal(t, []string{"python", "dataStructures"}, exam.Skills)

	sum := 0
	for _, q := range exam.Questions {
		assertWellFormed(t, q)
		sum += q.TimeLimitSeconds
	}
	assert.Equal(t, sum, exam.TimeLimitSeconds)
}

func TestGenerateSkillBasedExamDefaultsQuestionCount(t *testing.T) {
	g := seededGenerator(5)

	exam := g.GenerateSkillBasedExam([]SkillRequest{
		{Type: SkillProgramming, Topic: "javascript"},
	}, models.DifficultyBeginner)
	assert.Len(t, exam.Questions, 3)
}

func TestSkillSetBundles(t *testing.T) {
	g := seededGenerator(77)

	for name, bundle := range SkillSets {
		expected := 0
		for _, skill := range bundle {
			expected += skill.QuestionCount
		}
		exam := g.GenerateSkillBasedExam(bundle, models.DifficultyIntermediate)
		assert.Len(t, exam.Questions, expected, "skill set %s", name)
	}
}

func TestNewWithNilSourceIsUsable(t *testing.T) {
	g := New(nil)
	questions := g.GenerateQuestions(SkillProgramming, "python", models.DifficultyBeginner, 1)
	require.Len(t, questions, 1)
	assertWellFormed(t, questions[0])
}
