package models

import "time"

// Difficulty levels supported by exams and generated questions.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ExamStatus marks an exam's lifecycle stage.
type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "draft"
	ExamStatusPublished ExamStatus = "published"
)

// Question is a single multiple-choice item. Immutable once part of a
// published exam.
type Question struct {
	QuestionID       string     `json:"question_id"`
	Text             string     `json:"text"`
	Options          []string   `json:"options"`
	CorrectAnswer    string     `json:"correct_answer"`
	Explanation      string     `json:"explanation,omitempty"`
	Type             string     `json:"type,omitempty"`
	SkillType        string     `json:"skill_type,omitempty"`
	Topic            string     `json:"topic,omitempty"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	TimeLimitSeconds int        `json:"time_limit_seconds,omitempty"`
}

// Exam is an assessment instrument belonging to one SubjectClass.
// MaxScore is the configured points-possible metadata; evaluation results
// are always reported on a 0-100 percentage scale independent of it.
type Exam struct {
	ExamID           string     `json:"exam_id"`
	SubjectClassID   string     `json:"subject_class_id"`
	Code             string     `json:"code"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	PublicKey        string     `json:"public_key"`
	MaxScore         int        `json:"max_score"`
	Questions        []Question `json:"questions"`
	TotalQuestions   int        `json:"total_questions"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`
	Difficulty       Difficulty `json:"difficulty"`
	Skills           []string   `json:"skills,omitempty"`
	Status           ExamStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ExamFilter captures supported filters for listing exams.
type ExamFilter struct {
	SubjectClassID string
}

// Answer is a learner's response to one question, matched by question id.
type Answer struct {
	QuestionID     string `json:"question_id" validate:"required"`
	SelectedAnswer string `json:"selected_answer"`
}

// EvaluationResult reports a scored exam attempt. Score and MaxScore are on
// the percentage scale regardless of the exam's configured point value.
type EvaluationResult struct {
	Score          int  `json:"score"`
	MaxScore       int  `json:"max_score"`
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	Passed         bool `json:"passed"`
}
