package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// CreateExam persists an exam under an existing subject class. Questions
// are deep copied so the caller's slice cannot mutate stored state.
func (s *Store) CreateExam(exam *models.Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[exam.SubjectClassID]; !ok {
		return ErrNoRecord
	}

	if exam.ExamID == "" {
		exam.ExamID = uuid.NewString()
	}
	if exam.CreatedAt.IsZero() {
		exam.CreatedAt = time.Now().UTC()
	}
	for i := range exam.Questions {
		if exam.Questions[i].QuestionID == "" {
			exam.Questions[i].QuestionID = uuid.NewString()
		}
	}
	exam.TotalQuestions = len(exam.Questions)

	s.exams[exam.ExamID] = cloneExam(*exam)
	s.examOrder = append(s.examOrder, exam.ExamID)
	return nil
}

// FindExamByID returns a deep copy of an exam.
func (s *Store) FindExamByID(id string) (*models.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exam, ok := s.exams[id]
	if !ok {
		return nil, ErrNoRecord
	}
	copied := cloneExam(exam)
	return &copied, nil
}

// ListExams returns exams matching the filter, most recently created first.
// The ordering is a contract: dashboards show recent exams on top.
func (s *Store) ListExams(filter models.ExamFilter) []models.Exam {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Exam, 0, len(s.examOrder))
	for i := len(s.examOrder) - 1; i >= 0; i-- {
		exam := s.exams[s.examOrder[i]]
		if filter.SubjectClassID != "" && exam.SubjectClassID != filter.SubjectClassID {
			continue
		}
		out = append(out, cloneExam(exam))
	}
	return out
}
