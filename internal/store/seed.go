package store

import (
	"fmt"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// Seed loads the demo roster and a default subject, class and exam so the
// service is usable out of the box. Safe to call once on a fresh store.
func Seed(s *Store) error {
	users := []models.User{
		{ID: "user_provider_1", Email: "admin@university.edu", Password: "admin123", FullName: "Education Admin", Role: models.RoleProvider, Active: true},
		{ID: "user_student_1", Email: "student@university.edu", Password: "student123", FullName: "Student A", Role: models.RoleStudent, Active: true},
		{ID: "user_verifier_1", Email: "hr@example.com", Password: "verify123", FullName: "HR Verifier", Role: models.RoleVerifier, Active: true},
	}
	for i := range users {
		if err := s.CreateUser(&users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}

	subject := models.Subject{
		SubjectID:   "subject_default",
		Code:        "SUB001",
		Title:       "Introduction to Computer Science",
		Description: "Foundation subject for logical and computational reasoning",
		PublicKey:   "pk_demo_provider",
	}
	if err := s.CreateSubject(&subject); err != nil {
		return fmt.Errorf("seed subject: %w", err)
	}

	class := models.SubjectClass{
		SubjectClassID: "class_default",
		SubjectID:      subject.SubjectID,
		Code:           "CS101",
		Title:          "Reasoning Fundamentals",
		Description:    "Entry class covering logical reasoning basics",
	}
	if err := s.CreateSubjectClass(&class); err != nil {
		return fmt.Errorf("seed class: %w", err)
	}

	exam := models.Exam{
		ExamID:         "exam_default",
		SubjectClassID: class.SubjectClassID,
		Code:           "LRA-1",
		Title:          "Logical Reasoning Assessment",
		Description:    "Baseline reasoning exam",
		PublicKey:      subject.PublicKey,
		MaxScore:       100,
		Difficulty:     models.DifficultyBeginner,
		Status:         models.ExamStatusPublished,
		Questions: []models.Question{
			{
				QuestionID:    "q1",
				Text:          "2, 4, 8, 16, ?",
				Options:       []string{"20", "32", "18"},
				CorrectAnswer: "32",
			},
			{
				QuestionID:    "q2",
				Text:          "Which is a prime number?",
				Options:       []string{"13", "21", "1"},
				CorrectAnswer: "13",
			},
			{
				QuestionID:    "q3",
				Text:          "Sort ascending: [7, 2, 5]",
				Options:       []string{"[7,5,2]", "[5,7,2]", "[2,5,7]"},
				CorrectAnswer: "[2,5,7]",
			},
		},
	}
	if err := s.CreateExam(&exam); err != nil {
		return fmt.Errorf("seed exam: %w", err)
	}

	return nil
}
