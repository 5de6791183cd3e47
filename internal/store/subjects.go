package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// CreateSubject persists a new subject. Returns ErrDuplicate when the code
// is already taken (comparison is case insensitive).
func (s *Store) CreateSubject(subject *models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(strings.TrimSpace(subject.Code))
	for _, id := range s.subjectOrder {
		if strings.EqualFold(s.subjects[id].Code, code) {
			return ErrDuplicate
		}
	}

	if subject.SubjectID == "" {
		subject.SubjectID = uuid.NewString()
	}
	subject.Code = code
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = time.Now().UTC()
	}

	s.subjects[subject.SubjectID] = *subject
	s.subjectOrder = append(s.subjectOrder, subject.SubjectID)
	return nil
}

// FindSubjectByID returns a subject copy by id.
func (s *Store) FindSubjectByID(id string) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.subjects[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &subject, nil
}

// ListSubjects returns all subjects, most recently created first.
func (s *Store) ListSubjects() []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Subject, 0, len(s.subjectOrder))
	for i := len(s.subjectOrder) - 1; i >= 0; i-- {
		out = append(out, s.subjects[s.subjectOrder[i]])
	}
	return out
}

// CreateSubjectClass persists a class under an existing subject. The class
// code must be unique within its parent subject.
func (s *Store) CreateSubjectClass(class *models.SubjectClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[class.SubjectID]; !ok {
		return ErrNoRecord
	}

	code := strings.ToUpper(strings.TrimSpace(class.Code))
	for _, id := range s.classOrder {
		existing := s.classes[id]
		if existing.SubjectID == class.SubjectID && strings.EqualFold(existing.Code, code) {
			return ErrDuplicate
		}
	}

	if class.SubjectClassID == "" {
		class.SubjectClassID = uuid.NewString()
	}
	class.Code = code
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}

	s.classes[class.SubjectClassID] = *class
	s.classOrder = append(s.classOrder, class.SubjectClassID)
	return nil
}

// FindSubjectClassByID returns a class copy by id.
func (s *Store) FindSubjectClassByID(id string) (*models.SubjectClass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &class, nil
}

// ListSubjectClasses returns the classes of one subject, newest first.
func (s *Store) ListSubjectClasses(subjectID string) []models.SubjectClass {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SubjectClass, 0)
	for i := len(s.classOrder) - 1; i >= 0; i-- {
		class := s.classes[s.classOrder[i]]
		if class.SubjectID == subjectID {
			out = append(out, class)
		}
	}
	return out
}
