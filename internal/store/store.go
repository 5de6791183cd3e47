package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// Sentinel errors returned by store accessors. Services translate these
// into the typed API errors.
var (
	ErrNoRecord  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: duplicate code")
)

// Store is the sole owner of all entity collections. Every accessor copies
// data on the way in and out so callers can never mutate history in place,
// and all access is serialized behind one lock.
type Store struct {
	mu sync.RWMutex

	subjects     map[string]models.Subject
	subjectOrder []string

	classes    map[string]models.SubjectClass
	classOrder []string

	exams     map[string]models.Exam
	examOrder []string

	users        map[string]models.User
	usersByEmail map[string]string

	credentials     map[string]models.Credential
	credentialOrder []string

	transactions map[string]models.Transaction
	txOrder      []string

	credentialsByStudent map[string][]string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		subjects:             make(map[string]models.Subject),
		classes:              make(map[string]models.SubjectClass),
		exams:                make(map[string]models.Exam),
		users:                make(map[string]models.User),
		usersByEmail:         make(map[string]string),
		credentials:          make(map[string]models.Credential),
		transactions:         make(map[string]models.Transaction),
		credentialsByStudent: make(map[string][]string),
	}
}

// newTxID mints a ledger transaction id. Caller must hold the write lock so
// the collision check is race free.
func (s *Store) newTxID() string {
	for {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failing is not recoverable here; retry rather
			// than hand out a guessable id.
			continue
		}
		txID := "0x" + hex.EncodeToString(buf)
		if _, exists := s.transactions[txID]; !exists {
			return txID
		}
	}
}

func cloneQuestion(q models.Question) models.Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	return out
}

func cloneQuestions(questions []models.Question) []models.Question {
	if questions == nil {
		return nil
	}
	out := make([]models.Question, len(questions))
	for i, q := range questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func cloneExam(e models.Exam) models.Exam {
	out := e
	out.Questions = cloneQuestions(e.Questions)
	out.Skills = append([]string(nil), e.Skills...)
	return out
}
