package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

func newStoreWithClass(t *testing.T) (*Store, *models.SubjectClass) {
	t.Helper()
	s := New()

	subject := &models.Subject{Code: "SUB001", Title: "Intro CS"}
	require.NoError(t, s.CreateSubject(subject))

	class := &models.SubjectClass{SubjectID: subject.SubjectID, Code: "CS101", Title: "Unit 1"}
	require.NoError(t, s.CreateSubjectClass(class))

	return s, class
}

func sampleQuestions() []models.Question {
	return []models.Question{
		{Text: "2 + 2 = ?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
		{Text: "5 - 3 = ?", Options: []string{"1", "2"}, CorrectAnswer: "2"},
	}
}

func TestCreateSubjectRejectsDuplicateCode(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateSubject(&models.Subject{Code: "SUB001", Title: "First"}))

	err := s.CreateSubject(&models.Subject{Code: "sub001", Title: "Second"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateSubjectClassRequiresSubject(t *testing.T) {
	s := New()
	err := s.CreateSubjectClass(&models.SubjectClass{SubjectID: "missing", Code: "CS101"})
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestCreateSubjectClassDuplicateCodeScopedToSubject(t *testing.T) {
	s := New()
	first := &models.Subject{Code: "SUB001", Title: "First"}
	second := &models.Subject{Code: "SUB002", Title: "Second"}
	require.NoError(t, s.CreateSubject(first))
	require.NoError(t, s.CreateSubject(second))

	require.NoError(t, s.CreateSubjectClass(&models.SubjectClass{SubjectID: first.SubjectID, Code: "CS101"}))
	assert.ErrorIs(t, s.CreateSubjectClass(&models.SubjectClass{SubjectID: first.SubjectID, Code: "CS101"}), ErrDuplicate)
	assert.NoError(t, s.CreateSubjectClass(&models.SubjectClass{SubjectID: second.SubjectID, Code: "CS101"}))
}

func TestCreateExamRequiresClass(t *testing.T) {
	s := New()
	err := s.CreateExam(&models.Exam{SubjectClassID: "missing", Questions: sampleQuestions()})
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestListExamsNewestFirst(t *testing.T) {
	s, class := newStoreWithClass(t)

	for i := 0; i < 3; i++ {
		exam := &models.Exam{
			SubjectClassID: class.SubjectClassID,
			Code:           fmt.Sprintf("EX-%d", i),
			Questions:      sampleQuestions(),
		}
		require.NoError(t, s.CreateExam(exam))
	}

	exams := s.ListExams(models.ExamFilter{})
	require.Len(t, exams, 3)
	assert.Equal(t, "EX-2", exams[0].Code)
	assert.Equal(t, "EX-0", exams[2].Code)
}

func TestListExamsFiltersBySubjectClass(t *testing.T) {
	s, class := newStoreWithClass(t)
	other := &models.SubjectClass{SubjectID: class.SubjectID, Code: "CS102"}
	require.NoError(t, s.CreateSubjectClass(other))

	require.NoError(t, s.CreateExam(&models.Exam{SubjectClassID: class.SubjectClassID, Code: "A", Questions: sampleQuestions()}))
	require.NoError(t, s.CreateExam(&models.Exam{SubjectClassID: other.SubjectClassID, Code: "B", Questions: sampleQuestions()}))

	exams := s.ListExams(models.ExamFilter{SubjectClassID: other.SubjectClassID})
	require.Len(t, exams, 1)
	assert.Equal(t, "B", exams[0].Code)
}

func TestFindExamReturnsDefensiveCopy(t *testing.T) {
	s, class := newStoreWithClass(t)
	exam := &models.Exam{SubjectClassID: class.SubjectClassID, Code: "EX-1", Questions: sampleQuestions()}
	require.NoError(t, s.CreateExam(exam))

	got, err := s.FindExamByID(exam.ExamID)
	require.NoError(t, err)

	got.Questions[0].CorrectAnswer = "tampered"
	got.Questions[0].Options[0] = "tampered"

	fresh, err := s.FindExamByID(exam.ExamID)
	require.NoError(t, err)
	assert.Equal(t, "4", fresh.Questions[0].CorrectAnswer)
	assert.Equal(t, "3", fresh.Questions[0].Options[0])
}

func TestAppendIssuanceWritesBothRecords(t *testing.T) {
	s := New()

	credential := &models.Credential{StudentID: "s1", StudentName: "Student A", ExamID: "exam-1", Score: 90}
	tx, err := s.AppendIssuance(credential)
	require.NoError(t, err)

	assert.NotEmpty(t, credential.CredentialID)
	assert.NotEmpty(t, tx.TxID)
	assert.Equal(t, credential.TxID, tx.TxID)
	assert.False(t, credential.Timestamp.IsZero())

	storedTx, err := s.FindTransactionByTxID(tx.TxID)
	require.NoError(t, err)
	assert.Equal(t, credential.CredentialID, storedTx.CredentialID)

	storedCred, err := s.FindCredentialByID(credential.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, tx.TxID, storedCred.TxID)
	assert.Equal(t, 90, storedCred.Score)
}

func TestIssuanceIDsUniqueAcrossManyCalls(t *testing.T) {
	s := New()

	const n = 10000
	credIDs := make(map[string]struct{}, n)
	txIDs := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		credential := &models.Credential{StudentID: "s1", ExamID: "exam-1", Score: i % 101}
		tx, err := s.AppendIssuance(credential)
		require.NoError(t, err)

		_, dupCred := credIDs[credential.CredentialID]
		_, dupTx := txIDs[tx.TxID]
		require.False(t, dupCred, "credential id collision at %d", i)
		require.False(t, dupTx, "tx id collision at %d", i)

		credIDs[credential.CredentialID] = struct{}{}
		txIDs[tx.TxID] = struct{}{}
	}
}

func TestSubjectIDsUniqueAcrossManyCreates(t *testing.T) {
	s := New()

	const n = 10000
	ids := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		subject := &models.Subject{Code: fmt.Sprintf("SUB%05d", i), Title: "Subject"}
		require.NoError(t, s.CreateSubject(subject))
		_, dup := ids[subject.SubjectID]
		require.False(t, dup, "subject id collision at %d", i)
		ids[subject.SubjectID] = struct{}{}
	}
}

func TestListCredentialsByStudentNewestFirst(t *testing.T) {
	s := New()

	for i, score := range []int{50, 60, 70} {
		credential := &models.Credential{StudentID: "s1", ExamID: fmt.Sprintf("exam-%d", i), Score: score}
		_, err := s.AppendIssuance(credential)
		require.NoError(t, err)
	}
	_, err := s.AppendIssuance(&models.Credential{StudentID: "s2", ExamID: "exam-x", Score: 80})
	require.NoError(t, err)

	credentials := s.ListCredentialsByStudent("s1")
	require.Len(t, credentials, 3)
	assert.Equal(t, 70, credentials[0].Score)
	assert.Equal(t, 50, credentials[2].Score)
}

func TestSeedLoadsDefaults(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s))

	exam, err := s.FindExamByID("exam_default")
	require.NoError(t, err)
	assert.Equal(t, 3, exam.TotalQuestions)
	assert.Equal(t, "Logical Reasoning Assessment", exam.Title)

	user, err := s.FindUserByEmail("admin@university.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, user.Role)
}
