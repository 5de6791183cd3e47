package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

func TestCreateSubject(t *testing.T) {
	s := newSeededStore(t)
	svc := NewSubjectService(s, nil, nil)

	subject, err := svc.Create(context.Background(), CreateSubjectRequest{
		Code:  "sub002",
		Title: "Data Structures",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, subject.SubjectID)
	assert.Equal(t, "SUB002", subject.Code)
	assert.False(t, subject.CreatedAt.IsZero())

	got, err := svc.Get(context.Background(), subject.SubjectID)
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", got.Title)
}

func TestCreateSubjectDuplicateCode(t *testing.T) {
	s := newSeededStore(t)
	svc := NewSubjectService(s, nil, nil)

	// SUB001 is seeded; any casing of the same code must be rejected.
	_, err := svc.Create(context.Background(), CreateSubjectRequest{Code: "sub001", Title: "Clone"})
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicateCode))
}

func TestCreateSubjectMissingTitle(t *testing.T) {
	s := newSeededStore(t)
	svc := NewSubjectService(s, nil, nil)

	_, err := svc.Create(context.Background(), CreateSubjectRequest{Code: "SUB003"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestGetUnknownSubject(t *testing.T) {
	s := newSeededStore(t)
	svc := NewSubjectService(s, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestListSubjectsNewestFirst(t *testing.T) {
	s := newSeededStore(t)
	svc := NewSubjectService(s, nil, nil)

	_, err := svc.Create(context.Background(), CreateSubjectRequest{Code: "SUB002", Title: "Newest"})
	require.NoError(t, err)

	subjects := svc.List(context.Background())
	require.Len(t, subjects, 2)
	assert.Equal(t, "SUB002", subjects[0].Code)
	assert.Equal(t, "SUB001", subjects[1].Code)
}

func TestCreateClass(t *testing.T) {
	s := newSeededStore(t)
	svc := NewClassService(s, nil, nil)

	class, err := svc.Create(context.Background(), "subject_default", CreateSubjectClassRequest{
		Code:  "CS102",
		Title: "Unit 2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, class.SubjectClassID)
	assert.Equal(t, "subject_default", class.SubjectID)
}

func TestCreateClassUnderUnknownSubject(t *testing.T) {
	s := newSeededStore(t)
	svc := NewClassService(s, nil, nil)

	_, err := svc.Create(context.Background(), "missing", CreateSubjectClassRequest{Code: "CS102", Title: "Unit 2"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestCreateClassDuplicateCodeWithinSubject(t *testing.T) {
	s := newSeededStore(t)
	svc := NewClassService(s, nil, nil)

	_, err := svc.Create(context.Background(), "subject_default", CreateSubjectClassRequest{Code: "CS101", Title: "Clone"})
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicateCode))
}

func TestListClassesUnknownSubject(t *testing.T) {
	s := newSeededStore(t)
	svc := NewClassService(s, nil, nil)

	_, err := svc.List(context.Background(), "missing")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
