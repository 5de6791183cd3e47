package models

import "time"

// Subject is the top-level content grouping owned by an education provider.
type Subject struct {
	SubjectID   string    `json:"subject_id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublicKey   string    `json:"public_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubjectClass is a class or unit belonging to exactly one Subject.
type SubjectClass struct {
	SubjectClassID string    `json:"subject_class_id"`
	SubjectID      string    `json:"subject_id"`
	Code           string    `json:"code"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}
