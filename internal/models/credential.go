package models

import "time"

// Credential is a permanent record that a student achieved a score on an
// exam. Created exactly once per issuance, never mutated or deleted.
type Credential struct {
	CredentialID string    `json:"credential_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	ExamID       string    `json:"exam_id"`
	Score        int       `json:"score"`
	TxID         string    `json:"tx_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// Transaction is the append-only ledger mirror of a Credential. TxID is the
// primary lookup key for simulated on-chain verification.
type Transaction struct {
	TxID         string    `json:"tx_id"`
	CredentialID string    `json:"credential_id"`
	StudentID    string    `json:"student_id,omitempty"`
	StudentName  string    `json:"student_name,omitempty"`
	ExamID       string    `json:"exam_id,omitempty"`
	Score        int       `json:"score,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// VerificationResult is the outcome of a credential or transaction lookup.
type VerificationResult struct {
	Valid      bool        `json:"valid"`
	Credential *Credential `json:"credential,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// WalletSummary aggregates a student's issued credentials.
type WalletSummary struct {
	Success           bool         `json:"success"`
	StudentID         string       `json:"student_id"`
	StudentName       string       `json:"student_name,omitempty"`
	Credentials       []Credential `json:"credentials"`
	TotalCredentials  int          `json:"total_credentials"`
	PassedCredentials int          `json:"passed_credentials"`
	AverageScore      int          `json:"average_score"`
	Error             string       `json:"error,omitempty"`
}
