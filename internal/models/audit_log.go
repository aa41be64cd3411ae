package models

import "time"

type AuditResult string

const (
	AuditAccepted            AuditResult = "accepted"
	AuditInvalidAmount       AuditResult = "invalid_amount"
	AuditInsufficientBalance AuditResult = "insufficient_balance"
	AuditChargeLimitExceeded AuditResult = "charge_limit_exceeded"
	AuditError               AuditResult = "error"
)

type AuditLog struct {
	ID        string      `json:"id"`
	UserID    int64       `json:"user_id"`
	Action    string      `json:"action"` // charge|use
	Amount    int64       `json:"amount"`
	Result    AuditResult `json:"result"`
	Balance   int64       `json:"balance"`
	CreatedAt time.Time   `json:"created_at"`
}
