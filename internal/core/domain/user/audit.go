package user

import (
	"fmt"
	"time"
)

const AuditSubjectAuthentication = "Authentication"

type AuditEntryID int64

type AuditEntry struct {
	ID        AuditEntryID
	UserID    ID
	Subject   string
	Entry     string
	CreatedAt time.Time
}

type CreateAuditEntryInput struct {
	UserID    ID
	Subject   string
	Entry     string
	CreatedAt time.Time
}

func NewLoginAuditEntry(a Account, at time.Time) CreateAuditEntryInput {
	return CreateAuditEntryInput{
		UserID:    a.ID,
		Subject:   AuditSubjectAuthentication,
		Entry:     fmt.Sprintf("User %s logged in", a.Email),
		CreatedAt: at,
	}
}
