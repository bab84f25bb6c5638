package domain

import "time"

// Session is the decoded content of a valid session token.
type Session struct {
	SubjectID string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
