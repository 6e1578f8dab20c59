package response

import (
	"gatekeeper/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) FromDomainAccount(a user.Account) {
	u.ID = int64(a.ID)
	u.Email = string(a.Email)
	u.Status = string(a.Status)
	if a.LastLogin.IsPresent {
		lastLogin := a.LastLogin.Value
		u.LastLogin = &lastLogin
	}
	u.CreatedAt = a.CreatedAt
}

// Login is returned by every successful authentication.
type Login struct {
	User       User   `json:"user"`
	SessionKey string `json:"session_key"`
}

func NewLogin(a user.Account) Login {
	u := User{}
	u.FromDomainAccount(a)
	return Login{User: u, SessionKey: string(a.UserKey)}
}
