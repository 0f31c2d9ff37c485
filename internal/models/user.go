package models

import (
	"fmt"
	"strings"
)

type User struct {
	Id        int64  `bson:"_id"`
	Banned    bool   `bson:"banned"`
	TopicId   int    `bson:"topic_id"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name,omitempty"`
	Username  string `bson:"username,omitempty"`
	Version   int    `bson:"version"`
}

func (u User) IsBanned() bool {
	return u.Banned
}

func (u *User) Ban() {
	u.Banned = true
}

func (u *User) Unban() {
	u.Banned = false
}

// DisplayName renders "First Last (@username)", skipping the empty parts.
func (u *User) DisplayName() string {
	return DisplayName(u.FirstName, u.LastName, u.Username)
}

func DisplayName(firstName, lastName, username string) string {
	var sb strings.Builder
	sb.WriteString(firstName)

	if lastName != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(lastName)
	}

	if username != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("(@%s)", username))
	}

	return sb.String()
}
