package model

import "time"

/*

User is an account created through the auth endpoints.

Id: primary key, uuid
Name: optional display name, nullable until the user picks one
Email: unique login identifier
PasswordHash: bcrypt hash, never serialized
CreatedAt: time when entity is created

A user owns zero or more Posts, Comments and Likes.
*/

type User struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	Name         *string   `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Author is the embeddable public projection of a User, the only shape other
// entities expose. Keep it in sync with what the client renders next to posts
// and comments.
type Author struct {
	Id    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// Public returns the author projection of u.
func (u *User) Public() Author {
	return Author{Id: u.Id, Name: u.Name, Email: u.Email}
}
