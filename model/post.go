package model

import "time"

/*

Post is a text post written by a user

Id: primary key, uuid
Title: post's title in plain text
Content: post's content in plain text
AuthorID:
Author: the writing user, "belongs-to" relation. Every post has exactly one
		author; only the author may update or delete the post.
CreatedAt: time when entity is created, the listing sort key
UpdatedAt: bumped by gorm on every update

Comments and Likes reference the post by id and are removed together with it.
*/

type Post struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `gorm:"index;not null" json:"authorId"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
