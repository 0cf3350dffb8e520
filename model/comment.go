package model

import "time"

/*

Comment is a user comment on a post

Id: primary key, uuid
Content: comment body in plain text
PostID: the commented post, "belongs-to" relation
AuthorID:
Author: the writing user, "belongs-to" relation
ParentID: nullable self reference for one level of reply nesting. A reply's
		parent is always a top-level comment on the same post; reply-of-reply
		is rejected at creation time.
CreatedAt: time when entity is created

Deleting a top-level comment removes its replies as well.
*/

type Comment struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	Content   string    `json:"content"`
	PostID    string    `gorm:"index;not null" json:"postId"`
	AuthorID  string    `gorm:"index;not null" json:"authorId"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ParentID  *string   `gorm:"index" json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
}
