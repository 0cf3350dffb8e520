package model

import "time"

/*

Like is a user liking a post, a bare join row

PostID: post id, composite primary key
UserID: user id, composite primary key
CreatedAt: time when relation is created

The composite primary key is the whole contract: at most one Like can exist
per (post, user) pair, which is what makes the like upsert idempotent.
*/

type Like struct {
	PostID    string    `gorm:"primaryKey" json:"postId"`
	UserID    string    `gorm:"primaryKey" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
