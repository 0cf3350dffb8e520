package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumibond/corkboard/model"
	"gorm.io/gorm"
)

// commentOutput is a comment with its author projection. Top-level comments
// additionally carry their replies; replies carry an empty slice.
type commentOutput struct {
	model.Comment
	Author  model.Author    `json:"author"`
	Replies []commentOutput `json:"replies"`
}

// ListComments handles GET /posts/:id/comments. Readable anonymously. The
// thread shape is one level deep: top-level comments newest first, replies
// under each parent oldest first. The listing is unbounded; at the current
// scale that is fine, pagination would have to come with a client change.
func (a *API) ListComments(c *gin.Context) {
	postID := c.Param("id")

	var topLevel []model.Comment
	if err := a.DB.Preload("Author").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at desc, id desc").
		Find(&topLevel).Error; err != nil {
		abortWithError(c, err, "failed to fetch comments")
		return
	}

	var replies []model.Comment
	if err := a.DB.Preload("Author").
		Where("post_id = ? AND parent_id IS NOT NULL", postID).
		Order("created_at asc, id asc").
		Find(&replies).Error; err != nil {
		abortWithError(c, err, "failed to fetch comments")
		return
	}

	repliesByParent := make(map[string][]commentOutput)
	for _, r := range replies {
		out := commentOutput{Comment: r, Author: r.Author.Public(), Replies: []commentOutput{}}
		repliesByParent[*r.ParentID] = append(repliesByParent[*r.ParentID], out)
	}

	out := make([]commentOutput, 0, len(topLevel))
	for _, cm := range topLevel {
		children := repliesByParent[cm.Id]
		if children == nil {
			children = []commentOutput{}
		}
		out = append(out, commentOutput{Comment: cm, Author: cm.Author.Public(), Replies: children})
	}

	c.JSON(http.StatusOK, gin.H{"comments": out})
}

type createCommentInput struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

// CreateComment handles POST /posts/:id/comments. A reply's parent must be a
// top-level comment on the same post; anything else is rejected before any
// row is written.
func (a *API) CreateComment(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to create comment")
		return
	}

	var input createCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("comment content is required"), "failed to create comment")
		return
	}
	if input.Content == "" {
		abortWithError(c, errBadRequest("comment content is required"), "failed to create comment")
		return
	}

	postID := c.Param("id")
	if input.ParentID != nil && *input.ParentID != "" {
		var parent model.Comment
		if err := a.DB.Where("id = ?", *input.ParentID).First(&parent).Error; err != nil {
			abortWithError(c, mapLookupError(err, errBadRequest("parent comment does not exist on this post")), "failed to create comment")
			return
		}
		if parent.PostID != postID {
			abortWithError(c, errBadRequest("parent comment does not exist on this post"), "failed to create comment")
			return
		}
		if parent.ParentID != nil {
			abortWithError(c, errBadRequest("replies cannot be nested further"), "failed to create comment")
			return
		}
	} else {
		input.ParentID = nil
	}

	comment := model.Comment{
		Id:       uuid.New().String(),
		Content:  input.Content,
		PostID:   postID,
		AuthorID: uid,
		ParentID: input.ParentID,
	}
	if err := a.DB.Create(&comment).Error; err != nil {
		abortWithError(c, err, "failed to create comment")
		return
	}

	var author model.User
	if err := a.DB.Where("id = ?", uid).First(&author).Error; err != nil {
		abortWithError(c, err, "failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": commentOutput{
		Comment: comment,
		Author:  author.Public(),
		Replies: []commentOutput{},
	}})
}

type updateCommentInput struct {
	Content string `json:"content"`
}

// UpdateComment handles PATCH /posts/:id/comments/:commentId, author only.
func (a *API) UpdateComment(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to update comment")
		return
	}

	commentID := c.Param("commentId")
	var comment model.Comment
	if err := a.DB.Preload("Author").Where("id = ?", commentID).First(&comment).Error; err != nil {
		abortWithError(c, mapLookupError(err, errNotFound("comment not found")), "failed to update comment")
		return
	}
	if comment.AuthorID != uid {
		abortWithError(c, errForbidden("only the author can update this comment"), "failed to update comment")
		return
	}

	var input updateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("comment content is required"), "failed to update comment")
		return
	}
	if input.Content == "" {
		abortWithError(c, errBadRequest("comment content is required"), "failed to update comment")
		return
	}

	comment.Content = input.Content
	if err := a.DB.Save(&comment).Error; err != nil {
		abortWithError(c, err, "failed to update comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": commentOutput{
		Comment: comment,
		Author:  comment.Author.Public(),
		Replies: []commentOutput{},
	}})
}

// DeleteComment handles DELETE /posts/:id/comments/:commentId, author only.
// Deleting a top-level comment removes its replies in the same transaction,
// otherwise they would be stranded with a dangling parent id.
func (a *API) DeleteComment(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to delete comment")
		return
	}

	commentID := c.Param("commentId")
	var comment model.Comment
	if err := a.DB.Where("id = ?", commentID).First(&comment).Error; err != nil {
		abortWithError(c, mapLookupError(err, errNotFound("comment not found")), "failed to delete comment")
		return
	}
	if comment.AuthorID != uid {
		abortWithError(c, errForbidden("only the author can delete this comment"), "failed to delete comment")
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", commentID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		abortWithError(c, err, "failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
