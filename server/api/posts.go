package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lumibond/corkboard/model"
	"github.com/lumibond/corkboard/utils"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 20
)

// postOutput is a post together with its author projection.
type postOutput struct {
	model.Post
	Author model.Author `json:"author"`
}

// postDetailOutput additionally carries the derived fields of the single-post
// view. Counts and likedByMe are computed from current rows on every read,
// never stored.
type postDetailOutput struct {
	postOutput
	Count     postCounts `json:"_count"`
	LikedByMe bool       `json:"likedByMe"`
}

type postCounts struct {
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

// intQuery reads an integer query parameter, falling back to def on absent or
// unparsable values.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// ListPosts handles GET /posts. Readable anonymously. Ordering is newest
// first with id as tiebreak, so pages stay deterministic when several posts
// share a creation timestamp.
func (a *API) ListPosts(c *gin.Context) {
	page := utils.Max(1, intQuery(c, "page", 1))
	pageSize := utils.Clamp(intQuery(c, "pageSize", defaultPageSize), 1, maxPageSize)
	offset := (page - 1) * pageSize

	var total int64
	if err := a.DB.Model(&model.Post{}).Count(&total).Error; err != nil {
		abortWithError(c, err, "failed to fetch posts")
		return
	}

	var posts []model.Post
	if err := a.DB.Preload("Author").
		Order("created_at desc, id desc").
		Offset(offset).Limit(pageSize).
		Find(&posts).Error; err != nil {
		abortWithError(c, err, "failed to fetch posts")
		return
	}

	out := make([]postOutput, 0, len(posts))
	for _, p := range posts {
		out = append(out, postOutput{Post: p, Author: p.Author.Public()})
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":    out,
		"page":     page,
		"pageSize": pageSize,
		"total":    total,
	})
}

// GetPost handles GET /posts/:id. Auth is optional: an anonymous caller gets
// likedByMe=false instead of an error.
func (a *API) GetPost(c *gin.Context) {
	id := c.Param("id")

	var post model.Post
	if err := a.DB.Preload("Author").Where("id = ?", id).First(&post).Error; err != nil {
		abortWithError(c, mapLookupError(err, errNotFound("post not found")), "failed to fetch post")
		return
	}

	var counts postCounts
	if err := a.DB.Model(&model.Comment{}).Where("post_id = ?", id).Count(&counts.Comments).Error; err != nil {
		abortWithError(c, err, "failed to fetch post")
		return
	}
	if err := a.DB.Model(&model.Like{}).Where("post_id = ?", id).Count(&counts.Likes).Error; err != nil {
		abortWithError(c, err, "failed to fetch post")
		return
	}

	likedByMe := false
	if uid := callerID(c); uid != "" {
		var liked int64
		if err := a.DB.Model(&model.Like{}).Where("post_id = ? AND user_id = ?", id, uid).Count(&liked).Error; err != nil {
			abortWithError(c, err, "failed to fetch post")
			return
		}
		likedByMe = liked > 0
	}

	c.JSON(http.StatusOK, gin.H{"post": postDetailOutput{
		postOutput: postOutput{Post: post, Author: post.Author.Public()},
		Count:      counts,
		LikedByMe:  likedByMe,
	}})
}

type createPostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost handles POST /posts.
func (a *API) CreatePost(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to create post")
		return
	}

	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("missing fields"), "failed to create post")
		return
	}
	if input.Title == "" || input.Content == "" {
		abortWithError(c, errBadRequest("missing fields"), "failed to create post")
		return
	}

	post := model.Post{
		Id:       uuid.New().String(),
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: uid,
	}
	if err := a.DB.Create(&post).Error; err != nil {
		abortWithError(c, err, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

type updatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePost handles PATCH /posts/:id, author only. An empty string field
// means "no change", mirroring the falsy check the client relies on; a patch
// with neither field set is rejected outright.
func (a *API) UpdatePost(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to update post")
		return
	}

	id := c.Param("id")
	var post model.Post
	if err := a.DB.Where("id = ?", id).First(&post).Error; err != nil {
		abortWithError(c, mapLookupError(err, errNotFound("post not found")), "failed to update post")
		return
	}
	if post.AuthorID != uid {
		abortWithError(c, errForbidden("only the author can update this post"), "failed to update post")
		return
	}

	var input updatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("nothing to update"), "failed to update post")
		return
	}
	if input.Title == "" && input.Content == "" {
		abortWithError(c, errBadRequest("nothing to update"), "failed to update post")
		return
	}

	// IgnoreEmpty skips the zero-valued patch fields, which is exactly the
	// partial-update semantics documented above.
	if err := copier.CopyWithOption(&post, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		abortWithError(c, err, "failed to update post")
		return
	}
	if err := a.DB.Save(&post).Error; err != nil {
		abortWithError(c, err, "failed to update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost handles DELETE /posts/:id, author only. The post's comments and
// likes go with it in one transaction.
func (a *API) DeletePost(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to delete post")
		return
	}

	id := c.Param("id")
	var post model.Post
	if err := a.DB.Where("id = ?", id).First(&post).Error; err != nil {
		abortWithError(c, mapLookupError(err, errNotFound("post not found")), "failed to delete post")
		return
	}
	if post.AuthorID != uid {
		abortWithError(c, errForbidden("only the author can delete this post"), "failed to delete post")
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		abortWithError(c, err, "failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
