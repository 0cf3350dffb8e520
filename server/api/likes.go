package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumibond/corkboard/model"
	"gorm.io/gorm/clause"
)

// likeCount recomputes the like total for a post from current rows.
func (a *API) likeCount(postID string) (int64, error) {
	var count int64
	err := a.DB.Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// LikePost handles POST /posts/:id/likes. Liking twice is a no-op: the insert
// rides the composite primary key on (post_id, user_id), so concurrent
// double-clicks collapse into a single row without any app-level locking.
func (a *API) LikePost(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to like post")
		return
	}

	postID := c.Param("id")
	like := model.Like{PostID: postID, UserID: uid}
	if err := a.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
		abortWithError(c, err, "failed to like post")
		return
	}

	count, err := a.likeCount(postID)
	if err != nil {
		abortWithError(c, err, "failed to like post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": true, "count": count})
}

// UnlikePost handles DELETE /posts/:id/likes. Removing an absent like is a
// no-op, the count simply stays put.
func (a *API) UnlikePost(c *gin.Context) {
	uid := callerID(c)
	if uid == "" {
		abortWithError(c, errUnauthorized(), "failed to unlike post")
		return
	}

	postID := c.Param("id")
	if err := a.DB.Where("post_id = ? AND user_id = ?", postID, uid).Delete(&model.Like{}).Error; err != nil {
		abortWithError(c, err, "failed to unlike post")
		return
	}

	count, err := a.likeCount(postID)
	if err != nil {
		abortWithError(c, err, "failed to unlike post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": false, "count": count})
}
