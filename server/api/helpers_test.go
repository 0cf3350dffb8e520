package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumibond/corkboard/model"
	"github.com/lumibond/corkboard/server"
	"github.com/lumibond/corkboard/server/api"
	"github.com/lumibond/corkboard/utils"
	"github.com/lumibond/corkboard/utils/dotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer builds a router against a throwaway database. The session
// middleware is intentionally absent: handlers read the resolved caller id
// from the request header, so tests inject identity by setting it directly.
// The middleware itself is covered in auth_test.go.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := utils.CreateTempDB(t)
	router := gin.New()
	server.RegisterRoutes(router, api.New(db, time.Hour))
	return router, db
}

// doRequest performs an in-process request. An empty uid means an anonymous
// caller.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, uid string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("fail to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("sub", uid)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("fail to decode response %q: %v", w.Body.String(), err)
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fail to hash password: %v", err)
	}
	user := model.User{
		Id:           uuid.New().String(),
		Name:         &name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("fail to create test user: %v", err)
	}
	return &user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID, title string, createdAt time.Time) *model.Post {
	t.Helper()

	post := model.Post{
		Id:        uuid.New().String(),
		Title:     title,
		Content:   "content of " + title,
		AuthorID:  authorID,
		CreatedAt: createdAt,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("fail to create test post: %v", err)
	}
	return &post
}

func createTestComment(t *testing.T, db *gorm.DB, postID, authorID, content string, parentID *string, createdAt time.Time) *model.Comment {
	t.Helper()

	comment := model.Comment{
		Id:        uuid.New().String(),
		Content:   content,
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		CreatedAt: createdAt,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("fail to create test comment: %v", err)
	}
	return &comment
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	return resp.Error
}
