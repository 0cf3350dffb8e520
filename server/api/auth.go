package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumibond/corkboard/model"
	"github.com/lumibond/corkboard/server/middlewares"
	"golang.org/x/crypto/bcrypt"
)

type signUpInput struct {
	Name     *string `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) issueSession(c *gin.Context, user *model.User, status int) {
	token, err := middlewares.MintSessionToken(user.Id, a.TokenTTL)
	if err != nil {
		abortWithError(c, err, "failed to issue session")
		return
	}
	c.JSON(status, gin.H{"user": user, "token": token})
}

// SignUp handles POST /auth/signup. Email is the unique login identifier; the
// display name stays null until the user picks one.
func (a *API) SignUp(c *gin.Context) {
	var input signUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("email and password are required"), "failed to sign up")
		return
	}
	if input.Email == "" || input.Password == "" {
		abortWithError(c, errBadRequest("email and password are required"), "failed to sign up")
		return
	}

	var existing model.User
	if a.DB.Where("email = ?", input.Email).First(&existing).RowsAffected == 1 {
		abortWithError(c, errConflict("email already registered"), "failed to sign up")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithError(c, err, "failed to sign up")
		return
	}

	user := model.User{
		Id:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := a.DB.Create(&user).Error; err != nil {
		abortWithError(c, err, "failed to sign up")
		return
	}

	a.issueSession(c, &user, http.StatusCreated)
}

// SignIn handles POST /auth/signin. Wrong email and wrong password are
// deliberately indistinguishable to the caller.
func (a *API) SignIn(c *gin.Context) {
	var input signInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, errBadRequest("email and password are required"), "failed to sign in")
		return
	}
	if input.Email == "" || input.Password == "" {
		abortWithError(c, errBadRequest("email and password are required"), "failed to sign in")
		return
	}

	var user model.User
	queryResult := a.DB.Where("email = ?", input.Email).First(&user)
	if queryResult.RowsAffected != 1 {
		abortWithError(c, errBadCredentials(), "failed to sign in")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		abortWithError(c, errBadCredentials(), "failed to sign in")
		return
	}

	a.issueSession(c, &user, http.StatusOK)
}
