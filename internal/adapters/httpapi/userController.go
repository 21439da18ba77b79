package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi/middleware"
	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
	userapp "github.com/Bishopxxx/Bishop-blog/internal/core/user/service"
	userPort "github.com/Bishopxxx/Bishop-blog/internal/ports/user"
)

type UserController struct {
	users      UserUseCase
	sessions   SessionUseCase
	cookieName string
	sessionTTL time.Duration
}

func NewUserController(users UserUseCase, sessions SessionUseCase, cookieName string, sessionTTL time.Duration) *UserController {
	return &UserController{users: users, sessions: sessions, cookieName: cookieName, sessionTTL: sessionTTL}
}

type signupForm struct {
	Firstname string `form:"firstname" binding:"required"`
	Lastname  string `form:"lastname" binding:"required"`
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required"`
	Password1 string `form:"password1" binding:"required"`
}

func (ctl *UserController) ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", "Sign up", gin.H{"Form": signupForm{}})
}

func (ctl *UserController) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "signup.html", "Sign up", gin.H{
			"Form":  form,
			"Error": "All fields are required and the email must be valid.",
		})
		return
	}

	if form.Password != form.Password1 {
		render(c, http.StatusBadRequest, "signup.html", "Sign up", gin.H{
			"Form":  form,
			"Error": "Passwords do not match.",
		})
		return
	}

	u, err := ctl.users.Register(c.Request.Context(), form.Email, form.Username, form.Firstname, form.Lastname, form.Password)
	switch {
	case errors.Is(err, userPort.ErrEmailTaken):
		setFlash(c, "That email is already registered.")
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	case errors.Is(err, userPort.ErrUsernameTaken):
		setFlash(c, "That username is already taken.")
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	case err != nil:
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}

	if err := ctl.startSession(c, u); err != nil {
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (ctl *UserController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Log in", gin.H{"Form": loginForm{}})
}

func (ctl *UserController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", "Log in", gin.H{
			"Form":  form,
			"Error": "Email and password are required.",
		})
		return
	}

	u, err := ctl.users.Authenticate(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, userapp.ErrUnknownEmail):
		render(c, http.StatusUnauthorized, "login.html", "Log in", gin.H{
			"Form":  form,
			"Error": "No account with that email exists.",
		})
		return
	case errors.Is(err, userapp.ErrWrongPassword):
		render(c, http.StatusUnauthorized, "login.html", "Log in", gin.H{
			"Form":  form,
			"Error": "Incorrect password.",
		})
		return
	case err != nil:
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}

	if err := ctl.startSession(c, u); err != nil {
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctl *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(ctl.cookieName); err == nil {
		_ = ctl.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(ctl.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctl *UserController) Profile(c *gin.Context) {
	render(c, http.StatusOK, "profile.html", "Profile", gin.H{
		"User": middleware.CurrentUser(c),
	})
}

func (ctl *UserController) startSession(c *gin.Context, u *userEntity.User) error {
	token, err := ctl.sessions.Start(c.Request.Context(), u)
	if err != nil {
		return err
	}
	c.SetCookie(ctl.cookieName, token, int(ctl.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
