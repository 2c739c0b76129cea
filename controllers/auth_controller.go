package controllers

import (
	"amazon-shop/logging"
	"amazon-shop/middleware"
	"amazon-shop/models"
	"amazon-shop/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth     *services.AuthService
	sessions *middleware.SessionManager
}

func NewAuthController(auth *services.AuthService, sessions *middleware.SessionManager) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
}

// issueSession stores a first-visit session before a page hands out its
// anti-forgery token.
func issueSession(c *gin.Context, sessions *middleware.SessionManager) {
	if err := sessions.Issue(c); err != nil {
		logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to issue session")
	}
}

// RegisterForm godoc
// @Summary Registration form
// @Tags Authentication
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /register [get]
func (ctrl *AuthController) RegisterForm(c *gin.Context) {
	ctrl.render(c, http.StatusOK, "register.html", "Register", models.RegisterRequest{}, models.FieldErrors{})
}

// Register godoc
// @Summary Register new user
// @Description Creates a customer account, then redirects to /login
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param email formData string true "Email"
// @Param csrf_token formData string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /login"
// @Failure 400 {string} string "Registration form with field errors"
// @Failure 403 {string} string "HTML error page"
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req models.RegisterRequest
	if errs := bindForm(c, &req); errs != nil {
		req.Password = ""
		ctrl.render(c, http.StatusBadRequest, "register.html", "Register", req, errs)
		return
	}

	user, err := ctrl.auth.Register(c.Request.Context(), req)
	req.Password = ""
	switch {
	case errors.Is(err, models.ErrUsernameTaken):
		ctrl.render(c, http.StatusBadRequest, "register.html", "Register", req, models.FieldErrors{
			"username": "That username is already taken.",
		})
		return
	case err != nil:
		logging.Error().Err(err).Msg("registration failed")
		sess.AddFlash(models.FlashDanger, "We could not create your account. Please try again.")
		ctrl.render(c, http.StatusInternalServerError, "register.html", "Register", req, models.FieldErrors{})
		return
	}

	logging.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	sess.AddFlash(models.FlashSuccess, "User created successfully. Please login.")
	ctrl.sessions.Redirect(c, "/login")
}

// LoginForm godoc
// @Summary Login form
// @Tags Authentication
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /login [get]
func (ctrl *AuthController) LoginForm(c *gin.Context) {
	ctrl.render(c, http.StatusOK, "login.html", "Login", models.LoginRequest{}, models.FieldErrors{})
}

// Login godoc
// @Summary Login
// @Description Signs the session in, then redirects to /home
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param csrf_token formData string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /home"
// @Failure 400 {string} string "Login form with field errors"
// @Failure 401 {string} string "Login form"
// @Failure 403 {string} string "HTML error page"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req models.LoginRequest
	if errs := bindForm(c, &req); errs != nil {
		req.Password = ""
		ctrl.render(c, http.StatusBadRequest, "login.html", "Login", req, errs)
		return
	}

	user, err := ctrl.auth.Login(c.Request.Context(), req)
	req.Password = ""
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		logging.Info().Str("username", req.Username).Str("remote", c.ClientIP()).Msg("login rejected")
		sess.AddFlash(models.FlashDanger, "Invalid username or password. Please try again.")
		ctrl.render(c, http.StatusUnauthorized, "login.html", "Login", req, models.FieldErrors{})
		return
	case err != nil:
		logging.Error().Err(err).Msg("login failed")
		sess.AddFlash(models.FlashDanger, "We could not log you in right now. Please try again.")
		ctrl.render(c, http.StatusInternalServerError, "login.html", "Login", req, models.FieldErrors{})
		return
	}

	if err := ctrl.sessions.Rotate(c); err != nil {
		logging.Error().Err(err).Msg("failed to rotate session on login")
		middleware.RenderError(c, http.StatusInternalServerError, "We could not log you in right now. Please try again.")
		return
	}
	sess.Login(user)
	sess.AddFlash(models.FlashSuccess, "Login successful!")
	ctrl.sessions.Redirect(c, "/home")
}

// Logout godoc
// @Summary Logout
// @Description Signs the session out, keeping the cart, then redirects to /home
// @Tags Authentication
// @Produce html
// @Param csrf_token query string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /home"
// @Failure 403 {string} string "HTML error page"
// @Router /logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	sess.Logout()
	if err := ctrl.sessions.Rotate(c); err != nil {
		logging.Error().Err(err).Msg("failed to rotate session on logout")
	}
	sess.AddFlash(models.FlashSuccess, "You have been logged out.")
	ctrl.sessions.Redirect(c, "/home")
}

func (ctrl *AuthController) render(c *gin.Context, status int, page, title string, form any, errs models.FieldErrors) {
	noStore(c)
	issueSession(c, ctrl.sessions)
	c.HTML(status, page, middleware.PageData(c, gin.H{
		"Title":  title,
		"Form":   form,
		"Errors": errs,
	}))
}
