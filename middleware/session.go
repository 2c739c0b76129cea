package middleware

import (
	"amazon-shop/logging"
	"amazon-shop/models"
	"amazon-shop/services"
	"amazon-shop/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session"
	sessionContextKey = "session"
	sessionIssuedKey  = "session_issued"
)

// SessionManager loads the caller's session before each request and
// persists it afterwards when it changed. A visitor without a session gets
// a fresh in-memory one; it is only stored, and its cookie only issued,
// once something is written to it.
type SessionManager struct {
	store  services.SessionStore
	tokens *utils.SessionTokens
	secure bool
}

func NewSessionManager(store services.SessionStore, tokens *utils.SessionTokens, secure bool) *SessionManager {
	return &SessionManager{store: store, tokens: tokens, secure: secure}
}

func (m *SessionManager) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		issued := true
		sess := m.load(c)
		if sess == nil {
			var err error
			sess, err = m.newSession()
			if err != nil {
				logging.Error().Err(err).Msg("failed to create session")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			issued = false
		}

		c.Set(sessionContextKey, sess)
		c.Set(sessionIssuedKey, issued)
		c.Next()

		if !c.GetBool(sessionIssuedKey) && c.Writer.Written() {
			// Too late for a cookie; storing the session would orphan it.
			if sess.Modified() {
				logging.Warn().Str("path", c.Request.URL.Path).Msg("dropping session changed after response")
			}
			return
		}
		if err := m.Save(c); err != nil {
			logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to save session")
		}
	}
}

// CurrentSession returns the session attached by Handler, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// Save writes the session to the store if it changed, issuing the cookie
// first for a session the browser does not hold yet. It must run before
// the response body is written.
func (m *SessionManager) Save(c *gin.Context) error {
	sess := CurrentSession(c)
	if sess == nil || !sess.Modified() {
		return nil
	}
	if !c.GetBool(sessionIssuedKey) {
		if err := m.setCookie(c, sess.ID); err != nil {
			return fmt.Errorf("issue session cookie: %w", err)
		}
		c.Set(sessionIssuedKey, true)
	}
	if err := m.store.Save(c.Request.Context(), sess, m.tokens.TTL()); err != nil {
		return err
	}
	sess.ClearModified()
	return nil
}

// Issue persists a session the browser does not hold yet. Pages that embed
// the anti-forgery token call it before rendering so the token they hand
// out can be checked on the next request.
func (m *SessionManager) Issue(c *gin.Context) error {
	sess := CurrentSession(c)
	if sess == nil || c.GetBool(sessionIssuedKey) {
		return nil
	}
	sess.MarkModified()
	return m.Save(c)
}

// Redirect saves the session and then redirects. The session must be
// stored before the browser follows the redirect.
func (m *SessionManager) Redirect(c *gin.Context, location string) {
	if err := m.Save(c); err != nil {
		logging.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to save session")
	}
	c.Redirect(http.StatusFound, location)
}

// Rotate moves the current session to a fresh id and anti-forgery token,
// keeping its contents, and reissues the cookie.
func (m *SessionManager) Rotate(c *gin.Context) error {
	sess := CurrentSession(c)
	if sess == nil {
		return errors.New("no session in context")
	}

	oldID := sess.ID
	fresh, err := m.newSession()
	if err != nil {
		return err
	}
	if err := m.setCookie(c, fresh.ID); err != nil {
		return err
	}
	c.Set(sessionIssuedKey, true)

	sess.ID = fresh.ID
	sess.CSRFToken = fresh.CSRFToken
	sess.MarkModified()

	if err := m.store.Delete(c.Request.Context(), oldID); err != nil {
		logging.Warn().Err(err).Msg("failed to delete rotated session")
	}
	return nil
}

func (m *SessionManager) load(c *gin.Context) *models.Session {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil
	}

	id, err := m.tokens.Validate(cookie)
	if err != nil {
		logging.Debug().Err(err).Msg("discarding session cookie")
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sess, err := m.store.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrSessionNotFound) {
			logging.Error().Err(err).Msg("failed to load session")
		}
		return nil
	}
	return sess
}

func (m *SessionManager) newSession() (*models.Session, error) {
	csrf, err := utils.RandomToken()
	if err != nil {
		return nil, fmt.Errorf("generate csrf token: %w", err)
	}
	return models.NewSession(uuid.NewString(), csrf), nil
}

func (m *SessionManager) setCookie(c *gin.Context, sessionID string) error {
	token, err := m.tokens.Generate(sessionID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.tokens.TTL().Seconds()), "/", "", m.secure, true)
	return nil
}
