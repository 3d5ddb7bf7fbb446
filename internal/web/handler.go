package web

import (
	"errors"
	"net/http"
	"time"

	"news-service/internal/account"
	"news-service/internal/article"
	"news-service/internal/logger"
	"news-service/internal/middleware"
	"news-service/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler owns the HTML route surface. Typed errors from the services
// stop here: every failure collapses into a redirect back to a sensible
// prior page, so a browser never sees a bare error response.
type Handler struct {
	accounts     *account.Service
	articles     *article.Service
	sessionStore session.Store
	sessionTTL   time.Duration
	cookieOpts   session.CookieOptions
}

func NewHandler(
	accounts *account.Service,
	articles *article.Service,
	sessionStore session.Store,
	sessionTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		accounts:     accounts,
		articles:     articles,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
		cookieOpts:   cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, sm *middleware.SessionMiddleware) {
	r.Use(middleware.Gin(sm.Ensure))

	r.GET("/", h.index)
	r.GET("/signup", h.signupForm)
	r.POST("/signup", h.signup)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)

	news := r.Group("/news")
	news.Use(middleware.Gin(sm.RequireAuth))

	news.GET("", h.listNews)
	news.GET("/add", h.addNewsForm)
	news.POST("/add", h.addNews)
	news.GET("/edit/:id", h.editNewsForm)
	news.POST("/edit/:id", h.editNews)
	news.POST("/delete/:id", h.deleteNews)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) signupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

func (h *Handler) signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.accounts.Register(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, account.ErrUsernameTaken) {
			logger.Error("signup failed", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	// registering does not log the account in
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	acct, err := h.accounts.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, account.ErrInvalidCredentials) {
			logger.Error("login failed", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.bindSession(c, acct.ID); err != nil {
		logger.Error("failed to bind session", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/news")
}

// bindSession elevates the client's session from anonymous to
// authenticated, the only such transition. Re-authentication simply
// re-binds. If the client somehow has no session, a bound one is
// created.
func (h *Handler) bindSession(c *gin.Context, accountID string) error {
	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	if sess, ok := middleware.SessionFromContext(c.Request.Context()); ok {
		sess.AccountID = accountID
		sess.ExpiresAt = expiresAt
		return h.sessionStore.Update(c.Request.Context(), *sess)
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	sess := session.Session{
		SessionID: sessionID,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, h.cookieOpts)
	return nil
}

func (h *Handler) listNews(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	articles, err := h.articles.ListOwned(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("failed to list articles", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "news.html", gin.H{
		"Articles": articles,
	})
}

func (h *Handler) addNewsForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add-news.html", nil)
}

func (h *Handler) addNews(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")

	if _, err := h.articles.Create(c.Request.Context(), accountID, title, content); err != nil {
		logger.Error("failed to create article", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, "/news/add")
		return
	}

	c.Redirect(http.StatusFound, "/news")
}

func (h *Handler) editNewsForm(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	a, err := h.articles.GetForEdit(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		if !errors.Is(err, article.ErrNotFound) {
			logger.Error("failed to fetch article", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusFound, "/news")
		return
	}

	c.HTML(http.StatusOK, "edit-news.html", gin.H{
		"Article": a,
	})
}

func (h *Handler) editNews(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id := c.Param("id")
	title := c.PostForm("title")
	content := c.PostForm("content")

	if err := h.articles.Update(c.Request.Context(), accountID, id, title, content); err != nil {
		if !errors.Is(err, article.ErrNotFound) {
			logger.Error("failed to update article", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusFound, "/news/edit/"+id)
		return
	}

	c.Redirect(http.StatusFound, "/news")
}

func (h *Handler) deleteNews(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.articles.Delete(c.Request.Context(), accountID, c.Param("id")); err != nil {
		if !errors.Is(err, article.ErrNotFound) {
			logger.Error("failed to delete article", map[string]any{
				"error": err.Error(),
			})
		}
	}

	c.Redirect(http.StatusFound, "/news")
}
