package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/form"
	"tgrera-complaint-form/internal/session"

	"github.com/gin-gonic/gin"
)

// ReadyCheck reports whether backing services are reachable.
type ReadyCheck func(ctx context.Context) error

// Handlers serves the complaint form.
type Handlers struct {
	store      *session.Store
	presenter  *presenter.Presenter
	errHandler *errors.ErrorHandler
	defs       []form.FieldDef
	groups     []form.Group
	cookie     string
	cookieTTL  time.Duration
	ready      ReadyCheck
	logger     logger.Logger
}

func NewHandlers(store *session.Store, p *presenter.Presenter, cookie string, cookieTTL time.Duration, ready ReadyCheck, log logger.Logger) *Handlers {
	log = logger.ForComponent(log, "api")
	defs := form.Catalogue()
	return &Handlers{
		store:      store,
		presenter:  p,
		errHandler: errors.NewErrorHandler(log),
		defs:       defs,
		groups:     form.Groups(defs),
		cookie:     cookie,
		cookieTTL:  cookieTTL,
		ready:      ready,
		logger:     log,
	}
}

// Index renders the form for the caller's session, starting one if needed.
func (h *Handlers) Index(c *gin.Context) {
	sess := h.session(c)
	h.render(c, http.StatusOK, sess)
}

// Event applies one live UI event and returns the resulting snapshot.
func (h *Handlers) Event(c *gin.Context) {
	id, _ := c.Cookie(h.cookie)
	sess, err := h.store.Get(id)
	if err != nil {
		h.errHandler.HandleRequestError(c, err)
		return
	}

	var ev session.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		h.errHandler.HandleRequestError(c, errors.NewInvalidPayloadError(err))
		return
	}

	snap, err := sess.Apply(c.Request.Context(), ev)
	if err != nil {
		h.errHandler.HandleRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Submit runs the submission pipeline on a full form post.
func (h *Handlers) Submit(c *gin.Context) {
	sess := h.session(c)

	values := make(map[string]string, len(h.defs))
	checks := make(map[string]bool)
	for _, d := range h.defs {
		if d.Kind == form.KindCheckbox {
			checks[d.ID] = c.PostForm(d.ID) != ""
			continue
		}
		values[d.ID] = c.PostForm(d.ID)
	}

	outcome, err := sess.Submit(c.Request.Context(), values, checks)
	switch {
	case stderrors.Is(err, orchestrator.ErrAlreadySubmitted):
		h.render(c, http.StatusConflict, sess)
	case err != nil:
		h.errHandler.HandleRequestError(c, err)
	case outcome.Submitted:
		h.logger.Info("complaint submitted", map[string]interface{}{
			"sessionId":   sess.ID,
			"complaintId": outcome.Record.ComplaintID,
		})
		h.render(c, http.StatusOK, sess)
	default:
		h.render(c, http.StatusUnprocessableEntity, sess)
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.store.Len()})
}

func (h *Handlers) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// session resolves the cookie's session, issuing a new cookie when the old
// one is unknown or expired.
func (h *Handlers) session(c *gin.Context) *session.Session {
	id, _ := c.Cookie(h.cookie)
	sess, created := h.store.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie, sess.ID, int(h.cookieTTL/time.Second), "/", "", false, true)
	}
	return sess
}

func (h *Handlers) render(c *gin.Context, status int, sess *session.Session) {
	view := sess.View()
	data := &pageData{
		Groups:       h.groups,
		View:         view,
		ScrollTarget: scrollTarget(view.ScrollTo),
	}
	if view.Confirmation != nil {
		html, err := h.presenter.RenderHTML(*view.Confirmation)
		if err != nil {
			h.errHandler.HandleRequestError(c, errors.NewInternalError(err))
			return
		}
		data.Confirmation = html
	}
	c.HTML(status, "form.html", data)
}
