package web

import (
	"log/slog"
	"net/http"

	reqdto "frv-web/internal/handler/dto/request"
	"frv-web/internal/handler/httperr"
	"frv-web/internal/infra/session"
	"frv-web/internal/pkg/config"
	"frv-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	api       usecase.AdminAPI
	inspector usecase.TokenInspector
	cfg       config.Config
	logger    *slog.Logger
}

func NewAdminHandler(api usecase.AdminAPI, inspector usecase.TokenInspector, cfg config.Config, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		api:       api,
		inspector: inspector,
		cfg:       cfg,
		logger:    logger,
	}
}

// controller binds a session controller to the request's cookie and to page.
func (h *AdminHandler) controller(c *gin.Context, page *AdminPage) usecase.AdminSessionController {
	store := session.NewCookieStore(c, h.cfg)
	return usecase.NewAdminSessionController(h.api, store, h.inspector, page, h.logger)
}

func (h *AdminHandler) Show(c *gin.Context) {
	var q reqdto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	page := NewAdminPage(q.Date)
	h.controller(c, page).Resume(c.Request.Context(), q.Date)
	h.render(c, page)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var form reqdto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	page := NewAdminPage("")
	page.Username = form.Username
	h.controller(c, page).Login(c.Request.Context(), form.Username, form.Password)
	h.render(c, page)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	page := NewAdminPage("")
	h.controller(c, page).Logout(c.Request.Context())
	h.render(c, page)
}

func (h *AdminHandler) Complete(c *gin.Context) {
	form, ok := bindAction(c)
	if !ok {
		return
	}

	page := NewAdminPage(form.Date)
	h.controller(c, page).MarkComplete(c.Request.Context(), c.Param("id"), form.Date)
	h.render(c, page)
}

// Delete only reaches the API once the request carries the user's confirmation;
// otherwise the page comes back with just the prompt and no API call is made.
func (h *AdminHandler) Delete(c *gin.Context) {
	form, ok := bindAction(c)
	if !ok {
		return
	}

	page := NewAdminPage(form.Date).WithConfirmation(c.Request.URL.Path, form.Confirmed())
	h.controller(c, page).DeleteReservation(c.Request.Context(), c.Param("id"), form.Date)
	h.render(c, page)
}

func (h *AdminHandler) render(c *gin.Context, page *AdminPage) {
	c.HTML(http.StatusOK, "admin.tmpl", page)
}

func bindAction(c *gin.Context) (reqdto.ActionForm, bool) {
	var form reqdto.ActionForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, err)
		return form, false
	}
	return form, true
}
