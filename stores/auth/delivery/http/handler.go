package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/delivery"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/user"
)

type authHandler struct {
	auth domain.AuthUsecase
	user user.Usecase
}

// New registers the login route and the invite-only registration route.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, auth domain.AuthUsecase, user user.Usecase) {
	handler := &authHandler{
		auth: auth,
		user: user,
	}
	e.POST("/auth/login", handler.login)
	e.POST("/users/register", handler.register, authMiddleware)
}

// login
//
//	@Summary		Get access token
//	@Description	Verify username and password and issue a signed token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.login.params	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		401
//	@Failure		500
//	@Router			/auth/login [post]
func (h *authHandler) login(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if tkn, err := h.auth.Login(ctx, p.Username, p.Password); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// register
//
//	@Summary		Register operator account
//	@Description	Create a new operator account, requires an authenticated caller
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.register.params	true	"params"
//	@Success		201		{object}	object{data=user.User}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Failure		500
//	@Router			/users/register [post]
func (h *authHandler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if u, err := h.user.Register(ctx, p.Username, p.Password); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, u)
	}
}
