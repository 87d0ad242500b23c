package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/delivery"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/auction"
)

type auctionHandler struct {
	auction auction.Usecase
}

// New registers the auction routes. Reads are public, writes require auth.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, auction auction.Usecase) {
	handler := &auctionHandler{auction: auction}

	g := e.Group("/auctions")
	g.GET("", handler.list)
	g.GET("/summary", handler.summary)
	g.GET("/:id", handler.get)
	g.POST("", handler.create, authMiddleware)
	g.PUT("/:id", handler.update, authMiddleware)
	g.DELETE("/:id", handler.delete, authMiddleware)
}

// create
//
//	@Summary		Create auction record
//	@Description	Validate the payload, derive profit and store the record
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Param			params	body		auction.Payload	true	"params"
//	@Success		201		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/auctions [post]
func (h *auctionHandler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.Payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if rec, err := h.auction.Create(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, rec)
	}
}

// list
//
//	@Summary		List auction records
//	@Description	List records in insertion order, optionally filtered
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Param			city			query		string	false	"substring match on city, case-insensitive"
//	@Param			neighborhood	query		string	false	"substring match on neighborhood, case-insensitive"
//	@Param			status			query		string	false	"exact status match"
//	@Success		200				{object}	object{data=[]auction.Auction}
//	@Failure		500
//	@Router			/auctions [get]
func (h *auctionHandler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		City         string `query:"city"`
		Neighborhood string `query:"neighborhood"`
		Status       string `query:"status"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []auction.FindAllOptionsFunc{}
	if p.City != "" {
		opts = append(opts, auction.WithCity(p.City))
	}
	if p.Neighborhood != "" {
		opts = append(opts, auction.WithNeighborhood(p.Neighborhood))
	}
	if p.Status != "" {
		opts = append(opts, auction.WithStatus(auction.Status(p.Status)))
	}

	if recs, err := h.auction.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, recs)
	}
}

// summary
//
//	@Summary		Portfolio summary
//	@Description	Aggregate counts and projected profit across all records
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object{data=auction.Summary}
//	@Failure		500
//	@Router			/auctions/summary [get]
func (h *auctionHandler) summary(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.auction.Summary(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// get
//
//	@Summary		Get auction record
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"record id"
//	@Success		200	{object}	object{data=auction.Auction}
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{id} [get]
func (h *auctionHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	if rec, err := h.auction.FindOne(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, rec)
	}
}

// update
//
//	@Summary		Update auction record
//	@Description	Replace the record with the payload and recompute profit
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"record id"
//	@Param			params	body		auction.Payload	true	"params"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		401
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{id} [put]
func (h *auctionHandler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	p := &auction.Payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if rec, err := h.auction.Update(ctx, id, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, rec)
	}
}

// delete
//
//	@Summary		Delete auction record
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"record id"
//	@Success		200
//	@Failure		401
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{id} [delete]
func (h *auctionHandler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	if err := h.auction.Delete(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "deleted")
}
