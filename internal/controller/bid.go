package controller

import (
	"context"
	"net/http"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.POST("/bids/new", h.PostBid)
	outer.GET("/bids/my", h.GetUserBids)
	outer.GET("/bids/:productId/list", h.GetProductBids)

	outer.PUT("/bids/:bidId/accept", h.AcceptBid)
	outer.PUT("/bids/:bidId/reject", h.RejectBid)
	outer.PUT("/bids/:bidId/confirm", h.ConfirmBid)
	outer.PUT("/bids/:bidId/abandon", h.AbandonBid)
	outer.PUT("/bids/:bidId/withdraw", h.WithdrawBid)
	outer.PUT("/bids/:bidId/complete", h.CompleteBid)

	return h
}

// respondBidError maps lifecycle service errors onto HTTP statuses. The
// engine reports exactly which precondition failed; the mapping keeps
// that detail user-visible.
func respondBidError(c echo.Context, err error) error {
	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBidAmount:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Bid amount must be positive"}); e != nil {
			return e
		}
	case service.ErrOwnProductBid:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't bid on your own product"}); e != nil {
			return e
		}
	case service.ErrUserSuspended:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Your bidding is temporarily suspended"}); e != nil {
			return e
		}
	case service.ErrBiddingWindowClosed:
		if e := c.JSON(http.StatusConflict, errorResponse{"Bidding window for this product is closed"}); e != nil {
			return e
		}
	case service.ErrNotProductOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the product seller can perform this action"}); e != nil {
			return e
		}
	case service.ErrNotBidOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the buyer who placed the bid can perform this action"}); e != nil {
			return e
		}
	case service.ErrNoAccessToBids:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the product seller or an administrator can list product bids"}); e != nil {
			return e
		}
	case service.ErrWrongBidState:
		if e := c.JSON(http.StatusConflict, errorResponse{"Bid is not in a state that permits this transition"}); e != nil {
			return e
		}
	case service.ErrConfirmationExpired:
		if e := c.JSON(http.StatusConflict, errorResponse{"Confirmation deadline has passed; the bid will be abandoned"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postBidInput struct {
	ProductId string  `json:"productId" validate:"required,max=100"`
	BuyerId   string  `json:"buyerId" validate:"required,max=100"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// /bids/new
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		ProductId: input.ProductId,
		BuyerId:   input.BuyerId,
		Amount:    input.Amount,
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	return respondBidError(c, err)
}

type getUserBidsInput struct {
	UserId string `query:"userId" validate:""`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

func newGetUserBidsInput() getUserBidsInput {
	return getUserBidsInput{Limit: defaultLimit, Offset: defaultOffset, UserId: defaultUserId}
}

// /bids/my
func (h *bidRoutesHandler) GetUserBids(c echo.Context) error {
	var input = newGetUserBidsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	if input.UserId == defaultUserId {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Please provide your user id"}); e != nil {
			return e
		}

		return nil
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetUserBids(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
			return e
		}

		return nil
	}

	return respondBidError(c, err)
}

type getProductBidsInput struct {
	ProductId string `param:"productId" validate:"required,max=100"`
	UserId    string `query:"userId" validate:"required"`
	Limit     int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset    int32  `query:"offset" validate:"gte=0"`
}

// /bids/:productId/list
func (h *bidRoutesHandler) GetProductBids(c echo.Context) error {
	input := getProductBidsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.ProductId = c.Param("productId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetProductBids(c.Request().Context(), input.ProductId, input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
			return e
		}

		return nil
	}

	return respondBidError(c, err)
}

type bidTransitionInput struct {
	BidId  string `param:"bidId" validate:"required,max=100"`
	UserId string `query:"userId" validate:"required"`
}

// bindTransitionInput extracts the bid id and acting user shared by all
// transition endpoints.
func (h *bidRoutesHandler) bindTransitionInput(c echo.Context) (*bidTransitionInput, error) {
	input := bidTransitionInput{
		BidId:  c.Param("bidId"),
		UserId: c.QueryParam("userId"),
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return nil, e
		}

		return nil, err
	}

	return &input, nil
}

func (h *bidRoutesHandler) transition(c echo.Context, apply func(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error)) error {
	input, err := h.bindTransitionInput(c)
	if input == nil {
		return err
	}

	bid, err := apply(c.Request().Context(), input.BidId, input.UserId)
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	return respondBidError(c, err)
}

// /bids/:bidId/accept
func (h *bidRoutesHandler) AcceptBid(c echo.Context) error {
	return h.transition(c, h.bidService.AcceptBid)
}

// /bids/:bidId/reject
func (h *bidRoutesHandler) RejectBid(c echo.Context) error {
	return h.transition(c, h.bidService.RejectBid)
}

// /bids/:bidId/confirm
func (h *bidRoutesHandler) ConfirmBid(c echo.Context) error {
	return h.transition(c, h.bidService.ConfirmBid)
}

// /bids/:bidId/abandon
func (h *bidRoutesHandler) AbandonBid(c echo.Context) error {
	return h.transition(c, h.bidService.AbandonBid)
}

// /bids/:bidId/withdraw
func (h *bidRoutesHandler) WithdrawBid(c echo.Context) error {
	return h.transition(c, h.bidService.WithdrawBid)
}

// /bids/:bidId/complete
func (h *bidRoutesHandler) CompleteBid(c echo.Context) error {
	return h.transition(c, h.bidService.CompleteBid)
}
