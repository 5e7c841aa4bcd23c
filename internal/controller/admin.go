package controller

import (
	"net/http"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

// Administrative surface: manual sweep/resolution triggers and the
// penalty register. Every endpoint requires an admin acting user.
type adminRoutesHandler struct {
	sweeperService service.Sweeper
	penaltyService service.Penalty
	userService    service.User
	validate       *validator.Validate
}

func newAdminRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *adminRoutesHandler {
	h := &adminRoutesHandler{
		sweeperService: services.Sweeper,
		penaltyService: services.Penalty,
		userService:    services.User,
		validate:       v,
	}
	outer.POST("/admin/cleanup", h.Cleanup)
	outer.POST("/admin/resolve_auctions", h.ResolveAuctions)
	outer.POST("/admin/penalties/new", h.PostPenalty)
	outer.GET("/admin/penalties/:userId", h.GetUserPenalties)
	outer.PUT("/admin/penalties/:penaltyId/resolve", h.ResolvePenalty)

	return h
}

func respondAdminError(c echo.Context, err error) error {
	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrUserIsNotAdmin:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only administrators can perform this action"}); e != nil {
			return e
		}
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	case service.ErrPenaltyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no penalty with given id"}); e != nil {
			return e
		}
	case service.ErrPenaltyAlreadyResolved:
		if e := c.JSON(http.StatusConflict, errorResponse{"Penalty has already been resolved"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// requireAdmin gates the sweep triggers, which carry no payload of their
// own. The penalty endpoints delegate the same check to the service.
func (h *adminRoutesHandler) requireAdmin(c echo.Context) (bool, error) {
	adminId := c.QueryParam("adminId")
	if adminId == "" {
		return false, c.JSON(http.StatusUnauthorized, errorResponse{"Please provide your user id"})
	}

	admin, err := h.userService.GetUserById(c.Request().Context(), adminId)
	if err != nil {
		return false, respondAdminError(c, err)
	}

	if admin.Role != common.RoleAdmin {
		return false, c.JSON(http.StatusForbidden, errorResponse{"Only administrators can perform this action"})
	}

	return true, nil
}

// /admin/cleanup
func (h *adminRoutesHandler) Cleanup(c echo.Context) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	summary, err := h.sweeperService.SweepExpired(c.Request().Context())
	if err == nil {
		if e := c.JSON(http.StatusOK, summary); e != nil {
			return e
		}

		return nil
	}

	return respondAdminError(c, err)
}

// /admin/resolve_auctions
func (h *adminRoutesHandler) ResolveAuctions(c echo.Context) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	summary, err := h.sweeperService.ResolveExpiredAuctions(c.Request().Context())
	if err == nil {
		if e := c.JSON(http.StatusOK, summary); e != nil {
			return e
		}

		return nil
	}

	return respondAdminError(c, err)
}

type postPenaltyInput struct {
	AdminId     string  `json:"adminId" validate:"required,max=100"`
	UserId      string  `json:"userId" validate:"required,max=100"`
	BidId       string  `json:"bidId" validate:"required,max=100"`
	ProductId   string  `json:"productId" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=deal_refusal fake_listing quality_issue"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Description string  `json:"description" validate:"required,max=1000"`
}

// /admin/penalties/new
func (h *adminRoutesHandler) PostPenalty(c echo.Context) error {
	var input postPenaltyInput
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

	model := &entity.CreatePenaltyInput{
		UserId:      input.UserId,
		BidId:       input.BidId,
		ProductId:   input.ProductId,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
	}

	penalty, err := h.penaltyService.ApplyPenalty(c.Request().Context(), input.AdminId, model)
	if err == nil {
		if e := c.JSON(http.StatusOK, penalty); e != nil {
			return e
		}

		return nil
	}

	return respondAdminError(c, err)
}

type getUserPenaltiesInput struct {
	UserId  string `param:"userId" validate:"required,max=100"`
	AdminId string `query:"adminId" validate:"required"`
	Limit   int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset  int32  `query:"offset" validate:"gte=0"`
}

// /admin/penalties/:userId
func (h *adminRoutesHandler) GetUserPenalties(c echo.Context) error {
	input := getUserPenaltiesInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.UserId = c.Param("userId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	penalties, err := h.penaltyService.GetUserPenalties(c.Request().Context(), input.AdminId, input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, penalties); e != nil {
			return e
		}

		return nil
	}

	return respondAdminError(c, err)
}

type resolvePenaltyInput struct {
	PenaltyId  string `param:"penaltyId" validate:"required,max=100"`
	AdminId    string `query:"adminId" validate:"required"`
	Resolution string `query:"resolution" validate:"required,oneof=paid waived"`
}

// /admin/penalties/:penaltyId/resolve
func (h *adminRoutesHandler) ResolvePenalty(c echo.Context) error {
	input := resolvePenaltyInput{
		PenaltyId:  c.Param("penaltyId"),
		AdminId:    c.QueryParam("adminId"),
		Resolution: c.QueryParam("resolution"),
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	penalty, err := h.penaltyService.ResolvePenalty(c.Request().Context(), input.AdminId, input.PenaltyId, input.Resolution)
	if err == nil {
		if e := c.JSON(http.StatusOK, penalty); e != nil {
			return e
		}

		return nil
	}

	return respondAdminError(c, err)
}
