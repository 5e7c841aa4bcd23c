package controller

import (
	"net/http"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type notificationRoutesHandler struct {
	notificationService service.Notification
	validate            *validator.Validate
}

func newNotificationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *notificationRoutesHandler {
	h := &notificationRoutesHandler{notificationService: services.Notification, validate: v}
	outer.GET("/notifications/my", h.GetUserNotifications)
	outer.PUT("/notifications/:notificationId/read", h.MarkRead)
	outer.PUT("/notifications/read_all", h.MarkAllRead)

	return h
}

func respondNotificationError(c echo.Context, err error) error {
	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrNotificationNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no such notification for this user"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getNotificationsInput struct {
	UserId string `query:"userId" validate:"required"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

// /notifications/my
func (h *notificationRoutesHandler) GetUserNotifications(c echo.Context) error {
	input := getNotificationsInput{Limit: defaultLimit, Offset: defaultOffset}
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

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	feed, err := h.notificationService.GetUserNotifications(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, feed); e != nil {
			return e
		}

		return nil
	}

	return respondNotificationError(c, err)
}

type markReadInput struct {
	NotificationId string `param:"notificationId" validate:"required,max=100"`
	UserId         string `query:"userId" validate:"required"`
}

// /notifications/:notificationId/read
func (h *notificationRoutesHandler) MarkRead(c echo.Context) error {
	input := markReadInput{
		NotificationId: c.Param("notificationId"),
		UserId:         c.QueryParam("userId"),
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	err := h.notificationService.MarkRead(c.Request().Context(), input.NotificationId, input.UserId)
	if err == nil {
		if e := c.NoContent(http.StatusOK); e != nil {
			return e
		}

		return nil
	}

	return respondNotificationError(c, err)
}

// /notifications/read_all
func (h *notificationRoutesHandler) MarkAllRead(c echo.Context) error {
	userId := c.QueryParam("userId")
	if userId == "" {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Please provide your user id"}); e != nil {
			return e
		}

		return nil
	}

	marked, err := h.notificationService.MarkAllRead(c.Request().Context(), userId)
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]int{"marked": marked}); e != nil {
			return e
		}

		return nil
	}

	return respondNotificationError(c, err)
}
