package controller

import (
	"net/http"
	"time"

	"agromarket-api/internal/entity"
	"agromarket-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type productRoutesHandler struct {
	productService service.Product
	validate       *validator.Validate
}

func newProductRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *productRoutesHandler {
	h := &productRoutesHandler{productService: services.Product, validate: v}
	outer.POST("/products/new", h.PostProduct)
	outer.GET("/products", h.GetLatestProducts)
	outer.GET("/products/my", h.GetSellerProducts)
	outer.GET("/products/:productId", h.GetProduct)

	return h
}

func respondProductError(c echo.Context, err error) error {
	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrUserIsNotSeller:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only sellers can list products"}); e != nil {
			return e
		}
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBiddingWindow:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Bidding start must precede bidding deadline"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postProductInput struct {
	SellerId        string   `json:"sellerId" validate:"required,max=100"`
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required,max=2000"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Quantity        float64  `json:"quantity" validate:"required,gt=0"`
	Unit            string   `json:"unit" validate:"required,max=20"`
	Location        string   `json:"location" validate:"required,max=200"`
	Category        string   `json:"category" validate:"required,max=50"`
	ImageUrls       []string `json:"imageUrls" validate:"max=10"`
	VideoUrl        string   `json:"videoUrl" validate:"omitempty,max=500"`
	BiddingStart    string   `json:"biddingStart" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	BiddingDeadline string   `json:"biddingDeadline" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// /products/new
func (h *productRoutesHandler) PostProduct(c echo.Context) error {
	var input postProductInput
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

	model := &entity.CreateProductInput{
		SellerId:    input.SellerId,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Location:    input.Location,
		Category:    input.Category,
		ImageUrls:   input.ImageUrls,
	}
	if input.VideoUrl != "" {
		model.VideoUrl = &input.VideoUrl
	}
	if input.BiddingStart != "" {
		start, _ := time.Parse(time.RFC3339, input.BiddingStart)
		model.BiddingStart = &start
	}
	if input.BiddingDeadline != "" {
		deadline, _ := time.Parse(time.RFC3339, input.BiddingDeadline)
		model.BiddingDeadline = &deadline
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, product); e != nil {
			return e
		}

		return nil
	}

	return respondProductError(c, err)
}

type getLatestProductsInput struct {
	Category string `query:"category" validate:"omitempty,max=50"`
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
}

// /products
func (h *productRoutesHandler) GetLatestProducts(c echo.Context) error {
	input := getLatestProductsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	products, err := h.productService.GetLatestProducts(c.Request().Context(), input.Category, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, products); e != nil {
			return e
		}

		return nil
	}

	return respondProductError(c, err)
}

type getSellerProductsInput struct {
	UserId string `query:"userId" validate:"required"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

// /products/my
func (h *productRoutesHandler) GetSellerProducts(c echo.Context) error {
	input := getSellerProductsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	products, err := h.productService.GetSellerProducts(c.Request().Context(), input.UserId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, products); e != nil {
			return e
		}

		return nil
	}

	return respondProductError(c, err)
}

// /products/:productId
func (h *productRoutesHandler) GetProduct(c echo.Context) error {
	productId := c.Param("productId")
	if productId == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Please provide a product id"}); e != nil {
			return e
		}

		return nil
	}

	product, err := h.productService.GetProductById(c.Request().Context(), productId)
	if err == nil {
		if e := c.JSON(http.StatusOK, product); e != nil {
			return e
		}

		return nil
	}

	return respondProductError(c, err)
}
