package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/require"
)

// bidServiceStub lets each test pin the behavior of a single operation;
// unused operations panic so accidental route matches fail loudly.
type bidServiceStub struct {
	placeBid   func(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	transition func(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error)
	list       func(ctx context.Context) ([]entity.BidOutputModel, error)
}

func (s *bidServiceStub) PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	return s.placeBid(ctx, input)
}

func (s *bidServiceStub) AcceptBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) RejectBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) ConfirmBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) AbandonBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) WithdrawBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) CompleteBid(ctx context.Context, bidId, userId string) (*entity.BidOutputModel, error) {
	return s.transition(ctx, bidId, userId)
}

func (s *bidServiceStub) GetUserBids(ctx context.Context, buyerId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	return s.list(ctx)
}

func (s *bidServiceStub) GetProductBids(ctx context.Context, productId, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	return s.list(ctx)
}

func newBidTestServer(stub *bidServiceStub) *echo.Echo {
	handler := echo.New()
	SetupRoutesHandlers(handler, &service.Services{Bid: stub})
	return handler
}

func performRequest(t *testing.T, handler *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPostBid(t *testing.T) {
	productId := uuid.New().String()
	buyerId := uuid.New().String()

	t.Run("valid_input_returns_created_bid", func(t *testing.T) {
		stub := &bidServiceStub{
			placeBid: func(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
				require.Equal(t, productId, input.ProductId)
				require.Equal(t, buyerId, input.BuyerId)
				require.Equal(t, 1200.0, input.Amount)
				return &entity.BidOutputModel{Id: uuid.New().String(), Status: common.BidPending, Amount: input.Amount}, nil
			},
		}

		body := `{"productId":"` + productId + `","buyerId":"` + buyerId + `","amount":1200}`
		rec := performRequest(t, newBidTestServer(stub), http.MethodPost, "/api/bids/new", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.BidOutputModel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Equal(t, common.BidPending, out.Status)
	})

	t.Run("missing_amount_rejected", func(t *testing.T) {
		body := `{"productId":"` + productId + `","buyerId":"` + buyerId + `"}`
		rec := performRequest(t, newBidTestServer(&bidServiceStub{}), http.MethodPost, "/api/bids/new", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed_json_rejected", func(t *testing.T) {
		rec := performRequest(t, newBidTestServer(&bidServiceStub{}), http.MethodPost, "/api/bids/new", `{"amount":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("suspended_buyer_gets_forbidden", func(t *testing.T) {
		stub := &bidServiceStub{
			placeBid: func(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
				return nil, service.ErrUserSuspended
			},
		}

		body := `{"productId":"` + productId + `","buyerId":"` + buyerId + `","amount":700}`
		rec := performRequest(t, newBidTestServer(stub), http.MethodPost, "/api/bids/new", body)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("closed_window_gets_conflict", func(t *testing.T) {
		stub := &bidServiceStub{
			placeBid: func(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
				return nil, service.ErrBiddingWindowClosed
			},
		}

		body := `{"productId":"` + productId + `","buyerId":"` + buyerId + `","amount":700}`
		rec := performRequest(t, newBidTestServer(stub), http.MethodPost, "/api/bids/new", body)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBidTransitionEndpoints(t *testing.T) {
	bidId := uuid.New().String()
	userId := uuid.New().String()

	tests := []struct {
		name         string
		path         string
		serviceErr   error
		expectedCode int
	}{
		{"accept_ok", "accept", nil, http.StatusOK},
		{"accept_wrong_state", "accept", service.ErrWrongBidState, http.StatusConflict},
		{"accept_not_owner", "accept", service.ErrNotProductOwner, http.StatusForbidden},
		{"reject_ok", "reject", nil, http.StatusOK},
		{"confirm_expired", "confirm", service.ErrConfirmationExpired, http.StatusConflict},
		{"confirm_not_bid_owner", "confirm", service.ErrNotBidOwner, http.StatusForbidden},
		{"abandon_ok", "abandon", nil, http.StatusOK},
		{"withdraw_unknown_bid", "withdraw", service.ErrBidNotFound, http.StatusNotFound},
		{"complete_ok", "complete", nil, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &bidServiceStub{
				transition: func(ctx context.Context, gotBidId, gotUserId string) (*entity.BidOutputModel, error) {
					require.Equal(t, bidId, gotBidId)
					require.Equal(t, userId, gotUserId)
					if tc.serviceErr != nil {
						return nil, tc.serviceErr
					}
					return &entity.BidOutputModel{Id: gotBidId}, nil
				},
			}

			target := "/api/bids/" + bidId + "/" + tc.path + "?userId=" + userId
			rec := performRequest(t, newBidTestServer(stub), http.MethodPut, target, "")
			require.Equal(t, tc.expectedCode, rec.Code)
		})
	}

	t.Run("missing_acting_user_rejected", func(t *testing.T) {
		rec := performRequest(t, newBidTestServer(&bidServiceStub{}), http.MethodPut, "/api/bids/"+bidId+"/accept", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserBids(t *testing.T) {
	userId := uuid.New().String()

	t.Run("missing_user_id_is_unauthorized", func(t *testing.T) {
		rec := performRequest(t, newBidTestServer(&bidServiceStub{}), http.MethodGet, "/api/bids/my", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns_bid_page", func(t *testing.T) {
		stub := &bidServiceStub{
			list: func(ctx context.Context) ([]entity.BidOutputModel, error) {
				return []entity.BidOutputModel{{Id: uuid.New().String(), Status: common.BidPending}}, nil
			},
		}

		rec := performRequest(t, newBidTestServer(stub), http.MethodGet, "/api/bids/my?userId="+userId, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out []entity.BidOutputModel
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 1)
	})

	t.Run("oversized_limit_rejected", func(t *testing.T) {
		rec := performRequest(t, newBidTestServer(&bidServiceStub{}), http.MethodGet, "/api/bids/my?userId="+userId+"&limit=500", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
