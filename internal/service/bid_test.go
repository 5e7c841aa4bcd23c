package service

import (
	"context"
	"testing"
	"time"

	"agromarket-api/internal/common"
	"agromarket-api/internal/entity"
	"agromarket-api/internal/events"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/repo/repo_errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type bidServiceMocks struct {
	bid          *repo.MockBid
	product      *repo.MockProduct
	user         *repo.MockUser
	penalty      *repo.MockPenalty
	notification *repo.MockNotification
}

func newBidServiceEnv(t *testing.T) (*BidService, *bidServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &bidServiceMocks{
		bid:          repo.NewMockBid(ctrl),
		product:      repo.NewMockProduct(ctrl),
		user:         repo.NewMockUser(ctrl),
		penalty:      repo.NewMockPenalty(ctrl),
		notification: repo.NewMockNotification(ctrl),
	}

	repos := &repo.Repositories{
		Bid:          m.bid,
		Product:      m.product,
		User:         m.user,
		Penalty:      m.penalty,
		Notification: m.notification,
	}

	penalty := NewPenaltyService(repos, Config{SuspensionResetOnApply: true})
	service := NewBidService(repos, penalty, events.NopPublisher{})

	return service, m
}

func buyerUser(id uuid.UUID) *entity.User {
	return &entity.User{Id: id, Name: "রফিক", Role: common.RoleBuyer}
}

func testBid(id, productId, buyerId uuid.UUID, status string) *entity.Bid {
	return &entity.Bid{
		Id:        id,
		ProductId: productId,
		BuyerId:   buyerId,
		Amount:    1200,
		Status:    status,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func testProduct(id, sellerId uuid.UUID) *entity.Product {
	return &entity.Product{
		Id:        id,
		SellerId:  sellerId,
		Title:     "দেশি আলু",
		Price:     1000,
		Quantity:  50,
		Unit:      "kg",
		CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
	}
}

func TestBidService_PlaceBid(t *testing.T) {
	buyerId := uuid.New()
	sellerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name        string
		input       *entity.CreateBidInput
		mockSetup   func(m *bidServiceMocks)
		expectedErr error
	}{
		{
			name:  "valid_bid",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 1200},
			mockSetup: func(m *bidServiceMocks) {
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(buyerUser(buyerId), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
				m.bid.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidId, nil)
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
			},
		},
		{
			name:        "non_positive_amount",
			input:       &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 0},
			mockSetup:   func(m *bidServiceMocks) {},
			expectedErr: ErrInvalidBidAmount,
		},
		{
			name:  "unknown_buyer",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(nil, repo_errors.ErrNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:  "suspended_buyer",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				suspended := buyerUser(buyerId)
				suspended.BidSuspensionUntil = &future
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(suspended, nil)
			},
			expectedErr: ErrUserSuspended,
		},
		{
			name:  "expired_suspension_allows_bidding",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				released := buyerUser(buyerId)
				released.BidSuspensionUntil = &past
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(released, nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
				m.bid.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(bidId, nil)
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
			},
		},
		{
			name:  "unknown_product",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(buyerUser(buyerId), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(nil, repo_errors.ErrNotFound)
			},
			expectedErr: ErrProductNotFound,
		},
		{
			name:  "own_product",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(buyerUser(buyerId), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, buyerId), nil)
			},
			expectedErr: ErrOwnProductBid,
		},
		{
			name:  "bidding_window_not_started",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				product := testProduct(productId, sellerId)
				product.BiddingStart = &future
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(buyerUser(buyerId), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(product, nil)
			},
			expectedErr: ErrBiddingWindowClosed,
		},
		{
			name:  "bidding_deadline_passed",
			input: &entity.CreateBidInput{ProductId: productId.String(), BuyerId: buyerId.String(), Amount: 500},
			mockSetup: func(m *bidServiceMocks) {
				product := testProduct(productId, sellerId)
				product.BiddingDeadline = &past
				m.user.EXPECT().GetUserById(gomock.Any(), buyerId.String()).Return(buyerUser(buyerId), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(product, nil)
			},
			expectedErr: ErrBiddingWindowClosed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newBidServiceEnv(t)
			tc.mockSetup(m)

			out, err := service.PlaceBid(context.Background(), tc.input)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Nil(t, out)
				return
			}

			require.NoError(t, err)
			require.Equal(t, common.BidPending, out.Status)
		})
	}
}

func TestBidService_AcceptBid(t *testing.T) {
	sellerId := uuid.New()
	buyerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	tests := []struct {
		name        string
		actingUser  string
		mockSetup   func(m *bidServiceMocks)
		expectedErr error
	}{
		{
			name:       "pending_bid_accepted",
			actingUser: sellerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				deadline := time.Now().UTC().Add(ConfirmationWindow)
				accepted := testBid(bidId, productId, buyerId, common.BidAccepted)
				accepted.ConfirmationDeadline = &deadline

				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
				m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidPending, common.BidAccepted, gomock.Any()).Return(true, nil)
				m.notification.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(accepted, nil)
			},
		},
		{
			name:       "not_product_owner",
			actingUser: uuid.New().String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
			},
			expectedErr: ErrNotProductOwner,
		},
		{
			name:       "already_accepted",
			actingUser: sellerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
			},
			expectedErr: ErrWrongBidState,
		},
		{
			name:       "terminal_bid",
			actingUser: sellerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidWithdrawn), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
			},
			expectedErr: ErrWrongBidState,
		},
		{
			name:       "lost_race",
			actingUser: sellerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
				m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidPending, common.BidAccepted, gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrWrongBidState,
		},
		{
			name:       "bid_not_found",
			actingUser: sellerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(nil, repo_errors.ErrNotFound)
			},
			expectedErr: ErrBidNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newBidServiceEnv(t)
			tc.mockSetup(m)

			out, err := service.AcceptBid(context.Background(), bidId.String(), tc.actingUser)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, common.BidAccepted, out.Status)
			require.NotEmpty(t, out.ConfirmationDeadline)
		})
	}
}

func TestBidService_ConfirmBid(t *testing.T) {
	sellerId := uuid.New()
	buyerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	future := time.Now().UTC().Add(time.Hour)
	past := time.Now().UTC().Add(-time.Minute)

	tests := []struct {
		name        string
		actingUser  string
		mockSetup   func(m *bidServiceMocks)
		expectedErr error
	}{
		{
			name:       "confirmed_inside_window",
			actingUser: buyerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				accepted := testBid(bidId, productId, buyerId, common.BidAccepted)
				accepted.ConfirmationDeadline = &future
				confirmedAt := time.Now().UTC()
				confirmed := testBid(bidId, productId, buyerId, common.BidConfirmed)
				confirmed.ConfirmationDeadline = &future
				confirmed.ConfirmedAt = &confirmedAt

				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(accepted, nil)
				m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidAccepted, common.BidConfirmed, gomock.Any()).Return(true, nil)
				m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
				m.notification.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(confirmed, nil)
			},
		},
		{
			name:       "deadline_passed",
			actingUser: buyerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				accepted := testBid(bidId, productId, buyerId, common.BidAccepted)
				accepted.ConfirmationDeadline = &past
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(accepted, nil)
			},
			expectedErr: ErrConfirmationExpired,
		},
		{
			name:       "not_bid_owner",
			actingUser: uuid.New().String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)
			},
			expectedErr: ErrNotBidOwner,
		},
		{
			name:       "still_pending",
			actingUser: buyerId.String(),
			mockSetup: func(m *bidServiceMocks) {
				m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
			},
			expectedErr: ErrWrongBidState,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newBidServiceEnv(t)
			tc.mockSetup(m)

			out, err := service.ConfirmBid(context.Background(), bidId.String(), tc.actingUser)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, common.BidConfirmed, out.Status)
			require.NotEmpty(t, out.ConfirmedAt)
		})
	}
}

func TestBidService_AbandonBid(t *testing.T) {
	buyerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	t.Run("abandoned_below_threshold", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		abandonedAt := time.Now().UTC()
		abandoned := testBid(bidId, productId, buyerId, common.BidAbandoned)
		abandoned.AbandonedAt = &abandonedAt

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)
		m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidAccepted, common.BidAbandoned, gomock.Any()).Return(true, nil)
		m.user.EXPECT().IncrementAbandonCount(gomock.Any(), buyerId.String()).Return(1, nil)
		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(abandoned, nil)

		out, err := service.AbandonBid(context.Background(), bidId.String(), buyerId.String())
		require.NoError(t, err)
		require.Equal(t, common.BidAbandoned, out.Status)
	})

	t.Run("third_abandonment_suspends", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		abandoned := testBid(bidId, productId, buyerId, common.BidAbandoned)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)
		m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidAccepted, common.BidAbandoned, gomock.Any()).Return(true, nil)
		m.user.EXPECT().IncrementAbandonCount(gomock.Any(), buyerId.String()).Return(3, nil)
		m.user.EXPECT().ApplySuspension(gomock.Any(), buyerId.String(), gomock.Any(), true).Return(true, nil)
		m.notification.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(abandoned, nil)

		out, err := service.AbandonBid(context.Background(), bidId.String(), buyerId.String())
		require.NoError(t, err)
		require.Equal(t, common.BidAbandoned, out.Status)
	})

	t.Run("pending_bid_cannot_be_abandoned", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)

		_, err := service.AbandonBid(context.Background(), bidId.String(), buyerId.String())
		require.ErrorIs(t, err, ErrWrongBidState)
	})
}

func TestBidService_WithdrawBid(t *testing.T) {
	buyerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	t.Run("pending_bid_withdrawn", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidPending), nil)
		m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidPending, common.BidWithdrawn, nil).Return(true, nil)
		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidWithdrawn), nil)

		out, err := service.WithdrawBid(context.Background(), bidId.String(), buyerId.String())
		require.NoError(t, err)
		require.Equal(t, common.BidWithdrawn, out.Status)
	})

	t.Run("accepted_bid_cannot_be_withdrawn", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)

		_, err := service.WithdrawBid(context.Background(), bidId.String(), buyerId.String())
		require.ErrorIs(t, err, ErrWrongBidState)
	})
}

func TestBidService_CompleteBid(t *testing.T) {
	sellerId := uuid.New()
	buyerId := uuid.New()
	productId := uuid.New()
	bidId := uuid.New()

	t.Run("confirmed_bid_completed", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidConfirmed), nil)
		m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
		m.bid.EXPECT().UpdateBidStatusIfCurrent(gomock.Any(), bidId.String(), common.BidConfirmed, common.BidCompleted, nil).Return(true, nil)
		m.notification.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidCompleted), nil)

		out, err := service.CompleteBid(context.Background(), bidId.String(), sellerId.String())
		require.NoError(t, err)
		require.Equal(t, common.BidCompleted, out.Status)
	})

	t.Run("accepted_bid_cannot_be_completed", func(t *testing.T) {
		service, m := newBidServiceEnv(t)

		m.bid.EXPECT().GetBidById(gomock.Any(), bidId.String()).Return(testBid(bidId, productId, buyerId, common.BidAccepted), nil)
		m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)

		_, err := service.CompleteBid(context.Background(), bidId.String(), sellerId.String())
		require.ErrorIs(t, err, ErrWrongBidState)
	})
}

func TestBidService_GetProductBids(t *testing.T) {
	sellerId := uuid.New()
	productId := uuid.New()

	tests := []struct {
		name        string
		requester   *entity.User
		mockSetup   func(m *bidServiceMocks, requester *entity.User)
		expectedErr error
	}{
		{
			name:      "seller_sees_own_product_bids",
			requester: &entity.User{Id: sellerId, Role: common.RoleSeller},
			mockSetup: func(m *bidServiceMocks, requester *entity.User) {
				m.bid.EXPECT().GetProductBids(gomock.Any(), productId.String(), gomock.Any()).Return([]entity.Bid{}, nil)
			},
		},
		{
			name:      "admin_sees_any_product_bids",
			requester: &entity.User{Id: uuid.New(), Role: common.RoleAdmin},
			mockSetup: func(m *bidServiceMocks, requester *entity.User) {
				m.bid.EXPECT().GetProductBids(gomock.Any(), productId.String(), gomock.Any()).Return([]entity.Bid{}, nil)
			},
		},
		{
			name:        "stranger_denied",
			requester:   &entity.User{Id: uuid.New(), Role: common.RoleBuyer},
			mockSetup:   func(m *bidServiceMocks, requester *entity.User) {},
			expectedErr: ErrNoAccessToBids,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newBidServiceEnv(t)

			m.product.EXPECT().GetProductById(gomock.Any(), productId.String()).Return(testProduct(productId, sellerId), nil)
			m.user.EXPECT().GetUserById(gomock.Any(), tc.requester.Id.String()).Return(tc.requester, nil)
			tc.mockSetup(m, tc.requester)

			pg := entity.NewPaginationInput(5, 0)
			_, err := service.GetProductBids(context.Background(), productId.String(), tc.requester.Id.String(), pg)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
