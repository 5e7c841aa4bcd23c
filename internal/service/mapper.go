package service

import (
	"time"

	"agromarket-api/internal/entity"
)

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return fmtTime(*t)
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:                   b.Id.String(),
		ProductId:            b.ProductId.String(),
		BuyerId:              b.BuyerId.String(),
		Amount:               b.Amount,
		Status:               b.Status,
		CreatedAt:            fmtTime(b.CreatedAt),
		ConfirmationDeadline: fmtTimePtr(b.ConfirmationDeadline),
		ConfirmedAt:          fmtTimePtr(b.ConfirmedAt),
		AbandonedAt:          fmtTimePtr(b.AbandonedAt),
	}
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapProduct(p *entity.Product) *entity.ProductOutputModel {
	return &entity.ProductOutputModel{
		Id:              p.Id.String(),
		SellerId:        p.SellerId.String(),
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Location:        p.Location,
		Category:        p.Category,
		ImageUrls:       p.ImageUrls,
		VideoUrl:        strPtr(p.VideoUrl),
		BiddingStart:    fmtTimePtr(p.BiddingStart),
		BiddingDeadline: fmtTimePtr(p.BiddingDeadline),
		CreatedAt:       fmtTime(p.CreatedAt),
	}
}

func mapProducts(products []entity.Product) []entity.ProductOutputModel {
	s := make([]entity.ProductOutputModel, 0)
	for _, product := range products {
		s = append(s, *mapProduct(&product))
	}

	return s
}

func mapPenalty(p *entity.Penalty) *entity.PenaltyOutputModel {
	return &entity.PenaltyOutputModel{
		Id:          p.Id.String(),
		UserId:      p.UserId.String(),
		BidId:       p.BidId.String(),
		ProductId:   p.ProductId.String(),
		Type:        p.Type,
		Amount:      p.Amount,
		Description: p.Description,
		Status:      p.Status,
		AppliedAt:   fmtTime(p.AppliedAt),
		ResolvedAt:  fmtTimePtr(p.ResolvedAt),
	}
}

func mapPenalties(penalties []entity.Penalty) []entity.PenaltyOutputModel {
	s := make([]entity.PenaltyOutputModel, 0)
	for _, penalty := range penalties {
		s = append(s, *mapPenalty(&penalty))
	}

	return s
}

func mapNotification(n *entity.Notification) *entity.NotificationOutputModel {
	return &entity.NotificationOutputModel{
		Id:        n.Id.String(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		Metadata:  n.Metadata,
		CreatedAt: fmtTime(n.CreatedAt),
	}
}

func mapNotifications(notifications []entity.Notification) []entity.NotificationOutputModel {
	s := make([]entity.NotificationOutputModel, 0)
	for _, notification := range notifications {
		s = append(s, *mapNotification(&notification))
	}

	return s
}

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:                 u.Id.String(),
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Phone:              u.Phone,
		Address:            u.Address,
		AvatarUrl:          strPtr(u.AvatarUrl),
		Rating:             u.Rating,
		ReviewCount:        u.ReviewCount,
		AbandonCount:       u.AbandonCount,
		BidSuspensionUntil: fmtTimePtr(u.BidSuspensionUntil),
		CreatedAt:          fmtTime(u.CreatedAt),
	}
}
