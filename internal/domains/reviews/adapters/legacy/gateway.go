// Package legacy adapts the back-office review operations to the reviews
// outbound port.
package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway talks to the back-office for review listings and moderation.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// List fetches and maps the customer reviews.
func (g *Gateway) List(ctx context.Context, restaurantID string) ([]domain.Review, error) {
	payload, err := g.client.Reviews(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if payload == nil || !payload.Status.OK() {
		return []domain.Review{}, nil
	}
	reviews := make([]domain.Review, 0, len(payload.Data))
	for _, row := range payload.Data {
		review := domain.Review{
			ID:        row.ID.Str(),
			Name:      row.Name.Str(),
			Email:     row.Email.Str(),
			Food:      row.QualityOfFood.Int(),
			Service:   row.QualityOfService.Int(),
			Value:     row.ValueOfMoney.Int(),
			Comment:   row.ReviewComment.Str(),
			Published: row.Status.Str() == "1",
		}
		for _, reply := range row.Reply {
			review.Replies = append(review.Replies, domain.Reply{
				ID:      reply.ID.Str(),
				Author:  reply.ReplyBy.Str(),
				Message: reply.ReplyMsg.Str(),
			})
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// SetPublished publishes or hides a review.
func (g *Gateway) SetPublished(ctx context.Context, reviewID string, published bool) error {
	ack, err := g.client.SetReviewStatus(ctx, reviewID, published)
	return ackError(ack, err)
}

// Reply posts a restaurant reply to a review.
func (g *Gateway) Reply(ctx context.Context, reviewID, message string) error {
	ack, err := g.client.ReplyReview(ctx, reviewID, message)
	return ackError(ack, err)
}

func ackError(ack *legacyclient.AckPayload, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	if ack != nil && !ack.Status.OK() {
		msg := ack.Text()
		if msg == "" {
			msg = "operation rejected"
		}
		return fmt.Errorf("%w: %s", sharederrors.ErrBadRequest, msg)
	}
	return nil
}

var _ ports.Gateway = (*Gateway)(nil)
