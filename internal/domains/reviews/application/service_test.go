package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/reviews/domain"
)

type stubGateway struct {
	reviews   []domain.Review
	published map[string]bool
	replies   map[string]string
	err       error
}

func (s *stubGateway) List(context.Context, string) ([]domain.Review, error) {
	return s.reviews, s.err
}

func (s *stubGateway) SetPublished(_ context.Context, reviewID string, published bool) error {
	if s.published == nil {
		s.published = map[string]bool{}
	}
	s.published[reviewID] = published
	return s.err
}

func (s *stubGateway) Reply(_ context.Context, reviewID, message string) error {
	if s.replies == nil {
		s.replies = map[string]string{}
	}
	s.replies[reviewID] = message
	return s.err
}

func TestListRequiresRestaurant(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.List(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetPublishedDelegates(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	require.NoError(t, svc.SetPublished(context.Background(), "42", false))
	assert.Equal(t, map[string]bool{"42": false}, gw.published)
}

func TestReplyRequiresMessage(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	assert.ErrorIs(t, svc.Reply(context.Background(), "42", ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.Reply(context.Background(), "", "thanks"), ErrInvalidInput)

	require.NoError(t, svc.Reply(context.Background(), "42", "thanks for the feedback"))
	assert.Equal(t, "thanks for the feedback", gw.replies["42"])
}

func TestAverageRating(t *testing.T) {
	review := domain.Review{Food: 5, Service: 4, Value: 3}
	assert.InDelta(t, 4.0, review.AverageRating(), 0.0001)
}
