package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
)

type stubGateway struct {
	queries []ports.Query
	created []domain.NewTicket
}

func (s *stubGateway) List(_ context.Context, q ports.Query) ([]domain.Ticket, error) {
	s.queries = append(s.queries, q)
	return []domain.Ticket{}, nil
}

func (s *stubGateway) Create(_ context.Context, ticket domain.NewTicket) error {
	s.created = append(s.created, ticket)
	return nil
}

func TestListAppliesDefaultLimit(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	_, err := svc.List(context.Background(), ports.Query{UserID: "7"})

	require.NoError(t, err)
	require.Len(t, gw.queries, 1)
	assert.Equal(t, DefaultLimit, gw.queries[0].Limit)
}

func TestListRequiresUser(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.List(context.Background(), ports.Query{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequiresMessage(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw)

	err := svc.Create(context.Background(), domain.NewTicket{UserID: "7"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Create(context.Background(), domain.NewTicket{UserID: "7", Message: "order issue"})
	require.NoError(t, err)
	require.Len(t, gw.created, 1)
	assert.Equal(t, "order issue", gw.created[0].Message)
}
