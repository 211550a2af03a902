package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/events"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

func TestCreateInquiry(t *testing.T) {
	inquiries := newFakeInquiryRepo()
	properties := newFakePropertyRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventInquiryReceived, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	svc := NewInquiryService(inquiries, properties, dispatcher, zap.NewNop())

	inquiry, err := svc.Create(context.Background(), InquiryInput{
		Name:    "  Curious Buyer ",
		Email:   "Buyer@Example.com",
		Message: "Is the garage heated?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Curious Buyer", inquiry.Name)
	assert.Equal(t, "buyer@example.com", inquiry.Email)
	assert.Equal(t, domain.InquiryStatusNew, inquiry.Status)
	assert.Nil(t, inquiry.PropertyID)
	require.Len(t, received, 1)
	assert.Equal(t, inquiry.ID, received[0].Subject)
}

func TestCreateInquiryReportsAllMissingFields(t *testing.T) {
	svc := NewInquiryService(newFakeInquiryRepo(), newFakePropertyRepo(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), InquiryInput{Phone: "555"})
	requireStatus(t, err, 400)
	details := toDetails(t, err)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "message")
}

func TestCreateInquiryVerifiesPropertyReference(t *testing.T) {
	inquiries := newFakeInquiryRepo()
	properties := newFakePropertyRepo()
	svc := NewInquiryService(inquiries, properties, nil, zap.NewNop())
	ctx := context.Background()

	unknown := "missing-property"
	_, err := svc.Create(ctx, InquiryInput{Name: "B", Email: "b@x.com", Message: "hi", PropertyID: &unknown})
	requireStatus(t, err, 400)

	listing := &domain.Property{Title: "Real", Description: "d", Price: 1, PropertyType: domain.PropertyTypeHouse, Status: domain.StatusForSale, AgentID: "a"}
	require.NoError(t, properties.Create(ctx, listing))

	inquiry, err := svc.Create(ctx, InquiryInput{Name: "B", Email: "b@x.com", Message: "hi", PropertyID: &listing.ID})
	require.NoError(t, err)
	require.NotNil(t, inquiry.PropertyID)
	assert.Equal(t, listing.ID, *inquiry.PropertyID)
}

func TestUpdateInquiryStatus(t *testing.T) {
	inquiries := newFakeInquiryRepo()
	svc := NewInquiryService(inquiries, newFakePropertyRepo(), nil, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, InquiryInput{Name: "B", Email: "b@x.com", Message: "hi"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "archived")
	requireStatus(t, err, 400)

	_, err = svc.UpdateStatus(ctx, "no-such-id", domain.InquiryStatusRead)
	requireStatus(t, err, 404)

	updated, err := svc.UpdateStatus(ctx, created.ID, domain.InquiryStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusReplied, updated.Status)
}

func TestDashboardStats(t *testing.T) {
	users := newFakeUserRepo()
	properties := newFakePropertyRepo()
	inquiries := newFakeInquiryRepo()
	ctx := context.Background()

	propertySvc := newTestPropertyService(users, properties)
	inquirySvc := NewInquiryService(inquiries, properties, nil, zap.NewNop())
	agent := newTestAgent(t, users, "owner")
	require.NoError(t, users.Create(ctx, &domain.User{Name: "Visitor", Email: "visitor@x.com", Role: domain.RoleUser, Active: true}))

	for _, status := range []domain.ListingStatus{domain.StatusForSale, domain.StatusForSale, domain.StatusForRent, domain.StatusSold} {
		input := listingInput("Inventory " + string(status))
		input.Status = status
		_, err := propertySvc.Create(ctx, agent, input)
		require.NoError(t, err)
	}

	first, err := inquirySvc.Create(ctx, InquiryInput{Name: "A", Email: "a@x.com", Message: "one"})
	require.NoError(t, err)
	_, err = inquirySvc.Create(ctx, InquiryInput{Name: "B", Email: "b@x.com", Message: "two"})
	require.NoError(t, err)
	_, err = inquirySvc.UpdateStatus(ctx, first.ID, domain.InquiryStatusRead)
	require.NoError(t, err)

	stats, err := NewDashboardService(properties, inquiries, users).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalProperties)
	assert.Equal(t, int64(2), stats.PropertiesForSale)
	assert.Equal(t, int64(1), stats.PropertiesForRent)
	assert.Equal(t, int64(1), stats.SoldProperties)
	assert.Equal(t, int64(2), stats.TotalInquiries)
	assert.Equal(t, int64(1), stats.NewInquiries)
	assert.Equal(t, int64(1), stats.TotalUsers)
}

func toDetails(t *testing.T, err error) map[string]any {
	t.Helper()
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	require.NotNil(t, domainErr.Details)
	return domainErr.Details
}
