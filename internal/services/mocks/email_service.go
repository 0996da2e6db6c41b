package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	sendgrid_client "github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func NewEmailService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmailService {
	m := &EmailService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *EmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *EmailService) GetSendGridClient() *sendgrid_client.Client {
	args := m.Called()
	client, _ := args.Get(0).(*sendgrid_client.Client)
	return client
}
