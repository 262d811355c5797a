package push

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrInvalidToken reports that the delivery service rejected the device
// token as structurally invalid. Every other delivery failure is returned
// as a plain error and surfaces as a server-side failure.
var ErrInvalidToken = errors.New("invalid device token")

type Message struct {
	Token     string
	Title     string
	Body      string
	ChannelID string
}

type Sender interface {
	Send(ctx context.Context, message Message) error
}

type notificationPayload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	ChannelID string `json:"channel_id"`
}

type androidConfigPayload struct {
	Priority     string              `json:"priority"`
	Notification notificationPayload `json:"notification"`
}

type messagePayload struct {
	Token   string               `json:"token"`
	Android androidConfigPayload `json:"android"`
}

type sendRequest struct {
	Message messagePayload `json:"message"`
}

type errorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

// Client delivers notifications through an FCM-style HTTP endpoint.
// Construct it once at startup and inject it into the handlers.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewClient(endpoint string, serverKey string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(serverKey)

	return &Client{httpClient: httpClient, logger: logger}
}

// Send pushes one high-priority notification. A 400 INVALID_ARGUMENT from
// the delivery service maps to ErrInvalidToken.
func (client *Client) Send(ctx context.Context, message Message) error {
	request := sendRequest{
		Message: messagePayload{
			Token: message.Token,
			Android: androidConfigPayload{
				Priority: "high",
				Notification: notificationPayload{
					Title:     message.Title,
					Body:      message.Body,
					ChannelID: message.ChannelID,
				},
			},
		},
	}

	var failure errorResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetError(&failure).
		Post("")
	if err != nil {
		client.logger.Error("push delivery request failed", zap.Error(err))
		return fmt.Errorf("push delivery request: %w", err)
	}

	if response.IsError() {
		if response.StatusCode() == 400 && failure.Error.Status == "INVALID_ARGUMENT" {
			client.logger.Warn("push delivery rejected device token",
				zap.String("detail", failure.Error.Message),
			)
			return ErrInvalidToken
		}
		client.logger.Error("push delivery failed",
			zap.Int("status_code", response.StatusCode()),
			zap.String("detail", failure.Error.Message),
		)
		return fmt.Errorf("push delivery failed with status %d", response.StatusCode())
	}

	return nil
}
