package graphmail

import (
	"context"
	"fmt"
	"strings"

	"MarketLens/internal/domain/models"
	drepo "MarketLens/internal/domain/repository"
	xhttp "MarketLens/pkg/http"
)

// Client implements MailTransport against the Microsoft Graph sendMail API
// using client-credential OAuth2. Credentials are treated as opaque strings;
// the token endpoint is the authority on their validity.
type Client struct {
	http         *xhttp.Client
	tenantID     string
	clientID     string
	clientSecret string
	sender       string
	loginBase    string
	graphBase    string
}

// Option configures Client.
type Option func(*Client)

// New creates a Graph mail transport for the given sender mailbox.
func New(httpClient *xhttp.Client, tenantID, clientID, clientSecret, sender string, opts ...Option) drepo.MailTransport {
	c := &Client{
		http:         httpClient,
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		sender:       sender,
		loginBase:    "https://login.microsoftonline.com",
		graphBase:    "https://graph.microsoft.com/v1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLoginBase overrides the token endpoint base URL.
func WithLoginBase(u string) Option {
	return func(c *Client) {
		c.loginBase = strings.TrimRight(u, "/")
	}
}

// WithGraphBase overrides the Graph API base URL.
func WithGraphBase(u string) Option {
	return func(c *Client) {
		c.graphBase = strings.TrimRight(u, "/")
	}
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	var payload tokenPayload
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.loginBase, c.tenantID),
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
		},
		Body: map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
			"scope":         "https://graph.microsoft.com/.default",
		},
	}, &payload)
	if err != nil {
		return "", fmt.Errorf("graph token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("graph token: empty access_token in response")
	}
	return payload.AccessToken, nil
}

type sendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphBody        `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphRecipient struct {
	EmailAddress graphAddress `json:"emailAddress"`
}

type graphAddress struct {
	Address string `json:"address"`
}

// Send performs exactly one sendMail attempt on behalf of the configured
// sender. Retry policy, if any, belongs to callers further out.
func (c *Client) Send(ctx context.Context, msg *models.MailMessage) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	contentType := msg.ContentType
	if contentType == "" {
		contentType = "HTML"
	}

	body := sendMailRequest{
		Message: graphMessage{
			Subject: msg.Subject,
			Body: graphBody{
				ContentType: contentType,
				Content:     msg.Body,
			},
			ToRecipients: []graphRecipient{
				{EmailAddress: graphAddress{Address: msg.To}},
			},
		},
		SaveToSentItems: false,
	}

	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    fmt.Sprintf("%s/users/%s/sendMail", c.graphBase, c.sender),
		Headers: map[string]string{
			"Authorization": "Bearer " + tok,
			"Content-Type":  "application/json",
		},
		Body: body,
	}, nil)
	if err != nil {
		return fmt.Errorf("graph sendMail: %w", err)
	}
	return nil
}
