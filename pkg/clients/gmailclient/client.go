package gmailclient

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/Totix777/hauswirtschaft/internal/config"
	"github.com/Totix777/hauswirtschaft/pkg/utils"
)

// Client wraps the Gmail API and acts as the notification provider for
// task submissions
type Client struct {
	service         *gmail.Service
	userID          string
	sender          string
	subjectTemplate string
}

// NewClient creates a new Gmail client using an existing OAuth token.
// The token only needs the gmail.send scope.
func NewClient(ctx context.Context, cfg *config.Config, oauthCfg *config.OAuthClientConfig, token *oauth2.Token) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)

	service, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &Client{
		service:         service,
		userID:          cfg.GmailUserID,
		sender:          cfg.GmailSender,
		subjectTemplate: cfg.SubjectTemplate(),
	}, nil
}
