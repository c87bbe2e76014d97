package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/Totix777/hauswirtschaft/internal/config"
	"github.com/Totix777/hauswirtschaft/pkg/clients/gmailclient"
	"github.com/Totix777/hauswirtschaft/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg         *config.Config
	GmailClient *gmailclient.Client
	Database    db.Database
	Logger      *zap.Logger
	Ctx         context.Context
}
