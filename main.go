package main

import (
	"fmt"
	"os"

	accounts "tradehub/internal/accountService"
	bidding "tradehub/internal/biddingService"
	catalog "tradehub/internal/catalogService"
	community "tradehub/internal/communityService"
	"tradehub/internal/config"
	"tradehub/internal/imagestore"
	"tradehub/internal/mail"
	"tradehub/internal/repository"
	"tradehub/internal/server"
	"tradehub/internal/token"
	"tradehub/utils"
)

func main() {
	cfg := config.Load()

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}

	images, err := imagestore.NewDiskStore(cfg.UploadDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image store: %v\n", err)
		os.Exit(1)
	}

	tokens := token.NewService(cfg.TokenSecret)
	sessions := accounts.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	mailer := buildMailer(cfg)

	accountSvc := accounts.NewAccountService(repo, tokens, mailer, sessions, cfg.BaseURL, cfg.TokenMaxAge)
	catalogSvc := catalog.NewCatalogService(repo, images)
	biddingSvc := bidding.NewBiddingService(repo)
	communitySvc := community.NewCommunityService(repo)

	router := server.SetupRouter(accountSvc, catalogSvc, biddingSvc, communitySvc, sessions)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo picks MySQL when a DSN is configured, in-memory otherwise
func buildRepo(cfg *config.Config) (repository.AuctionDB, error) {
	if cfg.MySQLDSN != "" {
		return repository.NewMySQLRepo(cfg.MySQLDSN)
	}
	utils.Warn("no MYSQL_DSN set, using in-memory storage", nil)
	return repository.NewMemoryRepo(), nil
}

// buildMailer uses SMTP when credentials are configured, log-only otherwise
func buildMailer(cfg *config.Config) mail.Mailer {
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		utils.Warn("no SMTP credentials set, mail will only be logged", nil)
		return &mail.LogMailer{}
	}
	return &mail.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		Sender:   cfg.MailSender,
	}
}
