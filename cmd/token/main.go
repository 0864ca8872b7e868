package main

import (
	"agendador/config"
	"agendador/di"
	"agendador/internal/domains/auth/model/dto"
	"agendador/shared/logger"
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const issueTimeout = 10 * time.Second

// Mints an access token for an existing active user, for local testing.
//
//	go run ./cmd/token -user <user-id>
func main() {
	userID := flag.String("user", "", "id of an active user")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), issueTimeout)
	defer cancel()

	token, err := di.InitializeAuth().IssueToken(ctx, dto.IssueTokenRequest{UserID: *userID})
	if err != nil {
		log.Fatal().Err(err).Str("user", *userID).Msg("Failed to issue token")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(token); err != nil {
		log.Fatal().Err(err).Msg("Failed to print token")
	}
}
