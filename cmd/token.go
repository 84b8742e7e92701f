package main

import (
	"context"
	"fmt"
	"net/url"
	"podium/internal/config"
	"podium/pkg/domain"
	"podium/pkg/logger"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that mints an auto-login
// token for an existing member and prints the landing URL.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates an auto-login link for the given member ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			rawID, _ := cmd.Flags().GetString("member")

			id, err := uuid.Parse(rawID)
			if err != nil {
				logger.Fatal(ctx, "invalid member ID", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			member, err := strg.MemberByID(ctx, domain.MemberID(id))
			if err != nil {
				logger.Fatal(ctx, "could not load member", zap.Error(err))
			}
			if member == nil {
				logger.Fatal(ctx, "member not found", zap.String("memberID", rawID))
			}

			tokens := newIssuer(ctx, cfg)
			signed, err := tokens.Issue(*member)
			if err != nil {
				logger.Fatal(ctx, "could not sign token", zap.Error(err))
			}

			fmt.Println(strings.TrimRight(cfg.Site.AppURL, "/") + //nolint: forbidigo
				"/auth/auto-login?token=" + url.QueryEscape(signed))
		},
	}

	cmd.Flags().String("member", "", "Member ID (the identity user ID)")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}
