package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/config"
	"github.com/sercanumit/bootcamp-112/internal/service/auth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newTokenCmd issues an access token for local testing. The secret comes
// from --secret or YON_AUTH_JWT_SECRET.
func newTokenCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("YON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("auth.token_lifetime_minutes", 60)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawID, _ := cmd.Flags().GetString("user-id")
			userID, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}

			svc, err := auth.NewJWTService(config.AuthConfig{
				JWTSecret:            v.GetString("auth.jwt_secret"),
				TokenLifetimeMinutes: v.GetInt("auth.token_lifetime_minutes"),
			})
			if err != nil {
				return err
			}

			token, err := svc.GenerateToken(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("user-id", "", "user the token is issued for")
	cmd.Flags().String("secret", "", "HMAC signing secret")
	cmd.Flags().Int("lifetime", 60, "token lifetime in minutes")
	_ = cmd.MarkFlagRequired("user-id")
	_ = v.BindPFlag("auth.jwt_secret", cmd.Flags().Lookup("secret"))
	_ = v.BindPFlag("auth.token_lifetime_minutes", cmd.Flags().Lookup("lifetime"))
	return cmd
}
