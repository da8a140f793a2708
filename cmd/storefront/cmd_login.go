package main

import (
	"bufio"
	"fmt"
	"strings"

	"storefront/internal/credential"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [TOKEN]",
	Short: "Store a session token",
	Long: `Store the bearer token used for cart requests in the local storage
file (STORAGE_PATH). Without an argument the token is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := credential.NewStore(cfg.StoragePath)
		if err := store.Remove(credential.TokenKey); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

func runLogin(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read token: %w", err)
		}
		token = line
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty token")
	}

	store := credential.NewStore(cfg.StoragePath)
	if err := store.Set(credential.TokenKey, token); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", store.Path())
	return nil
}
