package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service/auth"
)

// newHashPasswordCmd creates the hash-password subcommand, which prints the
// bcrypt digest for each password given as an argument or, with no
// arguments, for each line read from stdin. Useful for seeding users.
func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password...]",
		Short: "Print bcrypt hashes for passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			passwords := args
			if len(passwords) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
						passwords = append(passwords, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read passwords: %w", err)
				}
			}
			if len(passwords) == 0 {
				return errors.New("no passwords given")
			}

			hasher := auth.NewBcryptHasher(cost)
			for _, password := range passwords {
				if err := domain.ValidatePassword(password); err != nil {
					return err
				}
				digest, err := hasher.Hash(password)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), digest)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost factor (4-31)")
	return cmd
}
