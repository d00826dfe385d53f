package cli

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			res, err := apiClient().Auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := saveSession(res.AccessToken); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			fmt.Printf("Logged in as %s (%s plan)\n", res.User.Name, res.User.Plan)
			return nil
		},
	}
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = strings.SplitN(args[0], "@", 2)[0]
			}
			password, err := promptPassword("Choose a password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			res, err := apiClient().Auth.Register(cmd.Context(), args[0], name, password)
			if err != nil {
				return err
			}
			if err := saveSession(res.AccessToken); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			fmt.Printf("Welcome, %s! You are on the %s plan.\n", res.User.Name, res.User.Plan)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the email local part)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = apiClient().Auth.Logout(cmd.Context())
			if err := saveSession(""); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the authenticated user and server",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := apiClient().Auth.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("User:   %s <%s>\n", u.Name, u.Email)
			fmt.Printf("Role:   %s\n", u.Role)
			fmt.Printf("Plan:   %s\n", u.Plan)
			fmt.Printf("Status: %s\n", u.Status)
			return nil
		},
	}
}

// promptPassword reads a password without echoing it
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}
