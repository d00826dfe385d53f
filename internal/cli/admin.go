package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office operations (administrator role required)",
	}
	cmd.AddCommand(newAdminUsersCmd(), newAdminPlansCmd(), newAdminModelsCmd(), newAdminProvidersCmd())
	return cmd
}

func newAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var page, pageSize int
	list := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := apiClient().Admin.Users(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}
			for _, u := range res.Data {
				fmt.Printf("%-5d %-30s %-14s %-12s %s\n", u.ID, u.Email, u.Role, u.Plan, u.Status)
			}
			fmt.Printf("page %d/%d (%d users)\n", res.Page, res.TotalPages, res.TotalItems)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-plan <user-id> <plan>",
		Short: "Change a user's plan tier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}
			u, err := apiClient().Admin.SetUserPlan(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now on the %s plan\n", u.Email, u.Plan)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-role <user-id> <role>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}
			u, err := apiClient().Admin.SetUserRole(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s now has role %s\n", u.Email, u.Role)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <user-id> <status>",
		Short: "Change a user's account status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}
			u, err := apiClient().Admin.SetUserStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", u.Email, u.Status)
			return nil
		},
	})

	return cmd
}

func newAdminPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage the plan catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := apiClient().Admin.Plans(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range plans {
				limit := "unlimited"
				if p.MessageLimit != nil {
					limit = strconv.Itoa(*p.MessageLimit)
				}
				fmt.Printf("%-12s %-20s %8.2f %s  messages: %s  active: %v\n", p.ID, p.Name, p.Price, p.Currency, limit, p.Active)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan (refused while active subscriptions exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().Admin.DeletePlan(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Plan deleted")
			return nil
		},
	})

	return cmd
}

func newAdminModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the model catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the full model catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := apiClient().Admin.Models(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Printf("%-40s %-12s %-10s %v\n", m.ID, m.Provider, m.Status, m.Plans)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "selection",
		Short: "Show which models are exposed to chat per plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			sels, err := apiClient().Admin.Selections(cmd.Context())
			if err != nil {
				return err
			}
			for _, sel := range sels {
				fmt.Printf("%-40s %v\n", sel.ModelID, sel.Plans)
			}
			return nil
		},
	})

	return cmd
}

func newAdminProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Manage LLM provider settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List provider settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := apiClient().Admin.Providers(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range providers {
				fmt.Printf("%-12s enabled: %-5v %s\n", p.Provider, p.Enabled, p.BaseURL)
			}
			return nil
		},
	})

	var apiKey, baseURL string
	var enable, disable bool
	set := &cobra.Command{
		Use:   "set <provider>",
		Short: "Configure one provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return fmt.Errorf("--enable and --disable are mutually exclusive")
			}
			p, err := apiClient().Admin.UpdateProvider(cmd.Context(), args[0], enable && !disable, apiKey, baseURL)
			if err != nil {
				return err
			}
			fmt.Printf("%s enabled: %v\n", p.Provider, p.Enabled)
			return nil
		},
	}
	set.Flags().BoolVar(&enable, "enable", false, "enable the provider")
	set.Flags().BoolVar(&disable, "disable", false, "disable the provider")
	set.Flags().StringVar(&apiKey, "api-key", "", "provider API key")
	set.Flags().StringVar(&baseURL, "base-url", "", "provider base URL override")
	cmd.AddCommand(set)

	return cmd
}
