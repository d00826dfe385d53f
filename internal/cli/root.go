// Package cli implements the ilyra command-line client.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ilyra-ai/ilyra-sub000/pkg/client"
)

// NewRootCmd builds the ilyra CLI command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ilyra",
		Short: "Command-line client for the Ilyra chat platform",
		Long: `ilyra talks to an Ilyra API server: authenticate, chat with the
available models, browse conversation history and manage the platform
as an administrator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String("server", "http://localhost:8080", "API server base URL")
	root.PersistentFlags().String("config", "", "config file (default $HOME/.ilyra/config.yaml)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newChatCmd(),
		newConversationsCmd(),
		newModelsCmd(),
		newAdminCmd(),
	)
	return root
}

// initConfig loads ~/.ilyra/config.yaml and binds the server flag
func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(filepath.Join(home, ".ilyra"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ILYRA")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("server", cmd.Flags().Lookup("server")); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// apiClient builds a client from the stored config, attaching the
// saved session token when present.
func apiClient() *client.Client {
	c := client.New(viper.GetString("server"))
	if token := viper.GetString("token"); token != "" {
		c.SetToken(token)
	}
	return c
}

// saveSession persists the session token to the config file
func saveSession(token string) error {
	viper.Set("token", token)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".ilyra")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}
