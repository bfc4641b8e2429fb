package cli

import (
	"fmt"

	"github.com/agentx-labs/create-my-app/internal/branding"
	"github.com/agentx-labs/create-my-app/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ` + config.FilePath() + `.

Environment variables override the file, for example
` + branding.EnvVar(config.KeyRouter) + `=route-list or ` + branding.EnvVar(config.KeyPackageManager) + `=pnpm.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the resolved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Current()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s = %s\n", config.KeyPackageManager, s.PackageManager)
		fmt.Fprintf(out, "%s = %s\n", config.KeyScaffoldTool, s.ScaffoldTool)
		fmt.Fprintf(out, "%s = %s\n", config.KeyRouter, s.Router)
		fmt.Fprintf(out, "%s = %s\n", config.KeyStepTimeout, s.StepTimeout)
		fmt.Fprintf(out, "%s = %s\n", config.KeyMinManagerVersion, s.MinManagerVersion)
		return nil
	},
}
