package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/agentx-labs/create-my-app/internal/branding"
	"github.com/agentx-labs/create-my-app/internal/config"
	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/agentx-labs/create-my-app/internal/strategy"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags that override config keys.
var flagKeys = map[string]string{
	"router":          config.KeyRouter,
	"package-manager": config.KeyPackageManager,
	"timeout":         config.KeyStepTimeout,
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a React project with Vite, installs a router and TanStack Query,
and replaces the starter App with routing boilerplate.

The project name and language are asked interactively.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().String("router", "", "Routing strategy: "+strings.Join(strategy.Names(), " or "))
	rootCmd.PersistentFlags().String("package-manager", "", "Package manager executable (default npm)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for each package manager command (default 10m, 0 from config disables)")
	rootCmd.Flags().BoolVarP(&acceptDefaults, "yes", "y", false, "Accept the default answers without prompting")
}

// loadConfig reads settings and binds the flags the user set on top of them.
func loadConfig(cmd *cobra.Command) error {
	config.Load()
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are reported on stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

var errorLabel = color.New(color.FgRed, color.Bold)

// reportError prints err and, for failed commands, their captured output.
func reportError(w io.Writer, err error) {
	errorLabel.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
	if out := project.OutputOf(err); out != "" {
		fmt.Fprintln(w, "\nCommand output:")
		for _, line := range strings.Split(out, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}
