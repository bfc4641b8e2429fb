package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/create-my-app/internal/config"
	"github.com/agentx-labs/create-my-app/internal/pipeline"
	"github.com/agentx-labs/create-my-app/internal/pkgmgr"
	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/agentx-labs/create-my-app/internal/prompt"
	"github.com/agentx-labs/create-my-app/internal/runner"
	"github.com/agentx-labs/create-my-app/internal/strategy"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var acceptDefaults bool

// Seams for tests.
var (
	newExecutor = func(cmd *cobra.Command, s *config.Settings) runner.Executor {
		return &runner.ExecExecutor{
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
			Timeout: s.StepTimeout,
		}
	}
	stdinIsTerminal = func() bool { return prompt.IsInteractive(os.Stdin) }
)

func runCreate(cmd *cobra.Command, args []string) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}
	s, err := strategy.Lookup(settings.Router)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	out := cmd.OutOrStdout()
	m := pkgmgr.New(settings.PackageManager, settings.ScaffoldTool, newExecutor(cmd, settings))
	p := pipeline.New(pipeline.Options{
		Manager:           m,
		Strategy:          s,
		Parent:            cwd,
		VersionConstraint: settings.MinManagerVersion,
		Out:               out,
	})

	collect := func(ctx context.Context) (*project.RunConfig, error) {
		if acceptDefaults {
			return prompt.CollectDefaults(out), nil
		}
		// Piped answers are accepted; the terminal only echoes typed ones.
		cfg, err := prompt.Collect(ctx, cmd.InOrStdin(), out, !stdinIsTerminal())
		if errors.Is(err, project.ErrInputUnavailable) && !stdinIsTerminal() {
			return nil, fmt.Errorf("%w (rerun with --yes to accept the defaults)", err)
		}
		return cfg, err
	}

	gp, err := p.Run(cmd.Context(), collect)
	if err != nil {
		if errors.Is(err, project.ErrExternalProcess) || errors.Is(err, project.ErrFileWrite) {
			h := p.History()
			fmt.Fprintf(cmd.ErrOrStderr(), "Aborted after reaching %q; nothing was cleaned up.\n", h[len(h)-2])
		}
		return err
	}

	printResult(out, cmd.ErrOrStderr(), gp, settings.PackageManager)
	return nil
}

var success = color.New(color.FgGreen, color.Bold)

func printResult(out, errOut io.Writer, gp *pipeline.GeneratedProject, manager string) {
	success.Fprintf(out, "\nSetup complete!\n")
	fmt.Fprintf(out, "Created %s at %s/\n", gp.Config.ProjectName, gp.Root)
	for _, f := range gp.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}

	fmt.Fprintf(out, "Start editing %s to change the app.\n", gp.Config.EntryFile())

	for _, w := range gp.Warnings {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}

	fmt.Fprintln(out, "\nRun the following commands to start your app:")
	fmt.Fprintf(out, "\n  cd %s\n", gp.Config.ProjectName)
	fmt.Fprintf(out, "  %s run dev\n", manager)
}
