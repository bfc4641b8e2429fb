package pkgmgr

import (
	"context"

	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/agentx-labs/create-my-app/internal/runner"
)

// Manager issues commands for one package manager binary.
type Manager struct {
	Name         string // executable, e.g. "npm"
	ScaffoldTool string // create target, e.g. "vite@latest"
	Exec         runner.Executor
}

// New returns a Manager for the named binary.
func New(name, scaffoldTool string, exec runner.Executor) *Manager {
	return &Manager{Name: name, ScaffoldTool: scaffoldTool, Exec: exec}
}

// VersionCommand returns "<pm> --version".
func (m *Manager) VersionCommand() runner.Command {
	return runner.Command{Name: m.Name, Args: []string{"--version"}}
}

// CreateCommand returns the scaffold command, run from parent. npm needs a
// "--" separator before arguments meant for the create package; pnpm, yarn
// and bun forward them as-is.
func (m *Manager) CreateCommand(parent string, cfg project.RunConfig) runner.Command {
	args := []string{"create", m.ScaffoldTool, cfg.ProjectName}
	if m.Name == "npm" {
		args = append(args, "--")
	}
	args = append(args, "--template", cfg.Template())
	return runner.Command{Name: m.Name, Args: args, Dir: parent}
}

// InstallCommand returns "<pm> install [packages...]" run in dir. yarn and
// bun add packages with "add" rather than "install".
func (m *Manager) InstallCommand(dir string, packages ...string) runner.Command {
	verb := "install"
	if len(packages) > 0 && (m.Name == "yarn" || m.Name == "bun") {
		verb = "add"
	}
	args := append([]string{verb}, packages...)
	return runner.Command{Name: m.Name, Args: args, Dir: dir}
}

// Scaffold creates the project skeleton under parent.
func (m *Manager) Scaffold(ctx context.Context, parent string, cfg project.RunConfig) (*runner.Result, error) {
	return m.run(ctx, "scaffold", m.CreateCommand(parent, cfg))
}

// Install installs packages in dir; with no packages it installs the
// project's declared dependencies.
func (m *Manager) Install(ctx context.Context, dir string, packages ...string) (*runner.Result, error) {
	op := "install"
	if len(packages) > 0 {
		op = "install features"
	}
	return m.run(ctx, op, m.InstallCommand(dir, packages...))
}

// run executes cmd and maps every failure to project.ErrExternalProcess.
func (m *Manager) run(ctx context.Context, op string, cmd runner.Command) (*runner.Result, error) {
	res, err := m.Exec.Run(ctx, cmd)
	if err != nil {
		pe := project.Wrap(project.ErrExternalProcess, op, err, "%s", cmd)
		pe.Output = res.Output()
		return res, pe
	}
	if !res.Success() {
		pe := project.Errorf(project.ErrExternalProcess, op, "%s exited with status %d", cmd, res.ExitCode)
		pe.Output = res.Output()
		return res, pe
	}
	return res, nil
}
