package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/agentx-labs/create-my-app/internal/pkgmgr"
	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/agentx-labs/create-my-app/internal/runner"
	"github.com/agentx-labs/create-my-app/internal/scaffold"
	"github.com/agentx-labs/create-my-app/internal/strategy"
	"github.com/fatih/color"
)

// Collector supplies the RunConfig, typically by prompting. It should return
// promptly once ctx is cancelled.
type Collector func(ctx context.Context) (*project.RunConfig, error)

// Options configures a Pipeline.
type Options struct {
	Manager  *pkgmgr.Manager
	Strategy *strategy.Strategy
	// Parent is the directory the project is created in.
	Parent string
	// VersionConstraint overrides the package manager's built-in minimum.
	VersionConstraint string
	// Out receives progress headers. Nil discards them.
	Out io.Writer
	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

// GeneratedProject describes a successfully generated project.
type GeneratedProject struct {
	Config   project.RunConfig
	Root     string
	Strategy string
	Files    []string
	Warnings []string
	Steps    []*runner.Result
}

// Pipeline runs one generation. It is single-use.
type Pipeline struct {
	opts    Options
	state   State
	history []State
}

// New returns a Pipeline in StateStart.
func New(opts Options) *Pipeline {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Pipeline{opts: opts, state: StateStart, history: []State{StateStart}}
}

// State returns the current state.
func (p *Pipeline) State() State { return p.state }

// History returns every state visited, starting with StateStart.
func (p *Pipeline) History() []State {
	return append([]State(nil), p.history...)
}

var header = color.New(color.FgCyan, color.Bold)

// Run executes every step in order. On failure the pipeline moves to
// StateAborted and the step's error is returned unchanged.
func (p *Pipeline) Run(ctx context.Context, collect Collector) (*GeneratedProject, error) {
	if p.state != StateStart {
		return nil, fmt.Errorf("pipeline already ran (state %s)", p.state)
	}
	if p.opts.Manager == nil || p.opts.Strategy == nil {
		return nil, fmt.Errorf("pipeline needs a package manager and a routing strategy")
	}

	gp, err := p.run(ctx, collect)
	if err != nil {
		p.transition(StateAborted)
		return nil, err
	}
	p.transition(StateDone)
	return gp, nil
}

func (p *Pipeline) run(ctx context.Context, collect Collector) (*GeneratedProject, error) {
	m := p.opts.Manager

	cfg, err := collect(ctx)
	if err != nil {
		return nil, err
	}
	p.transition(StatePrompted)

	gp := &GeneratedProject{Config: *cfg, Strategy: p.opts.Strategy.Name}

	if _, err := m.CheckVersion(ctx, m.Constraint(p.opts.VersionConstraint)); err != nil {
		return nil, err
	}

	header.Fprintf(p.opts.Out, "\nCreating Vite project...\n")
	res, err := m.Scaffold(ctx, p.opts.Parent, *cfg)
	if err != nil {
		return nil, err
	}
	gp.Steps = append(gp.Steps, res)
	p.transition(StateScaffolded)

	root, err := Navigate(p.opts.Parent, cfg.ProjectName)
	if err != nil {
		return nil, err
	}
	gp.Root = root
	p.transition(StateNavigated)

	header.Fprintf(p.opts.Out, "\nInstalling dependencies...\n")
	res, err = m.Install(ctx, root)
	if err != nil {
		return nil, err
	}
	gp.Steps = append(gp.Steps, res)

	res, err = m.Install(ctx, root, p.opts.Strategy.Packages...)
	if err != nil {
		return nil, err
	}
	gp.Steps = append(gp.Steps, res)
	p.transition(StateInstalled)

	header.Fprintf(p.opts.Out, "\nSetting up %s...\n", p.opts.Strategy.Description)
	written, err := scaffold.Generate(p.opts.Strategy, *cfg, root)
	if err != nil {
		return nil, err
	}
	gp.Files = written.Files
	gp.Warnings = written.Warnings
	p.transition(StateWritten)

	return gp, nil
}

// transition moves to the next state. Transitions are driven only by run, so
// a disallowed one is a programming error.
func (p *Pipeline) transition(to State) {
	from := p.state
	if !isAllowedTransition(from, to) {
		panic(fmt.Sprintf("pipeline: disallowed transition %s -> %s", from, to))
	}
	p.state = to
	p.history = append(p.history, to)
	if p.opts.OnTransition != nil {
		p.opts.OnTransition(from, to)
	}
}
