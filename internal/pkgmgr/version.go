package pkgmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/create-my-app/internal/project"
)

// builtinConstraints are the oldest releases whose create command forwards
// template flags the way CreateCommand builds them.
var builtinConstraints = map[string]string{
	"npm":  ">=7.0.0",
	"pnpm": ">=7.0.0",
	"yarn": ">=1.22.0",
	"bun":  ">=1.0.0",
}

// Constraint returns override if set, else the built-in constraint for the
// manager. An empty result means no version requirement.
func (m *Manager) Constraint(override string) string {
	if override != "" {
		return override
	}
	return builtinConstraints[m.Name]
}

// CheckVersion runs "<pm> --version" and checks it against constraint. An
// empty constraint only verifies that the binary runs.
func (m *Manager) CheckVersion(ctx context.Context, constraint string) (*semver.Version, error) {
	res, err := m.run(ctx, "preflight", m.VersionCommand())
	if err != nil {
		return nil, err
	}

	v, err := parseSemver(firstLine(res.Stdout))
	if err != nil {
		return nil, project.Wrap(project.ErrExternalProcess, "preflight", err, "unrecognized %s version %q", m.Name, firstLine(res.Stdout))
	}
	if constraint == "" {
		return v, nil
	}

	ok, err := Satisfies(v, constraint)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, project.Errorf(project.ErrExternalProcess, "preflight", "%s %s does not satisfy %s", m.Name, v, constraint)
	}
	return v, nil
}

// Satisfies reports whether v meets the constraint expression.
func Satisfies(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
