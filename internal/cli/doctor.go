package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/create-my-app/internal/config"
	"github.com/agentx-labs/create-my-app/internal/pkgmgr"
	"github.com/agentx-labs/create-my-app/internal/strategy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the package manager and settings are usable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		s, err := config.Current()
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] settings: %v\n", err)
			return fmt.Errorf("doctor found problems")
		}

		ok := checkConfigFile(out)
		ok = checkStrategy(out, s.Router) && ok
		ok = checkManager(cmd, s) && ok

		if !ok {
			return fmt.Errorf("doctor found problems")
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}

func checkConfigFile(w io.Writer) bool {
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [ OK ] %s not present, using defaults\n", path)
		return true
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	return true
}

func checkStrategy(w io.Writer, name string) bool {
	st, err := strategy.Lookup(name)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] router: %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] router %s installs %v\n", st.Name, st.Packages)
	return true
}

func checkManager(cmd *cobra.Command, s *config.Settings) bool {
	w := cmd.OutOrStdout()
	m := pkgmgr.New(s.PackageManager, s.ScaffoldTool, newExecutor(silenced(cmd), s))
	constraint := m.Constraint(s.MinManagerVersion)

	v, err := m.CheckVersion(cmd.Context(), constraint)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", s.PackageManager, err)
		return false
	}
	if constraint == "" {
		fmt.Fprintf(w, "  [ OK ] %s %s\n", s.PackageManager, v)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s %s satisfies %s\n", s.PackageManager, v, constraint)
	}
	return true
}

// silenced returns a throwaway command whose output is discarded, so the
// version check does not echo into the report.
func silenced(cmd *cobra.Command) *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(io.Discard)
	c.SetErr(io.Discard)
	c.SetContext(cmd.Context())
	return c
}
