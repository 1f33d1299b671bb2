// Command unitbl renders tables from YAML, JSON or CSV input in any of the
// built-in border styles.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/dkoosis/unitbl/internal/config"
	"github.com/dkoosis/unitbl/internal/gallery"
	"github.com/dkoosis/unitbl/internal/logging"
	"github.com/dkoosis/unitbl/pkg/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the streams and the settings resolved for one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	flags    config.CliFlags
	resolved *config.ResolvedConfig
	cfg      *table.Config
	logger   *logrus.Logger
}

// run executes the command line and returns the exit code.
// Tests call it directly so os.Exit never ends the test binary.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.fail(err)
		return 1
	}
	return 0
}

// setup resolves configuration and attaches the logrus sink.
func (a *app) setup() error {
	resolved, err := config.ResolveConfig(a.flags, isTTYWriter(a.stdout))
	if err != nil {
		return err
	}
	a.resolved = resolved
	a.logger = logging.New(a.stderr, resolved.LogLevel, resolved.NoColor || !isTTYWriter(a.stderr))
	a.cfg = resolved.TableConfig()
	logging.Install(a.cfg, a.logger, resolved.LogLevel, resolved.LogPrefix)

	a.logger.WithFields(logrus.Fields{
		"config":  resolved.ConfigFile,
		"style":   resolved.Style.String() + " (" + resolved.StyleSource + ")",
		"padding": resolved.Policy.String() + " (" + resolved.PolicySource + ")",
	}).Debug("configuration resolved")
	return nil
}

// color reports whether w may receive lipgloss colours.
func (a *app) color(w io.Writer) bool {
	if a.resolved != nil && a.resolved.NoColor {
		return false
	}
	return isTTYWriter(w)
}

func (a *app) fail(err error) {
	msg := gallery.ThemeFor(a.color(a.stderr)).Error.Render("unitbl: " + err.Error())
	_, _ = fmt.Fprintln(a.stderr, msg)
}

func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
