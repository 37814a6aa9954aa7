package main

import (
	"errors"
	"fmt"
	"io"

	envguard "github.com/MKhiriev/go-env-guard"
	"github.com/MKhiriev/go-env-guard/models"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitOK         = 0
	exitInvalidEnv = 1
	exitUsage      = 2
)

var errValidationFailed = errors.New("environment validation failed")

// app carries the process boundary of the command so tests can replace it.
type app struct {
	// environ feeds the tool's own ENVGUARD_ settings; nil reads the
	// process environment.
	environ map[string]string
	// source supplies the variables being checked; nil snapshots the
	// process environment.
	source envguard.Source
	stdout io.Writer
	stderr io.Writer
	build  models.BuildInfo
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "envguard",
		Short:         "Validate environment variables against a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(a.newCheckCmd(), a.newVersionCmd())
	return root
}

// execute runs the command tree with args and maps the outcome to an exit code.
func (a *app) execute(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errValidationFailed):
		return exitInvalidEnv
	default:
		fmt.Fprintf(a.stderr, "envguard: %v\n", err)
		return exitUsage
	}
}
