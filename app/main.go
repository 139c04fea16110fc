package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/funkybooboo/ugrep/internal/grep"
	"github.com/funkybooboo/ugrep/internal/regex"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs ugrep with args and returns the process exit status.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

// report prints the diagnostic for a fatal error.
func report(w io.Writer, err error) {
	var fe *fileError
	switch {
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(w, err)
	case errors.Is(err, regex.ErrInvalidPattern):
		fmt.Fprintln(w, "Invalid pattern")
	case errors.As(err, &fe):
		fmt.Fprintln(w, fe)
	case errors.Is(err, grep.ErrLineTooLong):
		fmt.Fprintln(w, "Input line too long")
	default:
		fmt.Fprintf(w, "ugrep: %v\n", err)
	}
}
