// Package shell implements tsh, the interactive tinybox shell.
//
// The shell reads one line at a time, tokenizes it, and dispatches the
// first token against the builtin registry. Anything else is run as an
// external program and waited on synchronously; nothing runs concurrently
// within one shell session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/tinybox-os/tinybox/core/config"
)

var (
	colorPrimary = color.New(color.FgCyan)
	colorCommand = color.New(color.FgYellow)
	colorPrompt  = color.New(color.FgGreen, color.Bold)
	colorError   = color.New(color.FgRed)
)

type Shell struct {
	fs     afero.Fs
	config *config.Configuration

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	lastRet  int
	exitCode int

	// Set to true to quit the REPL.
	quit bool
}

// New creates a shell over the given filesystem and stdio streams.
func New(fsys afero.Fs, cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	return &Shell{
		fs:     fsys,
		config: cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the read-eval-print loop until exit or end of input and
// returns the shell's exit status.
func (s *Shell) Run() int {
	if os.Getenv("PATH") == "" {
		os.Setenv("PATH", s.config.SearchPath)
	}

	s.printBanner()

	rl, err := readline.NewEx(&readline.Config{
		Stdin:  readline.NewCancelableStdin(s.stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
	})
	if err != nil {
		fmt.Fprintf(s.stderr, "sh: %v\n", err)
		return 1
	}
	defer rl.Close()

	for !s.quit {
		rl.SetPrompt(colorPrompt.Sprint(s.config.Prompt))
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			// Input closed; mirror a clean exit.
			fmt.Fprintln(s.stdout)
			return 0

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			fmt.Fprintf(s.stderr, "sh: %v\n", err)
			return 1

		default:
			s.RunLine(line)
		}
	}

	return s.exitCode
}

// RunLine tokenizes and dispatches a single input line. Blank lines are a
// no-op. The resulting status is recorded as the shell's last status.
func (s *Shell) RunLine(line string) {
	args := Tokenize(line)
	if len(args) == 0 {
		return
	}

	s.lastRet = s.dispatch(args)
}

// LastStatus reports the exit status of the most recent command.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

// dispatch runs a non-empty command: builtins by exact name match, then
// external programs.
func (s *Shell) dispatch(args []string) int {
	if builtin, ok := AllBuiltins[args[0]]; ok {
		return builtin.Main(s, args)
	}

	return s.runExternal(args)
}

// runExternal forks and execs an external program, waits for that child
// specifically, and translates its wait result into an exit status.
func (s *Shell) runExternal(args []string) int {
	path, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(s.stderr, "sh: %s: %s\n",
			colorError.Sprint("command not found"), colorCommand.Sprint(args[0]))
		return 127
	}

	cmd := exec.Command(path)
	cmd.Args = args
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0

	case errors.As(err, &exitErr):
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		// Terminated by a signal.
		return 1

	default:
		// Fork or exec setup failed; never fatal to the REPL.
		fmt.Fprintf(s.stderr, "sh: %s: %v\n", args[0], err)
		return 1
	}
}

func (s *Shell) printBanner() {
	colorPrimary.Fprintln(s.stdout, "tsh - tinybox shell")
	fmt.Fprintf(s.stdout, "%s %s %s\n\n",
		colorPrimary.Sprint("Type"),
		colorCommand.Sprint("'help'"),
		colorPrimary.Sprint("for built-in commands"))
}
