// Package initd implements the PID-1 supervisor.
//
// The supervisor is the first process the kernel starts from the
// initramfs. It performs one-time console setup, launches the shell as a
// child, and then idles forever, reaping every child whose exit it is
// responsible for, including orphans re-parented to PID 1.
package initd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/tinybox-os/tinybox/core/config"
	"github.com/tinybox-os/tinybox/core/version"
	"golang.org/x/sys/unix"
)

// clearScreen is the VT100 sequence to clear the console and home the
// cursor.
const clearScreen = "\033[2J\033[H"

var colorBanner = color.New(color.FgCyan, color.Bold)

type Supervisor struct {
	cfg     *config.Configuration
	log     zerolog.Logger
	console io.Writer

	shellPid int
}

// New creates a supervisor writing user-facing output to console.
func New(cfg *config.Configuration, log zerolog.Logger, console io.Writer) *Supervisor {
	return &Supervisor{
		cfg:     cfg,
		log:     log,
		console: console,
	}
}

// Run performs startup, spawns the shell, and enters the idle/reap loop.
// It never returns during normal operation.
func (s *Supervisor) Run() error {
	s.printBanner()

	s.log.Info().Int("pid", os.Getpid()).Msg("supervisor started")

	// Install the reaping disposition before the first fork so no exit can
	// be missed. The channel buffer absorbs signal bursts; the drain loop
	// below catches anything coalesced.
	sigchld := make(chan os.Signal, 16)
	signal.Notify(sigchld, unix.SIGCHLD)

	if err := s.startShell(); err != nil {
		// No shell is available, but the supervisor must stay resident so
		// the system remains recoverable by external means.
		s.log.Error().Err(err).Msg("failed to launch shell")
	}

	for range sigchld {
		for _, exit := range Reap() {
			s.log.Debug().Int("pid", exit.Pid).Int("status", exit.ExitStatus()).Msg("reaped child")

			if exit.Pid != s.shellPid {
				continue
			}

			s.shellPid = 0
			if s.cfg.RespawnShell {
				s.log.Info().Msg("shell exited, respawning")
				if err := s.startShell(); err != nil {
					s.log.Error().Err(err).Msg("failed to respawn shell")
				}
			} else {
				s.log.Info().Msg("shell exited, respawn disabled")
			}
		}
	}

	return nil
}

// printBanner clears the console and shows the welcome banner.
func (s *Supervisor) printBanner() {
	fmt.Fprint(s.console, clearScreen)
	colorBanner.Fprintln(s.console, s.cfg.Banner)
	fmt.Fprintln(s.console, version.String())
	fmt.Fprintln(s.console)
}

// startShell forks and execs the configured shell with the console stdio.
// The child is reaped by the signal-driven drain loop, never waited on
// directly.
func (s *Supervisor) startShell() error {
	argv := s.cfg.Shell

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PATH="+s.cfg.SearchPath)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting shell %q: %w", argv[0], err)
	}

	s.shellPid = cmd.Process.Pid
	s.log.Info().Int("pid", s.shellPid).Str("path", argv[0]).Msg("shell started")
	return nil
}
