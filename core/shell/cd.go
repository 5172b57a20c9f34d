package shell

import (
	"fmt"
	"os"
)

// Cd changes the shell's working directory. The new directory is process
// state, so external children started afterwards inherit it.
func Cd(s *Shell, args []string) int {
	switch {
	case len(args) < 2:
		fmt.Fprintf(s.stderr, "%s: missing argument\n", args[0])
		return 1
	case len(args) > 2:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		return 1
	}

	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func init() {
	mustRegister("cd", &Builtin{
		Use:   "cd DIRECTORY",
		Short: "Change the working directory.",
		Main:  Cd,
	})
}
