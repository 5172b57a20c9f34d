package shell

import (
	"errors"
	"fmt"
	"io/fs"
)

// Rm removes files, and directories when -r is given. The -f flag
// suppresses errors and keeps processing the remaining operands.
func Rm(s *Shell, args []string) int {
	cmd := &SimpleBuiltin{
		Use:   "rm [-r] [-f] FILE...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")
	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files, never prompt")

	return cmd.Run(s, args, func() int {
		operands := cmd.Flags().Args()
		if len(operands) == 0 {
			fmt.Fprintf(s.stderr, "%s: missing operand\n", args[0])
			return 1
		}

		anyFailed := false
		for _, file := range operands {
			stat, statErr := s.fs.Stat(file)
			switch {
			case errors.Is(statErr, fs.ErrNotExist):
				if !*force {
					fmt.Fprintf(s.stderr, "%s: cannot remove %q: no such file or directory\n", args[0], file)
					anyFailed = true
				}

			case statErr != nil:
				if !*force {
					fmt.Fprintf(s.stderr, "%s: cannot stat %q: %v\n", args[0], file, statErr)
					anyFailed = true
				}

			case stat.IsDir() && !*recursive:
				if !*force {
					fmt.Fprintf(s.stderr, "%s: cannot remove %q: is a directory\n", args[0], file)
					anyFailed = true
				}

			case stat.IsDir():
				// Depth-first removal of the whole tree.
				if err := s.fs.RemoveAll(file); err != nil && !*force {
					fmt.Fprintf(s.stderr, "%s: cannot remove %q: %v\n", args[0], file, err)
					anyFailed = true
				}

			default:
				if err := s.fs.Remove(file); err != nil && !*force {
					fmt.Fprintf(s.stderr, "%s: cannot remove %q: %v\n", args[0], file, err)
					anyFailed = true
				}
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

func init() {
	mustRegister("rm", &Builtin{
		Use:   "rm [-r] [-f] FILE...",
		Short: "Remove files or directories.",
		Main:  Rm,
	})
}
