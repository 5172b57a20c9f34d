package shell

import (
	"fmt"
)

// Mkdir creates directories with default permissions.
func Mkdir(s *Shell, args []string) int {
	cmd := &SimpleBuiltin{
		Use:   "mkdir DIRECTORY...",
		Short: "Create directories.",
	}

	return cmd.Run(s, args, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintf(s.stderr, "%s: missing operand\n", args[0])
			return 1
		}

		anyFailed := false
		for _, dir := range directories {
			if err := s.fs.Mkdir(dir, 0755); err != nil {
				fmt.Fprintf(s.stderr, "%s: cannot create directory %q: %v\n", args[0], dir, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

func init() {
	mustRegister("mkdir", &Builtin{
		Use:   "mkdir DIRECTORY...",
		Short: "Create directories.",
		Main:  Mkdir,
	})
}
