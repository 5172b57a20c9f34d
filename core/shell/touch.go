package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Touch creates empty files, or updates the times of existing ones.
func Touch(s *Shell, args []string) int {
	cmd := &SimpleBuiltin{
		Use:   "touch FILE...",
		Short: "Create empty files or update their times.",
	}

	return cmd.Run(s, args, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			fmt.Fprintf(s.stderr, "%s: missing operand\n", args[0])
			return 1
		}

		now := time.Now()

		anyFailed := false
		for _, path := range paths {
			err := s.fs.Chtimes(path, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				fd, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
				if err != nil {
					fmt.Fprintf(s.stderr, "%s: cannot touch %q: %v\n", args[0], path, err)
					anyFailed = true
					continue
				}
				fd.Close()

			case err != nil:
				fmt.Fprintf(s.stderr, "%s: setting times of %q: %v\n", args[0], path, err)
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
	mustRegister("touch", &Builtin{
		Use:   "touch FILE...",
		Short: "Create empty files or update their times.",
		Main:  Touch,
	})
}
