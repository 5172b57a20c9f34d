package shell

import (
	"fmt"
	"os"
)

// Pwd prints the absolute working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 1
	}

	fmt.Fprintln(s.stdout, wd)
	return 0
}

func init() {
	mustRegister("pwd", &Builtin{
		Use:   "pwd",
		Short: "Print the working directory.",
		Main:  Pwd,
	})
}
