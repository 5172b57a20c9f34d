package shell

// Exit ends the read-eval-print loop; the shell process then exits with
// status 0.
func Exit(s *Shell, args []string) int {
	s.quit = true
	s.exitCode = 0
	return 0
}

func init() {
	mustRegister("exit", &Builtin{
		Use:   "exit",
		Short: "Exit the shell.",
		Main:  Exit,
	})
}
