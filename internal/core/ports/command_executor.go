package ports

// CommandExecutor defines an interface for running a shell binary.
type CommandExecutor interface {
	// Execute runs the shell named shellName with args and returns its output.
	Execute(shellName string, args ...string) (stdout string, stderr string, err error)
}
