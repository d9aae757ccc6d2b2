package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates an ExecCommand for the given program and arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewDotCommand creates the Graphviz invocation that reads DOT from stdin
// and writes the given output format to stdout.
func NewDotCommand(dotPath, format string) *ExecCommand {
	if dotPath == "" {
		dotPath = DefaultDotPath
	}
	return NewCommand(dotPath, []string{"-T" + format}, "")
}
