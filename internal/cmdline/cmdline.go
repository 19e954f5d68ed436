// Package cmdline registers and runs the text commands typed at the
// command prompt, such as "window view center 1332 -w 50".
package cmdline

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned when no registered command matches.
var ErrUnknownCommand = errors.New("unknown command")

// ErrDuplicateCommand is returned when a name is registered twice.
var ErrDuplicateCommand = errors.New("command already registered")

// AnyArgs disables the positional argument count check.
const AnyArgs = -1

// Runner executes a command with its positional arguments.
type Runner func(args []string) error

// Command is a named command.
type Command struct {
	// Name is one or more words, e.g. "window view region".
	Name        string
	Usage       string // argument synopsis, e.g. "<start> <end>"
	Description string
	// NArgs is the exact number of positional arguments, or AnyArgs.
	NArgs int
	// Setup declares flags on fs and returns the runner reading them.
	// When nil, Run is used and the command takes no flags.
	Setup func(fs *flag.FlagSet) Runner
	Run   Runner
}

// UsageError reports a command invoked with bad arguments.
type UsageError struct {
	Name  string
	Usage string
	Err   error // underlying parse error, may be nil
}

func (e *UsageError) Error() string {
	msg := "usage: " + e.Name
	if e.Usage != "" {
		msg += " " + e.Usage
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// Registry holds commands by name.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Add registers cmd. Names are normalized to single spaces.
func (r *Registry) Add(cmd Command) error {
	name := strings.Join(strings.Fields(cmd.Name), " ")
	if name == "" {
		return errors.New("command name is empty")
	}
	if cmd.Setup == nil && cmd.Run == nil {
		return fmt.Errorf("command %q has no runner", name)
	}
	if _, ok := r.cmds[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	cmd.Name = name
	r.cmds[name] = cmd
	return nil
}

// Names returns all command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.cmds[strings.Join(strings.Fields(name), " ")]
	return cmd, ok
}

// Execute parses line and runs the matching command. The longest
// registered name that prefixes the line wins. Flags may appear anywhere
// after the name. A blank line does nothing.
func (r *Registry) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, n, ok := r.match(fields)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}

	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.Run
	if cmd.Setup != nil {
		run = cmd.Setup(fs)
	}

	args, err := parseInterspersed(fs, fields[n:])
	if err != nil {
		return &UsageError{Name: cmd.Name, Usage: cmd.Usage, Err: err}
	}
	if cmd.NArgs != AnyArgs && len(args) != cmd.NArgs {
		return &UsageError{Name: cmd.Name, Usage: cmd.Usage}
	}
	return run(args)
}

func (r *Registry) match(fields []string) (Command, int, bool) {
	for n := len(fields); n > 0; n-- {
		if cmd, ok := r.cmds[strings.Join(fields[:n], " ")]; ok {
			return cmd, n, true
		}
	}
	return Command{}, 0, false
}

// parseInterspersed parses flags mixed with positional arguments.
// Negative numbers are positional, not flags.
func parseInterspersed(fs *flag.FlagSet, rest []string) ([]string, error) {
	var args []string
	for len(rest) > 0 {
		if isNumber(rest[0]) {
			args = append(args, rest[0])
			rest = rest[1:]
			continue
		}
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		args = append(args, rest[0])
		rest = rest[1:]
	}
	return args, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
