// File: registry.go
// Title: Challenge Command Registry
// Description: Immutable registry of challenge commands. Built once from a
//              static command list and alias table, then used to resolve
//              identifiers and validate argument counts.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Simple object/method registry with aliases
// - 2026-10-19 v0.2.0: Rebuilt as an immutable challenge registry with
//                      transitive alias resolution

package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
	cbstringx "github.com/msto63/chbrowse/foundation/utils/stringx"
)

// Unbounded marks a command without an upper argument limit
const Unbounded = -1

// Handler runs a command. args excludes the command identifier.
type Handler func(ctx context.Context, args []string) (string, error)

// Command describes one challenge command
type Command struct {
	Name        string
	Index       int
	Aliases     []string
	MinArgs     int
	MaxArgs     int
	Summary     string
	Usage       string
	Description string
	Handler     Handler
}

// Accepts reports whether n arguments satisfy the command's bounds
func (c *Command) Accepts(n int) bool {
	if n < c.MinArgs {
		return false
	}
	return c.MaxArgs == Unbounded || n <= c.MaxArgs
}

// Options configures registry construction
type Options struct {
	Logger *cblog.Logger
}

// Registry maps identifiers to commands. It is read-only after Build.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string // alias -> target as declared
	resolved map[string]string // alias -> canonical key
	ordered  []*Command
	logger   *cblog.Logger
}

// Build creates a registry with default options
func Build(cmds []Command, aliases map[string]string) (*Registry, error) {
	return BuildWithOptions(cmds, aliases, Options{})
}

// BuildWithOptions creates a registry from cmds and an alias table. Aliases
// listed on a Command are merged into the table. All invariants are checked
// here so that lookups never fail for structural reasons later.
func BuildWithOptions(cmds []Command, aliases map[string]string, opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = cblog.GetDefault()
	}

	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string, len(aliases)),
		resolved: make(map[string]string, len(aliases)),
		logger:   opts.Logger.WithField("component", "registry"),
	}

	for i := range cmds {
		if err := r.addCommand(cmds[i]); err != nil {
			return nil, err
		}
	}

	for alias, target := range aliases {
		if err := r.addAlias(alias, target); err != nil {
			return nil, err
		}
	}
	for _, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			if err := r.addAlias(alias, cmd.Name); err != nil {
				return nil, err
			}
		}
	}

	for alias := range r.aliases {
		key, err := r.follow(alias)
		if err != nil {
			return nil, err
		}
		r.resolved[alias] = key
	}

	for _, cmd := range r.commands {
		cmd.Aliases = r.aliasesOfKey(key(cmd.Name))
		r.ordered = append(r.ordered, cmd)
	}
	sort.Slice(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i], r.ordered[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return key(a.Name) < key(b.Name)
	})

	r.logger.Debug("registry built", cblog.Fields{
		"commands": len(r.commands),
		"aliases":  len(r.aliases),
	})

	return r, nil
}

func (r *Registry) addCommand(cmd Command) error {
	if cbstringx.IsBlank(cmd.Name) {
		return invalid("command name cannot be empty")
	}
	k := key(cmd.Name)
	if strings.ContainsAny(k, " \t") {
		return invalid("command name %q contains whitespace", cmd.Name)
	}
	if _, exists := r.commands[k]; exists {
		return invalid("command %q is registered twice", cmd.Name)
	}
	if cmd.Handler == nil {
		return invalid("command %q has no handler", cmd.Name)
	}
	if cmd.MinArgs < 0 {
		return invalid("command %q has negative minimum argument count %d", cmd.Name, cmd.MinArgs)
	}
	if cmd.MaxArgs != Unbounded && cmd.MaxArgs < cmd.MinArgs {
		return invalid("command %q has maximum argument count %d below minimum %d", cmd.Name, cmd.MaxArgs, cmd.MinArgs)
	}

	c := cmd
	c.Aliases = append([]string(nil), cmd.Aliases...)
	r.commands[k] = &c
	return nil
}

func (r *Registry) addAlias(alias, target string) error {
	if cbstringx.IsBlank(alias) || cbstringx.IsBlank(target) {
		return invalid("alias %q -> %q has an empty side", alias, target)
	}
	a, t := key(alias), key(target)
	if _, isCommand := r.commands[a]; isCommand {
		return invalid("alias %q collides with a command name", alias)
	}
	if existing, exists := r.aliases[a]; exists {
		if existing == t {
			return nil
		}
		return invalid("alias %q is declared for both %q and %q", alias, existing, t)
	}
	r.aliases[a] = t
	return nil
}

// follow walks an alias chain to its command, detecting dangling targets
// and cycles
func (r *Registry) follow(alias string) (string, error) {
	seen := map[string]bool{alias: true}
	current := alias
	for {
		next := r.aliases[current]
		if _, ok := r.commands[next]; ok {
			return next, nil
		}
		if _, ok := r.aliases[next]; !ok {
			return "", invalid("alias %q points to unknown command %q", alias, next)
		}
		if seen[next] {
			return "", invalid("alias %q is part of a cycle", alias)
		}
		seen[next] = true
		current = next
	}
}

// Resolve finds the command for an identifier, which may be a name or an
// alias in any case
func (r *Registry) Resolve(identifier string) (*Command, error) {
	k := key(identifier)
	if target, ok := r.resolved[k]; ok {
		k = target
	}
	if cmd, ok := r.commands[k]; ok {
		return cmd, nil
	}
	return nil, cberror.Newf("unknown command: %s", identifier).
		WithCode(cberror.CodeUnknownCommand).
		WithOperation("registry.Resolve").
		WithDetail("identifier", identifier)
}

// Validate checks the argument count for cmd
func (r *Registry) Validate(cmd *Command, args []string) error {
	n := len(args)
	if n < cmd.MinArgs {
		return argumentCount(cmd, n,
			fmt.Sprintf("%s needs at least %d argument%s, but only %d were given", cmd.Name, cmd.MinArgs, plural(cmd.MinArgs), n))
	}
	if cmd.MaxArgs != Unbounded && n > cmd.MaxArgs {
		return argumentCount(cmd, n,
			fmt.Sprintf("%s takes at most %d argument%s, but %d were given", cmd.Name, cmd.MaxArgs, plural(cmd.MaxArgs), n))
	}
	return nil
}

// Commands returns all commands ordered by booklet index, then name. The
// returned descriptors must not be modified.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// AliasesOf returns the sorted aliases that resolve to name
func (r *Registry) AliasesOf(name string) []string {
	return r.aliasesOfKey(key(name))
}

// Aliases returns a copy of the alias table, alias -> declared target
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for a, t := range r.aliases {
		out[a] = t
	}
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) aliasesOfKey(k string) []string {
	var out []string
	for alias, target := range r.resolved {
		if target == k {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func invalid(format string, args ...interface{}) error {
	return cberror.Newf(format, args...).
		WithCode(cberror.CodeInvalidRegistry).
		WithOperation("registry.Build")
}

func argumentCount(cmd *Command, given int, msg string) error {
	return cberror.New(msg).
		WithCode(cberror.CodeArgumentCount).
		WithOperation("registry.Validate").
		WithDetails(map[string]interface{}{
			"command": cmd.Name,
			"given":   given,
			"min":     cmd.MinArgs,
			"max":     cmd.MaxArgs,
		})
}
