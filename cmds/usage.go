package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.Usage(os.Stderr)
}

func (p *Executor) Usage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the same *Command, print each once under its defined name
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			argIndex := 0
			for i := range command.Func.Type().NumIn() {
				t := command.Func.Type().In(i)
				if t == contextType {
					continue
				}
				name := t.String()
				if argIndex < len(command.ArgNames) {
					name = command.ArgNames[argIndex]
				}
				argIndex++
				if t.Kind() == reflect.Pointer {
					line += " [" + name + "]"
				} else {
					line += " <" + name + ">"
				}
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
