package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(e.commands, 1)
}

func printCommands(commands map[string]*Command, level int) {
	// Aliases share one *Command; print each once under its
	// sorted primary name.
	byCommand := make(map[*Command][]string)
	for name, command := range commands {
		byCommand[command] = append(byCommand[command], name)
	}

	var primaries []string
	for _, names := range byCommand {
		slices.Sort(names)
		primaries = append(primaries, names[0])
	}
	slices.Sort(primaries)

	indent := strings.Repeat("  ", level)
	for _, primary := range primaries {
		command := commands[primary]
		names := byCommand[command]
		line := indent + strings.Join(names, ", ")
		if command != nil && command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(os.Stderr, line)
		if command != nil && len(command.Subs) > 0 {
			printCommands(command.Subs, level+1)
		}
	}
}
