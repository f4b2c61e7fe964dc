package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/lessontex/internal/commands"
	"github.com/gerunddev/lessontex/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "render", "show":
		commands.Render(os.Args[2:])
	case "path":
		commands.Path(os.Args[2:])
	case "topics", "ls":
		commands.Topics()
	case "check":
		commands.Check(os.Args[2:])
	case "browse":
		commands.Browse()
	case "version", "-v", "--version":
		fmt.Printf("lessontex v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`lessontex - Read LaTeX-style course lessons in the terminal

Usage:
  lessontex <command> [options]

Commands:
  render      Render a topic or a local .tex file
  path        Print the content path of a topic
  topics      List the catalog with reading status
  check       Parse every topic and report problems
  browse      Browse and read lessons interactively
  version     Show version information
  help        Show this help message

Options:
  render --format terminal|glamour|markdown
  render --file <path.tex>
  check --workers N

Examples:
  lessontex render "What is a Cache?"
  lessontex render --file lesson.tex --format markdown
  lessontex path Raft
  lessontex topics
  lessontex check --workers 8
  lessontex browse

Configuration:
  Config file: %s
  State file:  %s
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
