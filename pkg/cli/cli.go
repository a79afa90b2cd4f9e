package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Musiitwa-Joel/doclair-sub001/internal/logger"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/catalog"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/config"
)

// Version is stamped at release time via -ldflags.
var Version = "0.1.0"

func usage() {
	fmt.Println("Usage: doclair <command> [flags] [name=value ...]")
	fmt.Println()
	fmt.Println("Commands available:")
	fmt.Println("  tools    - list the tool catalog and its parameters")
	fmt.Println("  preview  - render a local preview of an adjustment")
	fmt.Println("  submit   - send a file to the processing API")
	fmt.Println("  update   - check for updates")
	fmt.Println("  version  - print the version")
	fmt.Println("  help     - show this help message")
	fmt.Println()
	fmt.Println("Adjustment parameters are given as name=value pairs after the")
	fmt.Println("flags, for example:")
	fmt.Println("  doclair preview -in photo.jpg -tool image-color-balance temperature=40")
}

// Run drives the terminal front end and returns the process exit code.
func Run() int {
	if len(os.Args) < 2 {
		usage()
		return 2
	}
	cmd := os.Args[1]
	switch cmd {
	case "help", "-h", "--help":
		usage()
		return 0
	case "version", "--version":
		fmt.Println(Version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}
	log := logger.New(cfg.LogLevel)

	switch cmd {
	case "tools":
		listTools()
		return 0
	case "preview":
		err = runPreview(cfg, log, os.Args[2:])
	case "submit":
		err = runSubmit(cfg, log, os.Args[2:])
	case "update":
		err = CheckForUpdates()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// listTools prints the catalog with per-parameter help.
func listTools() {
	for _, t := range catalog.Tools {
		mark := " "
		if t.LivePreview {
			mark = "*"
		}
		fmt.Printf("%s %-22s %s\n", mark, t.Slug, t.Description)
		for _, p := range t.Params {
			detail := p.Type
			if len(p.Enum) > 0 {
				detail += "(" + strings.Join(p.Enum, "|") + ")"
			} else if p.Min != 0 || p.Max != 0 {
				detail += fmt.Sprintf("[%g..%g]", p.Min, p.Max)
			}
			fmt.Printf("      %-16s %-22s %s\n", p.Name, detail, p.Description)
		}
	}
	fmt.Println()
	fmt.Println("* has a live local preview via 'doclair preview'")
}

// PromptLine reads one line of input after printing a prompt.
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
