package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/breadmotion/pankun/builder/run"
	"github.com/breadmotion/pankun/internal/clean"
	"github.com/breadmotion/pankun/internal/new"
	"github.com/breadmotion/pankun/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		if err := run.Run(args); err != nil {
			slog.Error("build failed", "error", err)
			os.Exit(1)
		}
	case "serve":
		if err := server.Run(args); err != nil {
			slog.Error("serve failed", "error", err)
			os.Exit(1)
		}
	case "new":
		new.Run(args)
	case "clean":
		clean.Run(args)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: pankun <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  build                       Build blog and portfolio pages plus index JSON")
	fmt.Println("  serve                       Build, then serve the site with rebuild on change")
	fmt.Println("  new [-portfolio] <title>    Create a new content file")
	fmt.Println("  clean                       Remove generated output")
	fmt.Println("  help                        Show this help message")
	fmt.Println("\nFlags for build/serve:")
	fmt.Println("  -baseurl <url>              Base URL of the published site")
	fmt.Println("  -content <dir>              Content directory (default content)")
	fmt.Println("  -out <dir>                  Output directory (default .)")
	fmt.Println("  -compress                   Minify output and re-encode thumbnails")
}
