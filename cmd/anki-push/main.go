package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/abstract-tutoring/anki-push/internal/commands"
)

func usage() {
	fmt.Println("anki-push add <front> <back> [--deck name] [--model name] [--tags a,b] [--allow-html]")
	fmt.Println("anki-push add-file <path> [--allow-html]")
}

type cmdHandler func([]string) error

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found — relying on environment")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	handlers := map[string]cmdHandler{
		"add":      handleAdd,
		"add-file": handleAddFile,
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	handler, ok := handlers[cmd]
	if !ok {
		usage()
		os.Exit(2)
	}

	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", cmd, err)
		os.Exit(1)
	}
}

func handleAdd(args []string) error {
	var positional []string
	var deck, model, tagsRaw string
	var allowHTML bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--deck":
			if i++; i >= len(args) {
				return fmt.Errorf("--deck requires a value")
			}
			deck = args[i]
		case "--model":
			if i++; i >= len(args) {
				return fmt.Errorf("--model requires a value")
			}
			model = args[i]
		case "--tags":
			if i++; i >= len(args) {
				return fmt.Errorf("--tags requires a value")
			}
			tagsRaw = args[i]
		case "--allow-html":
			allowHTML = true
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) != 2 {
		return fmt.Errorf("must provide exactly front and back text")
	}

	return commands.AddCard(positional[0], positional[1], deck, model, commands.ParseTags(tagsRaw), allowHTML)
}

func handleAddFile(args []string) error {
	var path string
	var allowHTML bool

	for _, arg := range args {
		if arg == "--allow-html" {
			allowHTML = true
			continue
		}
		if path != "" {
			return fmt.Errorf("must provide exactly one card file")
		}
		path = arg
	}

	if path == "" {
		return fmt.Errorf("no card file provided")
	}

	return commands.AddCardFromFile(path, allowHTML)
}
