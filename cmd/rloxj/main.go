/*
File    : rloxj/cmd/rloxj/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the rloxj interpreter. It provides
three modes of operation, adapted from the teacher's main/main.go:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. File Mode: execute a .lox source file and exit
3. Server Mode: a TCP listener handing each connection its own REPL

The exit codes on file-mode failure follow spec section 6 exactly: 65 for
a lexer/parser/resolver error, 70 for a runtime error, 7 for a usage
error (more than one script argument).
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/rloxj/lox"
	"github.com/akashmaji946/rloxj/repl"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENSE = "MIT"
var PROMPT = "rloxj >>> "

var BANNER = `
  ██▀███   ██▓    ▒█████  ▒██   ██▒   ▄▄▄██▀▀▀
 ▓██ ▒ ██▒▓██▒   ▒██▒  ██▒▒▒ █ █ ▒░     ▒██
 ▓██ ░▄█ ▒▒██░   ▒██░  ██▒░░  █   ░     ░██
 ▒██▀▀█▄  ▒██░   ▒██   ██░ ░ █ █ ▒  ▓██▄██▓
 ░██▓ ▒██▒░██████░ ████▓▒░▒██▒ ▒██▒  ▓███▒
 ░ ▒▓ ░▒▓░░ ▒░▓  ░ ▒░▒░▒░ ▒▒ ░ ░▓ ░  ▒▓▒▒░
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Exit codes per spec section 6.
const (
	exitOK          = 0
	exitFrontendErr = 65
	exitRuntimeErr  = 70
	exitUsageErr    = 7
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "usage: rloxj server <port>\n")
				os.Exit(exitUsageErr)
			}
			startServer(os.Args[2])
			return
		}

		if len(os.Args) > 2 {
			redColor.Fprintf(os.Stderr, "Usage: rloxj [script]\n")
			os.Exit(exitUsageErr)
		}
		runFile(os.Args[1])
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("rloxj - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  rloxj                    Start interactive REPL mode")
	fmt.Println("  rloxj <path-to-file>     Execute a Lox file")
	fmt.Println("  rloxj server <port>      Start REPL server on specified port")
	fmt.Println("  rloxj --help             Display this help message")
	fmt.Println("  rloxj --version          Display version information")
}

func showVersion() {
	cyanColor.Println("rloxj - a tree-walking Lox interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and runs a Lox script to completion, exiting with the
// code matching whichever pipeline stage failed (spec section 6).
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(exitUsageErr)
	}

	sess := lox.NewSession(os.Stdout)
	status, runErr := sess.Run(string(source))
	if runErr == nil {
		os.Exit(exitOK)
	}

	redColor.Fprintf(os.Stderr, "%s\n", runErr.Error())
	switch status {
	case lox.StatusFrontendError:
		os.Exit(exitFrontendErr)
	case lox.StatusRuntimeError:
		os.Exit(exitRuntimeErr)
	default:
		os.Exit(exitRuntimeErr)
	}
}

// startServer listens on port, handing each accepted connection its own
// REPL session and its own interpreter state (spec section 5's
// concurrency model), adapted from the teacher's startServer/handleClient.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(exitUsageErr)
	}
	cyanColor.Printf("rloxj REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
