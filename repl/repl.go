/*
File    : rloxj/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for rloxj. Grounded on
the teacher's Repl type (repl/repl.go): same Banner/Version/Author/Line/
Prompt fields, same chzyer/readline + fatih/color pairing for line editing
and colorized output, same ".exit"-to-quit shape. The evaluator underneath is lox.Session instead of eval.Evaluator,
so the REPL gets the same persistent-environment behavior the teacher's
loop got from reusing one *eval.Evaluator across lines (spec section 5).
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/rloxj/lox"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// readline displays before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with the given display configuration, mirroring the
// teacher's NewRepl constructor signature field-for-field.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner the same way the teacher's
// PrintBannerInfo does: a colored frame around name/version/author/license
// followed by basic usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to rloxj!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop against one persistent lox.Session,
// reading lines via readline and writing results/errors to writer until
// the user exits or the input stream closes.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := lox.NewSession(writer)
	sess.SetReader(reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, sess, line)
	}
}

// evalLine runs one line through the session, reporting lexer/parser/
// resolver errors and runtime errors in red — matching the teacher's
// executeWithRecovery, except no recover() is needed here since the
// pipeline never panics across package boundaries (the parser's internal
// fail() panic is always recovered inside the parser by declaration()).
func (r *Repl) evalLine(writer io.Writer, sess *lox.Session, line string) {
	_, err := sess.Run(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
