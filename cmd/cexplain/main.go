package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cexplain/cexplain/pkg/explain"
	"github.com/cexplain/cexplain/pkg/highlight"
	mcpserver "github.com/cexplain/cexplain/pkg/mcp"
	"github.com/cexplain/cexplain/pkg/parser"
	"github.com/cexplain/cexplain/pkg/session"
)

var version = "0.1.0"

var (
	formatName  string
	sessionPath string
	clearTypes  bool
)

// ErrParse indicates the input declaration did not parse. The errors
// themselves have already been written to the error stream.
var ErrParse = errors.New("parsing failed")

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cexplain [declaration]",
		Short: "cexplain translates C declarations into plain English",
		Long: `cexplain parses C variable, function, and typedef declarations and
explains them in plain English. The declaration can be given as
arguments or piped on stdin, one declaration per line.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := formatterFor(formatName)
			if err != nil {
				fmt.Fprintf(errOut, "cexplain: %v\n", err)
				return err
			}

			state := parser.NewState()
			store, err := openSession(state, errOut)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			if len(args) > 0 {
				return explainInput(strings.Join(args, " "), state, store, formatter, out, errOut)
			}

			// No arguments: explain stdin line by line. Parse errors are
			// reported but do not stop the loop.
			var failed bool
			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := explainInput(line, state, store, formatter, out, errOut); err != nil {
					if !errors.Is(err, ErrParse) {
						return err
					}
					failed = true
				}
			}
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(errOut, "cexplain: error reading input: %v\n", err)
				return err
			}
			if failed {
				return ErrParse
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "plain",
		"Output format: plain, ansi, or html")
	rootCmd.PersistentFlags().StringVarP(&sessionPath, "session", "s", "",
		"Path to a session database for persisting typedefs")

	rootCmd.AddCommand(newServeCmd(errOut))
	rootCmd.AddCommand(newTypesCmd(out, errOut))

	return rootCmd
}

// formatterFor maps a --format value to a highlight formatter.
func formatterFor(name string) (highlight.Formatter, error) {
	switch name {
	case "plain":
		return highlight.PlainFormatter{}, nil
	case "ansi":
		return highlight.NewANSIFormatter(), nil
	case "html":
		return highlight.NewHTMLFormatter(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want plain, ansi, or html)", name)
}

// openSession opens the --session store, if any, and seeds the parser
// state with its typedefs.
func openSession(state *parser.State, errOut io.Writer) (*session.Store, error) {
	if sessionPath == "" {
		return nil, nil
	}
	store, err := session.Open(sessionPath)
	if err != nil {
		fmt.Fprintf(errOut, "cexplain: %v\n", err)
		return nil, err
	}
	if err := store.Load(state); err != nil {
		store.Close()
		fmt.Fprintf(errOut, "cexplain: %v\n", err)
		return nil, err
	}
	return store, nil
}

// explainInput parses one input, prints an explanation per declaration,
// and persists any typedefs to the session store.
func explainInput(src string, state *parser.State, store *session.Store,
	formatter highlight.Formatter, out, errOut io.Writer) error {

	decls, errs := parser.Parse(src, state)
	if len(errs) > 0 {
		fmt.Fprintf(errOut, "cexplain: error(s) parsing declaration:\n")
		for _, e := range errs {
			fmt.Fprintf(errOut, "  %s\n", e)
		}
		return ErrParse
	}

	for _, decl := range decls {
		line, err := highlight.Render(formatter, explain.Explain(decl))
		if err != nil {
			return err
		}
		if len(decls) > 1 {
			line += ";"
		}
		fmt.Fprintln(out, line)
	}

	if store != nil {
		if err := store.Save(state); err != nil {
			fmt.Fprintf(errOut, "cexplain: %v\n", err)
			return err
		}
	}
	return nil
}

// newServeCmd runs the explainer as an MCP server on stdio.
func newServeCmd(errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server exposing the explainer over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *session.Store
			if sessionPath != "" {
				var err error
				store, err = session.Open(sessionPath)
				if err != nil {
					fmt.Fprintf(errOut, "cexplain: %v\n", err)
					return err
				}
				defer store.Close()
			}

			s, err := mcpserver.New(mcpserver.Config{Version: version, Store: store})
			if err != nil {
				fmt.Fprintf(errOut, "cexplain: %v\n", err)
				return err
			}
			return s.ServeStdio()
		},
	}
}

// newTypesCmd lists or clears the typedefs stored in a session database.
func newTypesCmd(out, errOut io.Writer) *cobra.Command {
	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List or clear the typedefs stored in the session database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionPath == "" {
				err := errors.New("types requires --session")
				fmt.Fprintf(errOut, "cexplain: %v\n", err)
				return err
			}
			store, err := session.Open(sessionPath)
			if err != nil {
				fmt.Fprintf(errOut, "cexplain: %v\n", err)
				return err
			}
			defer store.Close()

			if clearTypes {
				if err := store.Clear(); err != nil {
					fmt.Fprintf(errOut, "cexplain: %v\n", err)
					return err
				}
				return nil
			}

			names, err := store.Names()
			if err != nil {
				fmt.Fprintf(errOut, "cexplain: %v\n", err)
				return err
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	typesCmd.Flags().BoolVar(&clearTypes, "clear", false, "Remove all stored typedefs")
	return typesCmd
}
