// Program jread checks and inspects JSON documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jread"
	"github.com/creachadair/jread/dom"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	verbose  bool
	logLevel string
	logFile  string
	format   string
	field    string
)

func main() {
	root := &cobra.Command{
		Use:           "jread",
		Short:         "Check and inspect JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose && logFile == "" {
				return nil
			}
			lg, err := newLogger(logLevel, logFile)
			if err != nil {
				return fmt.Errorf("init log: %w", err)
			}
			dom.SetLogger(lg)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	pf.StringVar(&logLevel, "log-level", "debug", "Minimum level of diagnostics to log")
	pf.StringVar(&logFile, "log-file", "", "Log diagnostics to this file instead of stderr")

	check := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report whether each file is a well-formed document",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	notes := &cobra.Command{
		Use:   "notes FILE",
		Short: "Print the notations of a document, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  runNotes,
	}

	dump := &cobra.Command{
		Use:   "dump FILE",
		Short: "Parse a document and print it as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dump.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	dump.Flags().StringVar(&field, "field", "", "Print only this dotted path of object fields")

	root.AddCommand(check, notes, dump)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jread: %v\n", err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	var nbad int
	for _, path := range args {
		if _, err := dom.ParseFile(path); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
			nbad++
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		}
	}
	if nbad > 0 {
		return fmt.Errorf("%d of %d files are not well-formed", nbad, len(args))
	}
	return nil
}

func runNotes(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	w := cmd.OutOrStdout()
	r := jread.NewReader(jread.ReaderSource(f))
	for {
		n, err := r.Next()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w, jread.Done)
			return nil
		} else if err != nil {
			return err
		}
		indent := strings.Repeat("  ", r.Depth())
		if n == jread.ObjectStart || n == jread.ArrayStart {
			indent = indent[2:]
		}
		label := n.String()
		if id := r.Identifier(); id != "" {
			label += " " + jread.Quote(id)
		}
		switch n {
		case jread.StringValue:
			fmt.Fprintf(w, "%s%s = %s\n", indent, label, jread.Quote(r.StringValue()))
		case jread.NumberValue:
			fmt.Fprintf(w, "%s%s = %s\n", indent, label, r.NumberText())
		case jread.Boolean:
			fmt.Fprintf(w, "%s%s = %v\n", indent, label, r.BoolValue())
		default:
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	v, err := dom.ParseFile(args[0])
	if err != nil {
		return err
	}
	if field != "" {
		for _, name := range strings.Split(field, ".") {
			v = dom.AsObject(v).GetField(name)
		}
	}
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		_, err := fmt.Fprintln(w, v.JSON())
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dom.ToAny(v)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
