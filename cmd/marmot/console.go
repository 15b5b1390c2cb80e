package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmotlang/marmot/internal/builtins"
	"github.com/marmotlang/marmot/internal/dispatch"
	"github.com/marmotlang/marmot/internal/manifest"
	"github.com/marmotlang/marmot/internal/object"
	"github.com/marmotlang/marmot/pkg/runtime"
)

var consoleManifest string

func init() {
	consoleCmd.Flags().StringVarP(&consoleManifest, "manifest", "m", "", "manifest to apply before starting")
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive dispatch console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := runtime.NewWithOutput(cmd.OutOrStdout())
		if consoleManifest != "" {
			if err := rt.LoadManifest(consoleManifest); err != nil {
				return err
			}
		}
		repl(rt, cmd.InOrStdin(), cmd.OutOrStdout())
		return nil
	},
}

const consoleHelp = `commands:
  declare <generic>                  declare a generic function
  method <generic> <tag> <impl>      bind a builtin impl as a method
  default <generic> <impl>           bind a builtin impl as the default
  impls                              list builtin impl names
  tag <name> <tag> <value>           create a tagged object (value is YAML)
  retag <name> <tag>                 reassign an object's class tag
  call <generic> <name> [args...]    dispatch (args are YAML literals)
  show <name>                        inspect an object
  env                                list objects
  generics                           list generics and their methods
  quit`

func repl(rt *runtime.Runtime, in io.Reader, out io.Writer) {
	prompt := rt.Out().Interactive()
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "marmot> ")
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := execLine(rt, out, line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func execLine(rt *runtime.Runtime, out io.Writer, line string) error {
	fields := strings.Fields(line)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(out, consoleHelp)
	case "declare":
		if len(rest) != 1 {
			return errors.New("usage: declare <generic>")
		}
		rt.Declare(rest[0])
	case "method":
		if len(rest) != 3 {
			return errors.New("usage: method <generic> <tag> <impl>")
		}
		impl, err := lookupImpl(rt, rest[2])
		if err != nil {
			return err
		}
		return rt.RegisterMethod(rest[0], rest[1], impl)
	case "default":
		if len(rest) != 2 {
			return errors.New("usage: default <generic> <impl>")
		}
		impl, err := lookupImpl(rt, rest[1])
		if err != nil {
			return err
		}
		return rt.RegisterDefault(rest[0], impl)
	case "impls":
		for name := range builtins.Catalog(rt.Out()) {
			fmt.Fprintln(out, name)
		}
	case "tag":
		if len(rest) < 3 {
			return errors.New("usage: tag <name> <tag> <value>")
		}
		raw := strings.Join(rest[2:], " ")
		val, err := manifest.ParseValue([]byte(raw))
		if err != nil {
			return err
		}
		rt.Tag(rest[0], rest[1], val)
	case "retag":
		if len(rest) != 2 {
			return errors.New("usage: retag <name> <tag>")
		}
		obj, ok := rt.Env.Get(rest[0])
		if !ok {
			return fmt.Errorf("no object %q", rest[0])
		}
		tagged, ok := obj.(*object.Tagged)
		if !ok {
			return fmt.Errorf("%s is not a tagged object", rest[0])
		}
		tagged.SetTag(rest[1])
	case "call":
		if len(rest) < 2 {
			return errors.New("usage: call <generic> <name> [args...]")
		}
		obj, ok := rt.Env.Get(rest[1])
		if !ok {
			return fmt.Errorf("no object %q", rest[1])
		}
		extra := make([]object.Object, 0, len(rest)-2)
		for _, raw := range rest[2:] {
			val, err := manifest.ParseValue([]byte(raw))
			if err != nil {
				return err
			}
			extra = append(extra, val)
		}
		result, err := rt.Dispatch(rest[0], obj, extra...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Inspect())
	case "show":
		if len(rest) != 1 {
			return errors.New("usage: show <name>")
		}
		obj, ok := rt.Env.Get(rest[0])
		if !ok {
			return fmt.Errorf("no object %q", rest[0])
		}
		fmt.Fprintln(out, obj.Inspect())
	case "env":
		for _, name := range rt.Env.Names() {
			obj, _ := rt.Env.Get(name)
			fmt.Fprintf(out, "%s = %s\n", name, obj.Inspect())
		}
	case "generics":
		for _, name := range rt.Registry.Generics() {
			tags, hasDefault := rt.Registry.Methods(name)
			fmt.Fprintf(out, "%s: tags %v, default %t\n", name, tags, hasDefault)
		}
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func lookupImpl(rt *runtime.Runtime, name string) (dispatch.Impl, error) {
	impl, ok := builtins.Catalog(rt.Out())[name]
	if !ok {
		return nil, fmt.Errorf("unknown impl %q (try impls)", name)
	}
	return impl, nil
}
