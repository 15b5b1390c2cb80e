package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/marmotlang/marmot/pkg/runtime"
)

var checkCmd = &cobra.Command{
	Use:   "check <manifest.yaml>",
	Short: "Load a manifest and report what it registers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := runtime.NewWithOutput(io.Discard)
		if err := rt.LoadManifest(args[0]); err != nil {
			return err
		}
		log.Info().Str("manifest", args[0]).Msg("manifest applied")

		for _, name := range rt.Registry.Generics() {
			tags, hasDefault := rt.Registry.Methods(name)
			fmt.Fprintf(cmd.OutOrStdout(), "generic %s: %d method(s)", name, len(tags))
			if hasDefault {
				fmt.Fprint(cmd.OutOrStdout(), ", default")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			for _, tag := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s.%s\n", name, tag)
			}
		}
		for _, name := range rt.Env.Names() {
			obj, _ := rt.Env.Get(name)
			fmt.Fprintf(cmd.OutOrStdout(), "object %s = %s\n", name, obj.Inspect())
		}
		return nil
	},
}
