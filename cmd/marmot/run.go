package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmotlang/marmot/internal/manifest"
	"github.com/marmotlang/marmot/internal/object"
	"github.com/marmotlang/marmot/pkg/runtime"
)

var (
	runGeneric string
	runObject  string
)

func init() {
	runCmd.Flags().StringVarP(&runGeneric, "generic", "g", "", "generic function to dispatch")
	runCmd.Flags().StringVarP(&runObject, "object", "o", "", "manifest object to dispatch on")
	runCmd.MarkFlagRequired("generic")
	runCmd.MarkFlagRequired("object")
}

var runCmd = &cobra.Command{
	Use:   "run <manifest.yaml> [extra args...]",
	Short: "Apply a manifest and dispatch one call",
	Long: `Applies the manifest, then dispatches the chosen generic on the chosen
object. Extra arguments are YAML literals passed through to the
resolved implementation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := runtime.NewWithOutput(cmd.OutOrStdout())
		if err := rt.LoadManifest(args[0]); err != nil {
			return err
		}

		obj, ok := rt.Env.Get(runObject)
		if !ok {
			return fmt.Errorf("no object %q in manifest", runObject)
		}

		extra := make([]object.Object, 0, len(args)-1)
		for _, raw := range args[1:] {
			val, err := manifest.ParseValue([]byte(raw))
			if err != nil {
				return err
			}
			extra = append(extra, val)
		}

		result, err := rt.Dispatch(runGeneric, obj, extra...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Inspect())
		return nil
	},
}
