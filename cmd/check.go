package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cottand/reify/generr"
	"github.com/cottand/reify/manifest"
	"github.com/cottand/reify/reify"
)

var CheckCmd = &cobra.Command{
	Use:          "check manifest.toml",
	Short:        "Load a declaration manifest and run every load-time validation",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runCheck(_ *cobra.Command, args []string) error {
	decls, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	engine := reify.NewEngine(nil)
	failures := 0
	for _, decl := range decls {
		if err := engine.LoadDeclaration(decl); err != nil {
			failures++
			if typeErr, ok := err.(generr.TypeError); ok {
				pterm.Error.Printfln("%s: %s", decl.Name, generr.FormatWithCode(typeErr))
			} else {
				pterm.Error.Printfln("%s: %s", decl.Name, err)
			}
			continue
		}
		pterm.Success.Printfln("%s", decl.Name)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d declaration(s) rejected", failures, len(decls))
	}
	pterm.Info.Printfln("all %d declaration(s) loaded", len(decls))
	return nil
}
