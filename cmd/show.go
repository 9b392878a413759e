package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cottand/reify/manifest"
	"github.com/cottand/reify/reify"
)

var ShowCmd = &cobra.Command{
	Use:          "show manifest.toml 'Type<Args, ...>'",
	Short:        "Resolve a type reference against a manifest and print its canonical form",
	RunE:         runShow,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

func runShow(_ *cobra.Command, args []string) error {
	decls, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	engine := reify.NewEngine(nil)
	for _, decl := range decls {
		if err := engine.LoadDeclaration(decl); err != nil {
			return err
		}
	}
	expr, err := manifest.ParseRef(args[1])
	if err != nil {
		return err
	}
	reified, err := engine.Instantiate(expr.Base, expr.Args)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%s", reified.String())
	return nil
}
