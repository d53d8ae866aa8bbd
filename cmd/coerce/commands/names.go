package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/coerce"
	"github.com/teranos/coerce/errors"
)

// NamesCmd derives the conversion method names for a type.
var NamesCmd = &cobra.Command{
	Use:   "names <type>",
	Short: "Derive the conversion method names for a type",
	Long: `Derive the push and pull method names a type participates in coercion
with. The push method is what a source type defines to become the named
type; the pull method is what the named type's conversion partners look
for when they accept its instances.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, ok := coerce.ValidTypeName(args[0])
		if !ok {
			return errors.Wrapf(coerce.ErrInvalidTypeName, "%q", args[0])
		}

		push := coerce.PushMethodName(name)
		pull := coerce.PullMethodName(name)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			out, err := json.MarshalIndent(map[string]string{
				"type": name,
				"push": push,
				"pull": pull,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"Direction", "Declared on", "Method"},
			{"push", "a source wanting to become " + name, push},
			{"pull", "a target accepting " + name + " instances", pull},
		}).Render()
	},
}
