package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/coerce"
	"github.com/teranos/coerce/errors"
)

// CheckCmd validates identifiers against the convention's grammars.
var CheckCmd = &cobra.Command{
	Use:   "check <type|method> <name>",
	Short: "Validate a type or method name",
	Long: `Validate a name against the convention's grammars. Type names are one
or more identifier segments joined by "::"; "::" alone names the root
namespace and a leading "::" roots the name under it. Method names are
bare identifiers with no namespace separators.

Exits non-zero when the name is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, input := args[0], args[1]

		var normalized string
		var ok bool
		switch kind {
		case "type":
			normalized, ok = coerce.ValidTypeName(input)
		case "method":
			normalized, ok = coerce.ValidMethodName(input)
		default:
			return errors.Newf("unknown kind %q: want type or method", kind)
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			out, err := json.MarshalIndent(map[string]any{
				"kind":       kind,
				"input":      input,
				"valid":      ok,
				"normalized": normalized,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			if !ok {
				return errors.Newf("invalid %s name: %q", kind, input)
			}
			return nil
		}

		if !ok {
			pterm.Error.Printfln("rejected %s name: %q", kind, input)
			return errors.Newf("invalid %s name: %q", kind, input)
		}
		if normalized != input {
			pterm.Success.Printfln("%q is a valid %s name (normalized to %q)", input, kind, normalized)
		} else {
			pterm.Success.Printfln("%q is a valid %s name", input, kind)
		}
		return nil
	},
}
