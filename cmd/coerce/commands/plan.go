package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/coerce/logger"
	"github.com/teranos/coerce/manifest"
)

var planManifestPath string

// PlanCmd dry-runs conversion resolution over a type manifest.
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Resolve conversion paths declared in a type manifest",
	Long: `Load a TOML manifest of types and resolve the conversion directive
every ordered type pair would use, without executing any conversion.

Manifest format:

  [[type]]
  name    = "Currency::USD"
  parent  = ""
  methods = ["__as_Currency_EUR", "amount"]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(planManifestPath)
		if err != nil {
			return err
		}

		plans, err := m.Plan()
		if err != nil {
			return err
		}
		logger.Logger.Debugw("resolved manifest plan",
			"manifest", planManifestPath,
			"types", len(m.Types),
			"pairs", len(plans),
		)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			type row struct {
				Source string `json:"source"`
				Target string `json:"target"`
				Via    string `json:"via"`
				Method string `json:"method,omitempty"`
			}
			rows := make([]row, 0, len(plans))
			for _, p := range plans {
				r := row{Source: p.Source, Target: p.Target, Via: p.Directive.Kind.String()}
				if p.Identity {
					r.Via = "identity"
				}
				r.Method = p.Directive.Method
				rows = append(rows, r)
			}
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		data := pterm.TableData{{"Source", "Target", "Via", "Method"}}
		for _, p := range plans {
			via := p.Directive.Kind.String()
			method := p.Directive.Method
			if p.Identity {
				via = "identity"
				method = ""
			}
			data = append(data, []string{p.Source, p.Target, via, method})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	PlanCmd.Flags().StringVarP(&planManifestPath, "manifest", "m", "types.toml", "Path to the type manifest")
}
