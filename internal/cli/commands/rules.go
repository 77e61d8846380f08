package commands

import (
	"strings"

	"github.com/leapstack-labs/convy/internal/cli/output"
	"github.com/leapstack-labs/convy/pkg/lint"
	_ "github.com/leapstack-labs/convy/pkg/lint/rules" // register built-in rules
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the allowed commit types and validation rules",
		Long:  `List the configured commit type allow-list and the registered validation rules in evaluation order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			allowed := cmdCtx.Cfg.LintConfig().AllowedTypes()

			rules := lint.All()
			if r.EffectiveMode() == output.ModeJSON {
				type jsonRule struct {
					ID          string `json:"id"`
					Name        string `json:"name"`
					Group       string `json:"group"`
					Severity    string `json:"severity"`
					Description string `json:"description"`
				}
				out := struct {
					AllowedTypes []string   `json:"allowed_types"`
					Rules        []jsonRule `json:"rules"`
				}{AllowedTypes: allowed}
				for _, rule := range rules {
					out.Rules = append(out.Rules, jsonRule{
						ID:          rule.ID,
						Name:        rule.Name,
						Group:       rule.Group,
						Severity:    rule.Severity.String(),
						Description: rule.Description,
					})
				}
				return r.JSON(out)
			}

			styles := r.Styles()
			r.Printf("%s %s\n\n", styles.Field.Render("allowed types:"), strings.Join(allowed, ", "))
			for _, rule := range rules {
				r.Printf("%s  %s (%s)\n", styles.Bold.Render(rule.ID), rule.Name, rule.Severity)
				r.Printf("      %s\n", rule.Description)
			}
			return nil
		},
	}
}
