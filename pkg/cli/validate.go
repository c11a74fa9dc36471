package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/fintel-lab/caseflow/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	var policyCfg config.Policy

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the workflow policy file",
		Flags:   policyCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := policyCfg.Configure()
			if err != nil {
				color.Red("✗ %s", policyCfg.Path())
				return goerr.Wrap(err, "policy validation failed")
			}

			color.Green("✓ %s", policyCfg.Path())
			fmt.Printf("  SLA rules:    %d\n", len(policy.SLA))
			fmt.Printf("  Entities:     %d\n", len(policy.Entities))
			fmt.Printf("  Actor pools:  %d\n", len(policy.Pools))

			for _, rule := range policy.SLA {
				fmt.Printf("  - SLA %s/%s: %s\n", rule.ReportType, rule.Stage, rule.Threshold)
			}
			for _, pool := range policy.Pools {
				fmt.Printf("  - Pool %s: %d actors\n", pool.Stage, len(pool.Actors))
			}

			return nil
		},
	}
}
