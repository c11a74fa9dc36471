package config

import (
	"github.com/urfave/cli/v3"

	"github.com/fintel-lab/caseflow/pkg/service/casemgmt"
	"github.com/fintel-lab/caseflow/pkg/utils/logging"
)

// Notifier holds CLI flags for the case-management escalation channel
type Notifier struct {
	slackToken   string
	slackChannel string
}

// Flags returns CLI flags for notifier configuration
func (n *Notifier) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot token for escalation notifications",
			Category:    "Case management",
			Sources:     cli.EnvVars("CASEFLOW_SLACK_BOT_TOKEN"),
			Destination: &n.slackToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for escalation notifications",
			Category:    "Case management",
			Sources:     cli.EnvVars("CASEFLOW_SLACK_CHANNEL"),
			Destination: &n.slackChannel,
		},
	}
}

// IsConfigured reports whether a Slack destination is fully specified
func (n *Notifier) IsConfigured() bool {
	return n.slackToken != "" && n.slackChannel != ""
}

// Configure builds the escalation notifier. Without Slack configuration
// escalations are still recorded, just not pushed anywhere.
func (n *Notifier) Configure() (casemgmt.Notifier, error) {
	if !n.IsConfigured() {
		logging.Default().Info("Slack not configured, escalation notifications disabled")
		return casemgmt.Nop{}, nil
	}

	notifier, err := casemgmt.NewSlack(n.slackToken, n.slackChannel)
	if err != nil {
		return nil, err
	}
	logging.Default().Info("Slack escalation notifications enabled", "channel", n.slackChannel)
	return notifier, nil
}
