package casemgmt

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/fintel-lab/caseflow/pkg/domain/model"
)

// slackNotifier posts escalation hand-offs to the case-management team's
// Slack channel
type slackNotifier struct {
	api     *slack.Client
	channel string
}

// Option is a functional option for notifier configuration
type Option func(*slackNotifier)

// NewSlack creates a Slack-backed Notifier posting to the given channel
func NewSlack(token, channel string, opts ...Option) (Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	n := &slackNotifier{
		api:     slack.New(token),
		channel: channel,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NotifyEscalation implements Notifier
func (n *slackNotifier) NotifyEscalation(ctx context.Context, e *model.Escalation) error {
	attachment := slack.Attachment{
		Color: "#d32f2f",
		Title: fmt.Sprintf("Escalated: %s", e.ReferenceNumber),
		Fields: []slack.AttachmentField{
			{Title: "Report Type", Value: e.ReportType.String(), Short: true},
			{Title: "Entity", Value: e.EntityID.String(), Short: true},
			{Title: "Decided By", Value: e.DecidedBy.String(), Short: true},
			{Title: "Decided At", Value: e.DecidedAt.UTC().Format("2006-01-02 15:04:05 MST"), Short: true},
			{Title: "Reason", Value: e.Reason},
		},
	}

	_, _, err := n.api.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText("A submission was escalated for investigation", false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post escalation notification",
			goerr.V(model.SubmissionIDKey, e.SubmissionID),
			goerr.V("channel", n.channel))
	}
	return nil
}
