package communication

import (
	"context"
	"fmt"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/utils"
	"github.com/slack-go/slack"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID string
	// APIURL overrides the Slack endpoint, e.g. for tests. Must end with "/".
	APIURL string
}

func NewSlack(token string, options SlackOption) *Slack {
	var opts []slack.Option
	if options.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(options.APIURL))
	}
	client := slack.New(token, opts...)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(ctx context.Context, channelID, message string) error {
	_, _, err := s.client.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(ctx context.Context, message string) error {
	return s.postMessage(ctx, s.options.InfoChannelID, message)
}

// TimesheetCompleted posts a short note when a week reaches its required hours.
func (s *Slack) TimesheetCompleted(ctx context.Context, ts model.Timesheet) error {
	return s.Info(ctx, CompletedMessage(ts))
}

func CompletedMessage(ts model.Timesheet) string {
	label := ts.StartDate + " - " + ts.EndDate
	start, errStart := utils.ParseDate(ts.StartDate)
	end, errEnd := utils.ParseDate(ts.EndDate)
	if errStart == nil && errEnd == nil {
		label = core.FormatDateRange(start, end)
	}
	return fmt.Sprintf(":white_check_mark: Week %d (%s) completed with %g hours", ts.Week, label, ts.Hours)
}
