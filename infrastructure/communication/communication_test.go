package communication

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"axiapac.com/timesheets/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedMessage(t *testing.T) {
	ts := model.Timesheet{Week: 3, StartDate: "2024-01-15", EndDate: "2024-01-19", Hours: 40}
	assert.Equal(t, ":white_check_mark: Week 3 (15 - 19 January 2024) completed with 40 hours", CompletedMessage(ts))

	bad := model.Timesheet{Week: 1, StartDate: "x", EndDate: "y", Hours: 42.5}
	assert.Equal(t, ":white_check_mark: Week 1 (x - y) completed with 42.5 hours", CompletedMessage(bad))
}

func TestSlackTimesheetCompleted(t *testing.T) {
	var channel, text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		channel = r.FormValue("channel")
		text = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.2"}`))
	}))
	defer server.Close()

	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "C1", APIURL: server.URL + "/"})
	err := s.TimesheetCompleted(context.Background(), model.Timesheet{Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 40})
	require.NoError(t, err)
	assert.Equal(t, "C1", channel)
	assert.Contains(t, text, "Week 1")
}

func TestSlackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "C404", APIURL: server.URL + "/"})
	err := s.Info(context.Background(), "hi")
	assert.ErrorContains(t, err, "channel_not_found")
}
