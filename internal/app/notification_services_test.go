//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	cfg := TestConfig()
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	setup := func(t *testing.T) (notifications.NotificationService, *RecordingNotifier, *testutil.RecordingLogger) {
		n := &RecordingNotifier{}
		log := testutil.NewRecordingLogger()
		svc, err := NewNotificationService(n, cfg.Notifications, cfg.AppURL+"/", log)
		require.NoError(t, err)
		return svc, n, log
	}

	t.Run("intake", func(t *testing.T) {
		svc, n, _ := setup(t)
		ok := svc.NotifyIntake(ctx, notifications.IntakeNotice{
			CaseID:           "case-1",
			Title:            "Spouse Visa <Urgent>",
			ApplicantName:    "Jane Doe",
			ApplicantEmail:   "jane@example.com",
			ServiceTypeTitle: "Spouse Visa",
			CreatedAt:        created,
		})
		require.True(t, ok)

		msgs := n.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, notifications.KindIntake, msgs[0].Kind)
		assert.Equal(t, "New Case Intake: Spouse Visa <Urgent>", msgs[0].Subject)
		assert.Contains(t, msgs[0].HTML, "Spouse Visa &lt;Urgent&gt;")
		assert.Contains(t, msgs[0].HTML, `href="http://localhost:3000/cases/case-1"`)
		assert.Contains(t, msgs[0].HTML, "2026-02-03 04:05:06 UTC")
		assert.Contains(t, msgs[0].Text, "- Service Type: Spouse Visa")
		assert.NotContains(t, msgs[0].HTML, "<em>")
	})

	t.Run("intake with service type description", func(t *testing.T) {
		svc, n, _ := setup(t)
		ok := svc.NotifyIntake(ctx, notifications.IntakeNotice{
			CaseID:                 "case-2",
			Title:                  "Work Visa Application",
			ServiceTypeTitle:       "Work Visa",
			ServiceTypeDescription: "Employment & renewals",
			CreatedAt:              created,
		})
		require.True(t, ok)

		msg := n.Messages()[0]
		assert.Contains(t, msg.HTML, "Service Type:</strong> Work Visa<br>")
		assert.Contains(t, msg.HTML, "<em>Employment &amp; renewals</em><br>")
		assert.Contains(t, msg.Text, "- Service Type: Work Visa (Employment & renewals)")
	})

	t.Run("status change", func(t *testing.T) {
		svc, n, _ := setup(t)
		ok := svc.NotifyStatusChange(ctx, notifications.StatusChangeNotice{
			CaseID:         "case-1",
			Title:          "Work Visa",
			ApplicantName:  "Jane Doe",
			ApplicantEmail: "jane@example.com",
			PreviousStatus: "new",
			NewStatus:      "in_review",
			ChangedBy:      "Dev User",
			ChangedAt:      created,
		})
		require.True(t, ok)

		msgs := n.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, []string{"admin@lvj.com"}, msgs[0].To)
		assert.Equal(t, "Case Status Change: Work Visa → in_review", msgs[0].Subject)
		assert.Contains(t, msgs[0].HTML, "Service Type:</strong> Not specified<br>")
		assert.Contains(t, msgs[0].HTML, "Previous Status:</strong> new<br>")
		assert.Contains(t, msgs[0].Text, "Changed By: Dev User")
	})

	t.Run("failure is reported", func(t *testing.T) {
		svc, n, log := setup(t)
		n.FailWith(true)

		ok := svc.NotifyIntake(ctx, notifications.IntakeNotice{CaseID: "case-9", Title: "X", CreatedAt: created})
		assert.False(t, ok)
		assert.True(t, log.Contains("Failed to send intake notification for case case-9"))
	})
}
