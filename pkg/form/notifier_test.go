package form

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navarrastar/resume-verify/pkg/models"
)

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := LogNotifier{Logger: logger}

	n.Notify(models.Notification{Title: "Invalid email", Description: "Please enter a valid email address", Variant: models.VariantDestructive})
	n.Notify(models.Notification{Title: "Verification Scheduled!", Description: "soon", Variant: models.VariantDefault})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Invalid email", entries[0].Data["title"])
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, "soon", entries[1].Message)
}

func TestNotifierFunc(t *testing.T) {
	var got models.Notification
	NotifierFunc(func(n models.Notification) { got = n }).Notify(models.Notification{Title: "x"})
	assert.Equal(t, "x", got.Title)
}
