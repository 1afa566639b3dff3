package twilio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	doc, err := NewVoiceResponder("Hello there").Greeting()
	require.NoError(t, err)

	assert.Contains(t, doc, "<Response>")
	assert.Contains(t, doc, "<Say>Hello there</Say>")
}

func TestConnectMediaStream(t *testing.T) {
	doc, err := NewVoiceResponder("Hello there").ConnectMediaStream("example.ngrok.app")
	require.NoError(t, err)

	assert.Contains(t, doc, "<Connect>")
	assert.Contains(t, doc, `url="wss://example.ngrok.app/media-stream"`)
	assert.Contains(t, doc, "<Pause")
}

func TestConnectMediaStreamRequiresHost(t *testing.T) {
	_, err := NewVoiceResponder("Hello").ConnectMediaStream("")
	assert.Error(t, err)
}
