package twilio

import (
	"fmt"

	"github.com/twilio/twilio-go/twiml"
)

const (
	holdMessage     = "Please wait while we connect your call to your AI verification agent."
	mediaStreamPath = "/media-stream"
)

// VoiceResponder builds the TwiML documents Twilio fetches when a call connects
type VoiceResponder interface {
	Greeting() (string, error)
	ConnectMediaStream(host string) (string, error)
}

type voiceResponderImpl struct {
	greeting string
}

// NewVoiceResponder creates a responder that greets callers with the given text
func NewVoiceResponder(greeting string) VoiceResponder {
	return &voiceResponderImpl{greeting: greeting}
}

// Greeting answers a plain inbound call with a spoken greeting
func (v *voiceResponderImpl) Greeting() (string, error) {
	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: v.greeting},
	})
	if err != nil {
		return "", fmt.Errorf("error building greeting TwiML: %w", err)
	}
	return doc, nil
}

// ConnectMediaStream tells Twilio to bridge the call audio to wss://<host>/media-stream
func (v *voiceResponderImpl) ConnectMediaStream(host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("error building stream TwiML: empty host")
	}

	stream := &twiml.VoiceStream{Url: fmt.Sprintf("wss://%s%s", host, mediaStreamPath)}
	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: holdMessage},
		&twiml.VoicePause{Length: "1"},
		&twiml.VoiceSay{Message: v.greeting},
		&twiml.VoiceConnect{InnerElements: []twiml.Element{stream}},
	})
	if err != nil {
		return "", fmt.Errorf("error building stream TwiML: %w", err)
	}
	return doc, nil
}
