package reply

import (
	"path/filepath"

	"github.com/twilio/twilio-go/twiml"

	"github.com/tally-networks/finance-bot/internal/bot"
)

// Formatter turns a handler Reply into the TwiML payload the transport
// expects: a plain <Message>, or <Body> plus <Media> when the reply carries
// a chart artifact. Media URLs are served from the public host's /reports/
// path.
type Formatter struct {
	PublicHost string
}

func NewFormatter(publicHost string) *Formatter {
	return &Formatter{PublicHost: publicHost}
}

func (f *Formatter) Format(r bot.Reply) (string, error) {
	if !r.IsMedia() {
		message := &twiml.MessagingMessage{Body: r.Text}
		return twiml.Messages([]twiml.Element{message})
	}

	message := &twiml.MessagingMessage{}
	message.InnerElements = []twiml.Element{
		&twiml.MessagingBody{Message: r.Text},
		&twiml.MessagingMedia{Url: f.MediaURL(r.MediaPath)},
	}
	return twiml.Messages([]twiml.Element{message})
}

// MediaURL maps an artifact path to its publicly reachable URL.
func (f *Formatter) MediaURL(artifactPath string) string {
	return "https://" + f.PublicHost + "/reports/" + filepath.Base(artifactPath)
}
