package announce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/deadloct/random-winners/settings"
	log "github.com/sirupsen/logrus"
)

type Sender interface {
	Send(str string) (*discordgo.Message, error)
}

type SendingFunc func(str string) (*discordgo.Message, error)

// DiscordSender posts announcement text to a single channel, splitting it
// into messages that fit under the Discord length limit.
type DiscordSender struct {
	channelID string
	session   *discordgo.Session
}

func NewDiscordSender(session *discordgo.Session, channelID string) *DiscordSender {
	return &DiscordSender{
		channelID: channelID,
		session:   session,
	}
}

func (s *DiscordSender) Send(str string) (*discordgo.Message, error) {
	return sendBlock(str, s.quoted)
}

func (s *DiscordSender) quoted(str string) (*discordgo.Message, error) {
	payload := addBQ(str)
	log.Tracef("sending message of length %v", len(payload))

	msg, err := s.session.ChannelMessageSend(s.channelID, payload)
	if err != nil {
		log.Errorf("error sending message of length %v: %v", len(payload), err)
	}

	return msg, err
}

// sendBlock packs as many whole lines as fit into each message. Lines
// that are individually over the limit fall through to sendLine.
func sendBlock(str string, sender SendingFunc) (*discordgo.Message, error) {
	lines := strings.Split(str, "\n")

	var (
		msg     *discordgo.Message
		errs    []error
		err     error
		payload string
	)

	for i := 0; i < len(lines); i++ {
		if len(lines[i]) > settings.DiscordMaxMessageLength {
			if payload != "" {
				msg, err = sender(payload)
				errs = append(errs, err)
				payload = ""
			}

			_, err = sendLine(lines[i], sender)
			errs = append(errs, err)
			continue
		}

		if len(payload)+len(lines[i])+1 >= settings.DiscordMaxMessageLength {
			msg, err = sender(payload)
			errs = append(errs, err)
			payload = ""
		}

		if payload == "" {
			payload = lines[i]
		} else {
			payload = fmt.Sprintf("%s\n%s", payload, lines[i])
		}
	}

	if payload != "" {
		msg, err = sender(payload)
		errs = append(errs, err)
	}

	return msg, errors.Join(errs...)
}

// sendLine word-splits a single line that exceeds the message limit.
func sendLine(str string, sender SendingFunc) (*discordgo.Message, error) {
	if len(str) <= settings.DiscordMaxMessageLength {
		return sender(str)
	}

	words := strings.Fields(str)
	var (
		line string
		msg  *discordgo.Message
		err  error
	)

	for _, word := range words {
		// Space character between line and word is why this uses >= instead of >
		if len(line)+len(word)+1 >= settings.DiscordMaxMessageLength {
			if msg, err = sender(line); err != nil {
				return nil, err
			}

			line = ""
		}

		if line == "" {
			line = word
		} else {
			line = fmt.Sprintf("%s %s", line, word)
		}
	}

	if len(line) > 0 {
		if msg, err = sender(line); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

func addBQ(str string) string {
	parts := strings.Split(str, "\n")
	var output []string
	for _, s := range parts {
		if s == "" {
			s = settings.WhiteSpaceChar
		}

		output = append(output, "> "+s)
	}

	return strings.Join(output, "\n")
}
