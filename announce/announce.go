// Package announce posts draw results to a Discord channel.
package announce

import (
	"bytes"
	"text/template"

	"github.com/deadloct/random-winners/data"
	"github.com/deadloct/random-winners/draw"
	log "github.com/sirupsen/logrus"
)

var announcementTmpl = template.Must(
	template.New("announcement").Parse(data.AnnouncementTemplate))

type announcementValues struct {
	Count   int
	Total   int
	Winners []draw.Winner
}

// Announce renders the winner announcement and sends it.
func Announce(sender Sender, winners []draw.Winner, total int) error {
	msg, err := renderAnnouncement(winners, total)
	if err != nil {
		return err
	}

	log.Debugf("announcing %v winners", len(winners))
	_, err = sender.Send(msg)
	return err
}

func renderAnnouncement(winners []draw.Winner, total int) (string, error) {
	var result bytes.Buffer
	vals := announcementValues{
		Count:   len(winners),
		Total:   total,
		Winners: winners,
	}

	if err := announcementTmpl.Execute(&result, vals); err != nil {
		return "", err
	}

	return result.String(), nil
}
