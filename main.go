package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/bwmarrin/discordgo"
	"github.com/deadloct/random-winners/announce"
	"github.com/deadloct/random-winners/draw"
	"github.com/deadloct/random-winners/settings"
	log "github.com/sirupsen/logrus"
)

var cli struct {
	InputFile string `arg:"" help:"Path to a text file with one participant name per line."`
	Winners   int    `arg:"" help:"Number of random winners to select."`

	Verbose  bool `short:"v" help:"Enable verbose logging."`
	Announce bool `help:"Post the winners to the configured Discord channel."`
}

func main() {
	settings.LoadEnvFiles()

	kong.Parse(&cli,
		kong.Name("random-winners"),
		kong.Description("Selects random, non-repeating winners from a participant list."),
		kong.UsageOnError(),
	)

	log.SetLevel(log.WarnLevel)
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Validated before touching the file so a bad count fails fast.
	if cli.Winners < 1 {
		return draw.ErrInvalidWinnerCount
	}

	names, err := draw.LoadRoster(cli.InputFile)
	if err != nil {
		return err
	}

	winners, err := draw.NewSampler().Draw(names, cli.Winners)
	if err != nil {
		return err
	}

	printWinners(os.Stdout, winners, len(names))

	if cli.Announce {
		return announceWinners(winners, len(names))
	}

	return nil
}

func printWinners(w io.Writer, winners []draw.Winner, total int) {
	fmt.Fprintf(w, "🎉 Randomly selected %v winner(s) from %v participants:\n\n", len(winners), total)
	for _, winner := range winners {
		fmt.Fprintf(w, "  %v. %v\n", winner.Rank, winner.Name)
	}

	fmt.Fprintln(w)
}

func announceWinners(winners []draw.Winner, total int) error {
	token := settings.GetenvStr(settings.DiscordTokenKey)
	channelID := settings.GetenvStr(settings.DiscordChannelKey)
	if token == "" || channelID == "" {
		return fmt.Errorf("announcing requires %v and %v to be set",
			settings.EnvKey(settings.DiscordTokenKey),
			settings.EnvKey(settings.DiscordChannelKey))
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("unable to create discord session: %w", err)
	}

	if err := session.Open(); err != nil {
		return fmt.Errorf("unable to connect to discord: %w", err)
	}
	defer session.Close()

	return announce.Announce(announce.NewDiscordSender(session, channelID), winners, total)
}
