package announce

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/deadloct/random-winners/draw"
	"github.com/deadloct/random-winners/settings"
)

type BufferSender struct {
	buffer []string
}

func (b *BufferSender) Send(str string) (*discordgo.Message, error) {
	return b.send(str)
}

func (b *BufferSender) send(str string) (*discordgo.Message, error) {
	b.buffer = append(b.buffer, str)
	return nil, nil
}

func TestAnnounce_ContainsAllWinners(t *testing.T) {
	winners := []draw.Winner{
		{Rank: 1, Name: "alice"},
		{Rank: 2, Name: "bob"},
	}

	sender := &BufferSender{}
	if err := Announce(sender, winners, 3); err != nil {
		t.Fatal(err)
	}

	body := strings.Join(sender.buffer, "\n")
	if !strings.Contains(body, "2 winner(s) from 3 participants") {
		t.Errorf("expected header in announcement, got %v", body)
	}

	for _, w := range winners {
		line := fmt.Sprintf("%v. **%v**", w.Rank, w.Name)
		if !strings.Contains(body, line) {
			t.Errorf("expected announcement to contain '%v', got %v", line, body)
		}
	}
}

func TestSendBlock_SplitsUnderMessageLimit(t *testing.T) {
	sender := &BufferSender{}

	var lines []string
	for i := 0; i < 300; i++ {
		lines = append(lines, fmt.Sprintf("%v. winner-%v", i+1, i))
	}

	if _, err := sendBlock(strings.Join(lines, "\n"), sender.send); err != nil {
		t.Fatal(err)
	}

	if len(sender.buffer) < 2 {
		t.Fatalf("expected the block to be split into multiple messages, got %v", len(sender.buffer))
	}

	var joined []string
	for _, msg := range sender.buffer {
		if len(msg) > settings.DiscordMaxMessageLength {
			t.Errorf("message of length %v exceeds limit %v", len(msg), settings.DiscordMaxMessageLength)
		}

		joined = append(joined, strings.Split(msg, "\n")...)
	}

	if len(joined) != len(lines) {
		t.Fatalf("expected %v lines after splitting but got %v", len(lines), len(joined))
	}

	for i, line := range lines {
		if joined[i] != line {
			t.Errorf("expected line %v to be '%v' but got '%v'", i, line, joined[i])
		}
	}
}

func TestSendLine_WordSplitsOversizedLine(t *testing.T) {
	sender := &BufferSender{}

	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("word%v", i)
	}

	if _, err := sendLine(strings.Join(words, " "), sender.send); err != nil {
		t.Fatal(err)
	}

	if len(sender.buffer) < 2 {
		t.Fatalf("expected the line to be split into multiple messages, got %v", len(sender.buffer))
	}

	for _, msg := range sender.buffer {
		if len(msg) > settings.DiscordMaxMessageLength {
			t.Errorf("message of length %v exceeds limit %v", len(msg), settings.DiscordMaxMessageLength)
		}
	}

	var rejoined []string
	for _, msg := range sender.buffer {
		rejoined = append(rejoined, strings.Fields(msg)...)
	}

	if len(rejoined) != len(words) {
		t.Fatalf("expected %v words after splitting but got %v", len(words), len(rejoined))
	}
}

func TestAddBQ(t *testing.T) {
	actual := addBQ("first\n\nsecond")
	expected := "> first\n> " + settings.WhiteSpaceChar + "\n> second"
	if actual != expected {
		t.Errorf("expected '%v' but got '%v'", expected, actual)
	}
}
