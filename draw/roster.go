package draw

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrEmptyRoster means the source opened fine but held no usable names.
var ErrEmptyRoster = errors.New("no usable participant names")

// LoadRoster reads the participant file at path, one name per line.
func LoadRoster(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open participant file %v: %w", path, err)
	}
	defer f.Close()

	names, err := ReadRoster(f)
	if err != nil {
		return nil, fmt.Errorf("participant file %v: %w", path, err)
	}

	log.Debugf("loaded %v participants from %v", len(names), path)
	return names, nil
}

// ReadRoster collects non-empty lines in order. Trailing line terminators
// are stripped, blank lines are skipped, and duplicates are kept as
// distinct entries.
func ReadRoster(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		names = append(names, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}

	return names, nil
}
