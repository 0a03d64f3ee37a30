/*
Package dictionary reads word and phrase lists used to seed a store.

Files are picked by extension:

	.txt      one phrase per line, blank lines and lines starting with '#' skipped
	.toml     words = ["..."] and phrases = ["..."]
	.msgpack  a map with "words" and "phrases" string arrays

DefaultPhrases returns the built-in fishing sample set.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmptyDictionary is returned when a file parses but holds no entries.
var ErrEmptyDictionary = errors.New("dictionary has no entries")

// Dictionary is an ordered list of words and phrases to load.
type Dictionary struct {
	Words   []string `toml:"words" msgpack:"words"`
	Phrases []string `toml:"phrases" msgpack:"phrases"`
}

// Len returns the total number of entries.
func (d *Dictionary) Len() int {
	return len(d.Words) + len(d.Phrases)
}

// Target is what a Dictionary loads into.
type Target interface {
	LoadWords(words []string) int
	LoadPreset(phrases []string) int
}

// Apply loads the dictionary into target and returns how many words and
// phrases were new.
func (d *Dictionary) Apply(target Target) (words, phrases int) {
	if len(d.Words) > 0 {
		words = target.LoadWords(d.Words)
	}
	if len(d.Phrases) > 0 {
		phrases = target.LoadPreset(d.Phrases)
	}
	return words, phrases
}

// Load reads a dictionary file, detecting its format from the extension.
func Load(path string) (*Dictionary, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	dict, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	log.Debugf("Read %d words and %d phrases from %s", len(dict.Words), len(dict.Phrases), path)
	return dict, nil
}

// Decode reads a dictionary in the given format from r.
func Decode(r io.Reader, format FileFormat) (*Dictionary, error) {
	var dict *Dictionary
	var err error

	switch format {
	case FormatText:
		dict, err = decodeText(r)
	case FormatTOML:
		dict = &Dictionary{}
		_, err = toml.NewDecoder(r).Decode(dict)
	case FormatMsgpack:
		dict = &Dictionary{}
		err = msgpack.NewDecoder(r).Decode(dict)
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
	if err != nil {
		return nil, err
	}
	if dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return dict, nil
}

// Encode writes d to w. Text output only carries phrases.
func Encode(w io.Writer, d *Dictionary, format FileFormat) error {
	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, p := range d.Phrases {
			if _, err := fmt.Fprintln(bw, p); err != nil {
				return err
			}
		}
		return bw.Flush()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(d)
	default:
		return fmt.Errorf("unsupported format: %v", format)
	}
}

func decodeText(r io.Reader) (*Dictionary, error) {
	dict := &Dictionary{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dict.Phrases = append(dict.Phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}
