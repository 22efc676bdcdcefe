package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Log input is read fully before classification; there is no streaming
// mode. Invalid UTF-8 byte sequences are dropped rather than reported,
// so the classifier only ever sees valid text.

// ReadFile reads a log file and returns its lines. Opening the file is
// the only failure mode; decoding problems are handled by dropping the
// offending bytes.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ToValidUTF8(string(data), "")
	return strings.Split(text, "\n"), nil
}

// Read consumes a stream to EOF and returns its lines. Lines have no
// length cap; a pathological single-line dump is still analyzed rather
// than aborting the run.
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.ToValidUTF8(line, ""))
		}
		if err != nil {
			if err == io.EOF {
				return lines, nil
			}
			return nil, err
		}
	}
}

// messageKeys are tried in order when extracting the message field from
// an NDJSON record. "eventMessage" covers Apple unified logging dumps.
var messageKeys = []string{"message", "msg", "eventMessage"}

// ExtractMessage returns the message field of an NDJSON record, or the
// line unchanged when it is not a JSON object or carries no known
// message field.
func ExtractMessage(line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return line
	}
	for _, key := range messageKeys {
		if v := gjson.Get(trimmed, key); v.Exists() {
			return v.String()
		}
	}
	return line
}

// ExtractMessages maps ExtractMessage over a full input.
func ExtractMessages(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ExtractMessage(line)
	}
	return out
}
