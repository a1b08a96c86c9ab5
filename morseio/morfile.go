// Package morseio reads and writes the .mor resource format: one
// "state duration_ms" quantum per line, "#" starting a comment that
// runs to end of line. Ported from
// original_source/libmorse/utils.py's get_mor_code, with transparent
// .mor.gz support added via github.com/klauspost/compress/gzip, the
// same compression library the teacher uses for its own archived
// resources.
package morseio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/cwsl/gomorse/morse"
)

// ReadMorCode parses .mor content into a sequence of samples, mirroring
// get_mor_code's line-by-line strip/comment-strip/split behavior.
func ReadMorCode(data string) ([]morse.Sample, error) {
	if data == "" {
		return nil, nil
	}

	var out []morse.Sample
	for n, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if idx := strings.IndexByte(line, '#'); idx != -1 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		chunks := strings.Fields(line)
		if len(chunks) < 2 {
			return nil, fmt.Errorf("morseio: line %d: expected \"state duration\", got %q", n+1, raw)
		}
		state, err := strconv.Atoi(chunks[0])
		if err != nil {
			return nil, fmt.Errorf("morseio: line %d: invalid state %q: %w", n+1, chunks[0], err)
		}
		duration, err := strconv.ParseFloat(chunks[1], 64)
		if err != nil {
			return nil, fmt.Errorf("morseio: line %d: invalid duration %q: %w", n+1, chunks[1], err)
		}
		out = append(out, morse.Sample{IsMark: state != 0, DurationMs: duration})
	}
	return out, nil
}

// WriteMorCode renders samples back to .mor text, one "state duration"
// line each.
func WriteMorCode(samples []morse.Sample) string {
	var b strings.Builder
	for _, s := range samples {
		state := 0
		if s.IsMark {
			state = 1
		}
		fmt.Fprintf(&b, "%d %s\n", state, strconv.FormatFloat(s.DurationMs, 'f', -1, 64))
	}
	return b.String()
}

// ReadMorFile loads a .mor or .mor.gz file by path, choosing gzip
// decompression transparently based on the ".gz" suffix.
func ReadMorFile(path string) ([]morse.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("morseio: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("morseio: %s: %w", path, err)
	}
	return ReadMorCode(data)
}

// WriteMorFile writes samples to path, gzip-compressing when path ends
// in ".gz".
func WriteMorFile(path string, samples []morse.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	body := WriteMorCode(samples)
	if !strings.HasSuffix(path, ".gz") {
		_, err := f.WriteString(body)
		return err
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(body)); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

func readAll(r io.Reader) (string, error) {
	var b strings.Builder
	buf := bufio.NewReader(r)
	if _, err := buf.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
