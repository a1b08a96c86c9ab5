// Command gomorse decodes or encodes a .mor resource from the command
// line, grounded on the teacher's flag-driven main.go entrypoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cwsl/gomorse/config"
	"github.com/cwsl/gomorse/morse"
	"github.com/cwsl/gomorse/morseio"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
		mode       = flag.String("mode", "decode", "decode or encode")
		input      = flag.String("in", "", "input file (.mor/.mor.gz for decode, text for encode); - for stdin")
		view       = flag.String("view", "", "override output view for decode: alphabet or morse")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[gomorse] %v", err)
		}
		cfg = loaded
	}
	if *view != "" {
		cfg.Decoder.View = *view
	}

	var err error
	switch *mode {
	case "decode":
		err = runDecode(cfg, *input)
	case "encode":
		err = runEncode(cfg, *input)
	default:
		log.Fatalf("[gomorse] unknown -mode %q, want decode or encode", *mode)
	}

	os.Exit(morse.GetReturnCode(err))
}

func runDecode(cfg config.Config, path string) error {
	samples, err := loadSamples(path)
	if err != nil {
		return err
	}

	codebook, err := morse.DefaultCodebook()
	if err != nil {
		return err
	}
	dec := morse.NewDecoder(cfg.Decoder, codebook)
	defer dec.Close()

	for _, s := range samples {
		if err := dec.Put(s); err != nil {
			return err
		}
	}
	dec.Wait()
	if err := dec.Close(); err != nil && err != morse.ErrAlreadyClosed {
		return err
	}

	var out strings.Builder
	for {
		text, err := dec.Get(false)
		if err == morse.ErrEmpty || err == morse.ErrAlreadyClosed {
			break
		}
		if err != nil {
			return err
		}
		out.WriteString(text)
	}
	fmt.Println(out.String())
	return nil
}

func runEncode(cfg config.Config, path string) error {
	var text string
	if path == "-" || path == "" {
		data, err := readAllStdin()
		if err != nil {
			return err
		}
		text = data
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		text = string(data)
	}

	codebook, err := morse.DefaultCodebook()
	if err != nil {
		return err
	}
	enc := morse.NewEncoder(codebook, cfg.Decoder.Unit, cfg.Decoder.InputQueueSize)
	defer enc.Close()

	if err := enc.PutString(text); err != nil {
		return err
	}
	enc.Wait()
	if err := enc.Close(); err != nil && err != morse.ErrAlreadyClosed {
		return err
	}

	var samples []morse.Sample
	for {
		s, err := enc.Get(false)
		if err == morse.ErrEmpty || err == morse.ErrAlreadyClosed {
			break
		}
		if err != nil {
			return err
		}
		samples = append(samples, s)
	}
	fmt.Print(morseio.WriteMorCode(samples))
	return nil
}

func loadSamples(path string) ([]morse.Sample, error) {
	if path == "-" || path == "" {
		data, err := readAllStdin()
		if err != nil {
			return nil, err
		}
		return morseio.ReadMorCode(data)
	}
	return morseio.ReadMorFile(path)
}

func readAllStdin() (string, error) {
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	return b.String(), nil
}
