package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp   bool
	ListCodecs bool
	CodecName  string
	Direction  string
	ConfigPath string
	InputPath  string
	OutputPath string
	Live       bool
}

func Parse(args []string) (Options, error) {
	opts := Options{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-codecs":
			opts.ListCodecs = true
		case arg == "--decompose":
			opts.Direction = "decompose"
		case arg == "--compose":
			opts.Direction = "compose"
		case arg == "--live":
			opts.Live = true
		case strings.HasPrefix(arg, "--codec"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.CodecName = value
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--input") || strings.HasPrefix(arg, "--in"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.InputPath = value
			i = next
		case strings.HasPrefix(arg, "--output") || strings.HasPrefix(arg, "--out"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.OutputPath = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `hanjamo - Hangul syllable/jamo codec
Usage: hanjamo [options]

Options:
  --codec NAME       Codec to use: compat or zerospace (default: compat)
  --decompose        Split syllables into jamo (default)
  --compose          Rebuild syllables from jamo
  --config PATH      Path to hanjamo.ini (default: ./hanjamo.ini if present)
  --in PATH          Read input from a file instead of stdin
  --out PATH         Write output to a file instead of stdout
  --live             Read keys from the terminal and echo each transformed rune
  --list-codecs      List available codec names
  -h, --help         Show this help message`
}
