package main

import (
	"fmt"
	"io"
	"os"

	"hanjamo/internal/cli"
	"hanjamo/internal/config"
	"hanjamo/internal/live"
	"hanjamo/pkg/codec"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hanjamo: %v\n", err)
		os.Exit(1)
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}

	if opts.ListCodecs {
		for _, name := range codec.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hanjamo: %v\n", err)
		os.Exit(1)
	}
	if opts.CodecName != "" {
		cfg.CodecName = opts.CodecName
	}
	if opts.Direction != "" {
		cfg.Direction = opts.Direction
	}

	selected, ok := codec.New(cfg.CodecName)
	if !ok {
		fmt.Fprintf(os.Stderr, "hanjamo: unknown codec %q\n", cfg.CodecName)
		os.Exit(1)
	}

	transform := selected.Decompose
	if cfg.Direction == "compose" {
		transform = selected.Compose
	}

	if opts.Live {
		if err := live.Run(os.Stdout, transform); err != nil {
			fmt.Fprintf(os.Stderr, "hanjamo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runFilter(opts.InputPath, opts.OutputPath, transform); err != nil {
		fmt.Fprintf(os.Stderr, "hanjamo: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(inputPath, outputPath string, transform func(string) string) error {
	var in io.Reader = os.Stdin
	if inputPath != "" {
		file, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	result := transform(string(data))

	if outputPath == "" {
		_, err = os.Stdout.WriteString(result)
		return err
	}
	return os.WriteFile(outputPath, []byte(result), 0o644)
}
