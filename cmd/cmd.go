package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rubiojr/htmlsafe/markup"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the htmlsafe CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "htmlsafe",
		Usage:                  "Escape text for safe embedding in HTML or XML output",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-quotes",
				Aliases: []string{"q"},
				Usage:   "Leave \" and ' unescaped",
			},
		},
		Action: escapeAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func escapeAction(ctx context.Context, cmd *cli.Command) error {
	quotes := !cmd.Bool("no-quotes")

	var text string
	if cmd.NArg() > 0 {
		text = strings.Join(cmd.Args().Slice(), " ")
	} else {
		// No arguments: escape stdin, unless it is an interactive
		// terminal, in which case show help instead of blocking.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return cli.ShowAppHelp(cmd)
		}
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(in)
	}

	out := markup.Escape(text, quotes)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(out)
	} else {
		fmt.Print(out)
	}
	return nil
}
