package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"pixelkit/assemble"
	"pixelkit/batch"
	"pixelkit/palcmd"
	"pixelkit/parallel"
)

type CLI struct {
	LogLevel slog.Level      `help:"Log level (debug, info, warn, error)" default:"info" name:"log-level"`
	Workers  int             `help:"Parallel workers, 0 uses every CPU" default:"0"`
	Config   kong.ConfigFlag `help:"Load defaults from a JSON configuration file"`
	Batch    batch.CLICmd    `cmd:"" help:"Clean up every image of a folder: canvas, autocrop, palette"`
	Assemble assemble.CLICmd `cmd:"" help:"Assemble frames into a sprite sheet and animation"`
	Palette  palcmd.CLICmd   `cmd:"" help:"Print or convert a palette"`
}

// newParser builds the command line parser. Commands printing results write
// to stdout.
func newParser(cli *CLI, stdout io.Writer, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("pixelkit"),
		kong.Description("Sprite and pixel art tools."),
		kong.Configuration(kong.JSON, "~/.config/pixelkit/config.json"),
		kong.UsageOnError(),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cli.LogLevel})))

	pool := parallel.Start(cli.Workers)
	ctx.FatalIfErrorf(ctx.Run(pool))
}
