package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("urlenc"),
		kong.Description("Percent-encode arguments or stdin. Only letters, digits and -._~ are left as they are."),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, cli.Verbose)

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// newLogger maps the -v count to a level: 0=warn, 1=info, 2+=debug.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
