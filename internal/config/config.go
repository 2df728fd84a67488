package config

import (
	"flag"
	"os"

	"picconv/internal/crashlog"
)

// Config contains runtime options for the converter.
type Config struct {
	Input        string
	Format       string
	Output       string
	Quality      int
	Overwrite    bool
	Interactive  bool
	Accessible   bool
	ErrorLogPath string
}

// Parse reads CLI flags into Config.
func Parse() Config {
	cfg, _ := parse(flag.CommandLine, os.Args[1:])
	return cfg
}

func parse(fs *flag.FlagSet, args []string) (Config, error) {
	input := fs.String("input", "", "source image to preselect")
	format := fs.String("format", "PNG", "target format: PNG, JPEG, BMP, GIF, TIFF, ICO or WEBP")
	output := fs.String("output", "", "destination path (default: <input dir>/<name>_converted.<format>)")
	quality := fs.Int("quality", 95, "JPEG and WEBP quality (1-100)")
	overwrite := fs.Bool("overwrite", false, "replace an existing destination without asking")
	interactive := fs.Bool("interactive", true, "run the interactive form (set --interactive=false to convert the flag values once)")
	accessible := fs.Bool("accessible", false, "render prompts in accessible (screen reader friendly) mode")
	errorLog := fs.String("error-log", "", "error log path (default: error_log.txt next to the executable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *quality < 1 {
		*quality = 1
	}
	if *quality > 100 {
		*quality = 100
	}
	if *errorLog == "" {
		*errorLog = crashlog.DefaultPath()
	}

	return Config{
		Input:        *input,
		Format:       *format,
		Output:       *output,
		Quality:      *quality,
		Overwrite:    *overwrite,
		Interactive:  *interactive,
		Accessible:   *accessible,
		ErrorLogPath: *errorLog,
	}, nil
}
