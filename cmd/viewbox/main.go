// Command viewbox replays a scenario file and prints the resulting transform.
//
//	viewbox [-format coefficients|css|json] [-profile cpu|mem] [-v] scenario.toml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/internal/scenario"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	format := flag.String("format", "coefficients", "output format: coefficients, css or json")
	profileMode := flag.String("profile", "", "write a profile to the current directory: cpu or mem")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		slog.Error("Unknown profile mode", slog.String("profile", *profileMode))
		return 2
	}

	if err := run(os.Stdout, flag.Arg(0), *format); err != nil {
		slog.Error("Failed to run scenario", slog.Any("err", err))
		return 1
	}

	return 0
}

func run(w io.Writer, path string, format string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	vb, err := sc.Run()
	if err != nil {
		return err
	}

	return write(w, vb, format)
}

func write(w io.Writer, vb *viewbox.ViewBox, format string) error {
	switch format {
	case "coefficients":
		var fields []string
		for _, value := range vb.Coefficients() {
			fields = append(fields, strconv.FormatFloat(value, 'g', -1, 64))
		}

		_, err := fmt.Fprintln(w, strings.Join(fields, " "))
		return err

	case "css":
		_, err := fmt.Fprintln(w, vb.CSS())
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vb)

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
