package main

import (
	"flag"
	"fmt"
	"os"

	"termglyph/internal/logging"
	"termglyph/internal/render"
	"termglyph/internal/startup"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	config, err := startup.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Configuration error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Init(config.Logging)
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}()
	startup.LogStartup(config)

	switch command := os.Args[1]; command {
	case "render":
		if !runRender(config, os.Args[2:]) {
			os.Exit(1)
		}
	case "modes":
		printModes()
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runRender(config *startup.Config, args []string) bool {
	flags := flag.NewFlagSet("render", flag.ExitOnError)
	mode := flags.String("mode", config.RenderMode.String(), "render mode (see 'termglyph modes')")
	width := flags.Int("width", config.RenderWidth, "output width in cells (0 fits the terminal)")
	height := flags.Int("height", config.RenderHeight, "output height in cells (0 preserves aspect)")
	ramp := flags.String("ramp", config.RenderRamp, "ascii density ramp, darkest first")
	invert := flags.Bool("invert", config.RenderInvert, "invert luminance in brightness-mapped modes")
	if err := flags.Parse(args); err != nil {
		return false
	}

	files := flags.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no image files given")
		fmt.Fprintln(os.Stderr, "Usage: termglyph render [-mode m] [-width n] [-height n] [-ramp s] [-invert] FILE...")
		return false
	}

	renderMode, err := render.ParseMode(*mode)
	if err != nil {
		logging.Error(err.Error())
		return false
	}
	opts := render.Options{
		Width:  *width,
		Height: *height,
		Ramp:   *ramp,
		Invert: *invert,
	}

	ok := true
	for _, path := range files {
		img, err := render.Open(path)
		if err != nil {
			logging.Error("Failed to open "+path, err)
			logging.Exception(err)
			ok = false
			continue
		}
		if len(files) > 1 {
			logging.Default().With(logging.NoLocation()).Info(path)
		}
		if err := render.Print(img, renderMode, opts); err != nil {
			logging.Error("Failed to render "+path, err)
			ok = false
		}
	}
	return ok
}

func printModes() {
	fmt.Println("Render modes:")
	for _, mode := range render.Modes {
		fmt.Printf("  %s\n", mode)
	}
}

func printVersion() {
	info := startup.GetBuildInfo()
	fmt.Printf("termglyph %s (%s, built %s, %s %s/%s)\n",
		info.Version, info.Commit, info.BuildTime, info.GoVersion, info.OS, info.Arch)
}

func printUsage() {
	fmt.Println("Terminal Image Renderer")
	fmt.Println("")
	fmt.Println("Usage: termglyph <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  render [-mode m] [-width n] [-height n] [-ramp s] [-invert] FILE...")
	fmt.Println("          - Render images to the terminal")
	fmt.Println("  modes   - List render modes")
	fmt.Println("  version - Print build information")
	fmt.Println("")
	fmt.Println("Environment:")
	fmt.Println("  LOG_FILE, LOG_LEVEL, LOG_DISPLAY - Logging configuration")
	fmt.Println("  RENDER_MODE, RENDER_WIDTH        - Render defaults")
}
