package main

import (
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/internal/replay"
	"AnatomyOverlay/pkg/log"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
)

const barTemplate = `{{ string . "prefix" }} {{counters . "%s/%s" "%s/?"}} {{bar . }} {{percent . "%.03f%%" "?"}} {{etime . "%s elapsed"}} {{rtime . "%s remain" "%s total" "???"}}`

var (
	inputPath  string
	outputPath string
	aspect     float64
	fov        float64
	depth      string
	logLevel   string
)

func init() {
	flag.StringVar(&inputPath, "input", "", "JSONL file with one landmark snapshot per line")
	flag.StringVar(&outputPath, "output", "", "JSONL file for the rig frames (stdout when empty)")
	flag.Float64Var(&aspect, "aspect", 16.0/9.0, "viewport aspect ratio")
	flag.Float64Var(&fov, "fov", 75, "vertical field of view in degrees")
	flag.StringVar(&depth, "depth", string(entity.DepthPinned), "depth mode: pinned or scaled")
	flag.StringVar(&logLevel, "logLevel", "info", "set log level")
	flag.Parse()
}

func main() {
	logger := log.NewLogger()
	if err := log.SetLevel(logLevel); err != nil {
		logger.Fatalf("Invalid log level %q: %v", logLevel, err)
	}

	if inputPath == "" {
		logger.Fatal("-input must be provided")
	}

	total, err := countLines(inputPath)
	if err != nil {
		logger.Fatalf("Failed to read input: %v", err)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		logger.Fatalf("Failed to open input: %v", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	bar := pb.ProgressBarTemplate(barTemplate).New(total)
	bar.Set("prefix", filepath.Base(inputPath))
	bar.SetWriter(os.Stderr)
	bar.Start()

	rp, err := replay.New(logger, entity.Viewport{
		Aspect:     aspect,
		FOVDegrees: fov,
		Depth:      entity.DepthMode(depth),
	}, func() { bar.Increment() })
	if err != nil {
		bar.Finish()
		logger.Fatalf("Invalid viewport: %v", err)
	}

	summary, err := rp.Run(in, out)
	bar.Finish()

	logger.WithFields(log.Fields{
		"lines":   summary.Lines,
		"frames":  summary.Frames,
		"skipped": summary.Skipped,
		"visible": summary.Visible,
	}).Info("Replay finished")

	if err != nil {
		logger.Fatalf("Replay failed: %v", err)
	}
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return replay.CountLines(f)
}
