package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fukurin00/waypoint_path_generator/gridmap"
	"github.com/fukurin00/waypoint_path_generator/pathgen"
	"github.com/fukurin00/waypoint_path_generator/picker"
	"github.com/fukurin00/waypoint_path_generator/viz"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const defaultSamples = 500

var (
	mapFile    = flag.String("map", "", "map image (png, pgm, bmp, tiff, webp, jpeg, gif)")
	yamlFile   = flag.String("yaml", "", "map yaml with resolution and origin (default: map path with .yaml)")
	outFile    = flag.String("out", "", "output csv (default: map name with .csv)")
	nPoints    = flag.Int("n", defaultSamples, "number of interpolated path points")
	pointsFile = flag.String("points", "", "file of clicked points, one \"x y\" per line (default: stdin)")
	finishKey  = flag.String("finish", "r", "key that ends point selection")
	markedFile = flag.String("marked", "", "save the map with the selected points marked (png)")
	plotFile   = flag.String("plot", "", "save the path drawn over the map (png, svg, pdf)")
	checkReach = flag.Bool("check", false, "warn when consecutive waypoints are not connected through free space")
	logDir     = flag.String("log", "", "directory for log files (default: stdout only)")
	verbose    = flag.Bool("v", false, "debug logging")
)

type config struct {
	MapFile    string
	YamlFile   string
	OutFile    string
	NPoints    int
	PointsFile string
	FinishKey  rune
	MarkedFile string
	PlotFile   string
	CheckReach bool
}

func configFromFlags() (config, error) {
	cfg := config{
		MapFile:    *mapFile,
		YamlFile:   *yamlFile,
		OutFile:    *outFile,
		NPoints:    *nPoints,
		PointsFile: *pointsFile,
		MarkedFile: *markedFile,
		PlotFile:   *plotFile,
		CheckReach: *checkReach,
	}
	if utf8.RuneCountInString(*finishKey) != 1 {
		return cfg, fmt.Errorf("-finish must be a single key, got %q", *finishKey)
	}
	cfg.FinishKey, _ = utf8.DecodeRuneInString(*finishKey)
	if cfg.MapFile == "" && cfg.YamlFile == "" {
		return cfg, errors.New("either -map or -yaml is required")
	}
	if cfg.NPoints < 1 {
		return cfg, fmt.Errorf("-n must be positive, got %d", cfg.NPoints)
	}
	return cfg, nil
}

func LoggingSettings(logFile string, debug bool) error {
	var out io.Writer = os.Stdout
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return err
		}
		logfile, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stdout, logfile)
	}
	log.SetOutput(out)
	log.SetHeader("${time_rfc3339} ${level} ${prefix}")
	log.SetPrefix(uuid.NewString()[:8])
	if debug {
		log.SetLevel(log.DEBUG)
	} else {
		log.SetLevel(log.INFO)
	}
	return nil
}

// csvNameFor names the output after the map image, in the working directory.
func csvNameFor(mapFile string) string {
	base := filepath.Base(mapFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}

func selectPoints(cfg config, m *gridmap.Map, stdin io.Reader, prompt io.Writer) ([]image.Point, error) {
	session := picker.NewSession(m.Raster)
	session.FinishKey = cfg.FinishKey

	var src picker.Source
	if cfg.PointsFile != "" {
		f, err := os.Open(cfg.PointsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = picker.NewLineSource(f, nil)
	} else {
		src = picker.NewLineSource(stdin, prompt)
	}

	points, err := src.Select(session)
	if err != nil {
		return nil, fmt.Errorf("select points: %w", err)
	}
	log.Infof("Selected points: %v", points)

	if cfg.MarkedFile != "" {
		if err := session.SaveCanvas(cfg.MarkedFile); err != nil {
			log.Warnf("save marked map: %v", err)
		}
	}
	return points, nil
}

func checkWaypoints(g *gridmap.OccupancyGrid, points []image.Point) {
	for _, p := range points {
		if g.At(p.X, p.Y) {
			log.Warnf("waypoint (%d, %d) is on an obstacle", p.X, p.Y)
		}
	}
	start := time.Now()
	for _, leg := range g.Reach(points) {
		if !leg.Reachable {
			log.Warnf("no free route from %v to %v", leg.From, leg.To)
			continue
		}
		log.Debugf("route %v -> %v: %.1f px", leg.From, leg.To, leg.Distance)
	}
	log.Debugf("reachability check takes %f seconds", time.Since(start).Seconds())
}

func run(cfg config, stdin io.Reader, prompt io.Writer) error {
	yml := cfg.YamlFile
	if yml == "" {
		yml = gridmap.YamlPathFor(cfg.MapFile)
	}
	m, err := gridmap.LoadMap(yml, cfg.MapFile)
	if err != nil {
		return err
	}
	log.Infof("map resolution: %f, origin: (%f, %f)", m.Meta.Resolution, m.Meta.Origin.X, m.Meta.Origin.Y)

	points, err := selectPoints(cfg, m, stdin, prompt)
	if err != nil {
		return err
	}
	if cfg.CheckReach {
		checkWaypoints(m.Grid, points)
	}

	knots, err := pathgen.Prepare(points, m.Height())
	if err != nil {
		return err
	}
	log.Infof("Flipped points: %v", knots)

	path, err := pathgen.Interpolate(knots, pathgen.Options{NPoints: cfg.NPoints})
	if err != nil {
		return err
	}

	out := cfg.OutFile
	if out == "" {
		img := cfg.MapFile
		if img == "" {
			img = m.Meta.Image
		}
		out = csvNameFor(img)
	}
	if err := pathgen.SaveCSV(out, path, m.Meta); err != nil {
		return err
	}
	log.Infof("Path saved to %s", out)

	if cfg.PlotFile != "" {
		scene := viz.Scene{
			Raster:    m.Raster,
			Grid:      m.Grid,
			Path:      path,
			Waypoints: knots,
		}
		if err := viz.Save(cfg.PlotFile, scene); err != nil {
			return err
		}
		log.Infof("Plot saved to %s", cfg.PlotFile)
	}
	return nil
}

func main() {
	flag.Parse()

	logFile := ""
	if *logDir != "" {
		logFile = filepath.Join(*logDir, time.Now().Format("2006-01-02-15")+".log")
	}
	if err := LoggingSettings(logFile, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}

	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	err = run(cfg, os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, pathgen.ErrInsufficientPoints):
		log.Warn("Not enough points to calculate a path.")
	default:
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
