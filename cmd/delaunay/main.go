package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/config"
	"github.com/osuushi/delaunay/dbg"
	"github.com/osuushi/delaunay/input"
	"github.com/osuushi/delaunay/mesh"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulates polygons read from a file, one triangulation per polygon, and
// merges them into an indexed mesh.
//
// Text input has one "x y [z]" point per line, with polygons separated by an
// extra newline. SVG input takes every <polygon> element. Polygons are treated
// as point sets: the Delaunay triangulation covers each polygon's convex hull,
// so non-convex polygons are not preserved.

type options struct {
	input      string
	format     string
	configPath string

	epsilon float64
	strict  bool
	hashed  bool
	winding string
	swizzle bool
	workers int

	objPath  string
	pngPath  string
	pngScale float64
	imgcat   bool
	validate bool
	verbose  bool
	noColor  bool
}

func main() {
	log.SetFlags(0)

	var opts options
	app := kingpin.New("delaunay", "Delaunay triangulation of polygon point sets.")
	app.Arg("input", "Point file (text or svg). Use - for stdin.").Required().StringVar(&opts.input)
	app.Flag("format", "Input format. Guessed from the extension by default.").Default("auto").EnumVar(&opts.format, "auto", "text", "svg")
	app.Flag("config", "YAML config file. Flags override its values.").Short('c').StringVar(&opts.configPath)
	app.Flag("eps", "Tolerance of the circumcircle test.").Float64Var(&opts.epsilon)
	app.Flag("strict", "Fail on collinear or coincident points instead of skipping them.").BoolVar(&opts.strict)
	app.Flag("hashed", "Find cavity boundaries by hashing edges.").BoolVar(&opts.hashed)
	app.Flag("winding", "Face vertex order: swapped or as-is.").StringVar(&opts.winding)
	app.Flag("swizzle", "Write OBJ vertices as (y, z, x).").BoolVar(&opts.swizzle)
	app.Flag("workers", "Polygons triangulated at once. 0 means one per CPU.").IntVar(&opts.workers)
	app.Flag("obj", "Write the merged mesh as OBJ to this path.").Short('o').StringVar(&opts.objPath)
	app.Flag("png", "Draw the triangles to this PNG file.").StringVar(&opts.pngPath)
	app.Flag("scale", "Pixels per unit for --png.").Default("50").Float64Var(&opts.pngScale)
	app.Flag("imgcat", "Show the --png image in the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("validate", "Check every triangulation for the Delaunay property.").BoolVar(&opts.validate)
	app.Flag("verbose", "List every triangle.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("%s %v", aurora.Red("error:"), err)
	}
}

func run(opts options, out io.Writer) error {
	au := aurora.NewAurora(!opts.noColor)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Print()
	}

	polygons, err := readInput(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Read %d polygons\n", au.Bold(len(polygons)))

	buildOpts := cfg.BuildOptions()
	m, err := mesh.Build(context.Background(), polygons, buildOpts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Built %d faces over %d vertices\n", au.Green(len(m.Faces)), au.Green(len(m.Vertices)))

	// The mesh only keeps indices; the per-polygon results are needed for
	// listing, validating and drawing.
	var results []*advanced.Result
	if opts.verbose || opts.validate || opts.pngPath != "" {
		for _, points := range polygons {
			results = append(results, buildOpts.Triangulator.Triangulate(points))
		}
	}

	if opts.verbose {
		for i, result := range results {
			fmt.Fprintf(out, "polygon %d: %d points, %d triangles\n", i, len(polygons[i]), len(result.Triangles))
			for _, tri := range result.Triangles {
				fmt.Fprintf(out, "  %s %v\n", au.Cyan(dbg.TriangleName(tri)), tri)
			}
		}
	}

	if opts.validate {
		failures := 0
		for i, result := range results {
			if err := advanced.Validate(polygons[i], result, buildOpts.Triangulator.Tolerance(), false); err != nil {
				failures++
				fmt.Fprintf(out, "%s polygon %d: %v\n", au.Yellow("invalid:"), i, err)
			}
		}
		if failures > 0 {
			return errors.Errorf("%d of %d polygons failed validation", failures, len(polygons))
		}
		fmt.Fprintln(out, au.Green("All triangulations valid"))
	}

	if opts.objPath != "" {
		if err := writeOBJ(opts.objPath, m, cfg.SwizzleAxes); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", opts.objPath)
	}

	if opts.pngPath != "" {
		if err := dbg.Draw(results, opts.pngScale, opts.pngPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", opts.pngPath)
		if opts.imgcat {
			dbg.Cat(opts.pngPath, out)
		}
	}
	return nil
}

// Config file first, then any flags that were given.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	if opts.epsilon != 0 {
		cfg.Epsilon = opts.epsilon
	}
	cfg.RejectDegenerate = cfg.RejectDegenerate || opts.strict
	cfg.HashEdges = cfg.HashEdges || opts.hashed
	cfg.SwizzleAxes = cfg.SwizzleAxes || opts.swizzle
	if opts.winding != "" {
		cfg.Winding = opts.winding
	}
	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}

func readInput(opts options) ([][]advanced.Point, error) {
	var in io.Reader = os.Stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	format := opts.format
	if format == "auto" {
		format = "text"
		if strings.EqualFold(filepath.Ext(opts.input), ".svg") {
			format = "svg"
		}
	}

	var polygons [][]advanced.Point
	var err error
	if format == "svg" {
		polygons, err = input.ReadSVG(in)
	} else {
		polygons, err = input.ReadPolygons(in)
	}
	return polygons, errors.Wrapf(err, "reading %s", opts.input)
}

func writeOBJ(path string, m *mesh.Mesh, swizzle bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating obj")
	}
	if err := mesh.WriteOBJ(f, m, mesh.OBJOptions{SwizzleAxes: swizzle}); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing obj")
}
