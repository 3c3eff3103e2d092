package mesh

import (
	"context"
	"runtime"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type BuildOptions struct {
	Triangulator *advanced.Triangulator
	Winding      Winding
	// Maximum number of polygons triangulated at once. Zero means GOMAXPROCS.
	Workers int
}

// Triangulate every polygon and merge them into one mesh.
//
// Triangulations are independent, so they run concurrently; merging happens
// afterwards in polygon order, so the vertex table and faces come out the same
// as adding the polygons to a Builder one by one.
func Build(ctx context.Context, polygons [][]advanced.Point, opts BuildOptions) (*Mesh, error) {
	triangulator := opts.Triangulator
	if triangulator == nil {
		triangulator = advanced.DefaultTriangulator
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*advanced.Result, len(polygons))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, points := range polygons {
		i, points := i, points
		g.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer func() {
				recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
				if recoveredErr != nil {
					err = errors.Wrapf(recoveredErr, "polygon %d", i)
				}
			}()
			results[i] = triangulator.Triangulate(points)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	builder := &Builder{Triangulator: triangulator, Winding: opts.Winding}
	for i, points := range polygons {
		if err := builder.addTriangulated(points, results[i]); err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
	}
	return builder.Mesh(), nil
}
