// YAML configuration for the command line tool. Flags given on the command
// line override values read from the file.
package config

import (
	"fmt"
	"io/ioutil"
	"math"

	"github.com/ghodss/yaml"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/mesh"
	"github.com/pkg/errors"
)

// Parameters obtained from the YAML config file
type Config struct {
	Epsilon          float64 `json:"epsilon"`
	RejectDegenerate bool    `json:"rejectDegenerate"`
	HashEdges        bool    `json:"hashEdges"`
	Winding          string  `json:"winding"`
	SwizzleAxes      bool    `json:"swizzleAxes"`
	Workers          int     `json:"workers"`
}

func Default() *Config {
	return &Config{
		Epsilon: advanced.DefaultEpsilon,
		Winding: mesh.WindingSwapped.String(),
	}
}

// Parse YAML on top of the defaults. Keys missing from data keep their
// default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	c, err := Parse(data)
	return c, errors.Wrapf(err, "config %s", path)
}

func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return errors.Errorf("epsilon must be finite, got %v", c.Epsilon)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := mesh.ParseWinding(c.Winding); err != nil {
		return err
	}
	return nil
}

func (c *Config) Triangulator() *advanced.Triangulator {
	return &advanced.Triangulator{
		Epsilon:          c.Epsilon,
		RejectDegenerate: c.RejectDegenerate,
		HashEdges:        c.HashEdges,
	}
}

// Winding of emitted faces. Validate has already rejected unknown values.
func (c *Config) FaceWinding() mesh.Winding {
	w, _ := mesh.ParseWinding(c.Winding)
	return w
}

func (c *Config) BuildOptions() mesh.BuildOptions {
	return mesh.BuildOptions{
		Triangulator: c.Triangulator(),
		Winding:      c.FaceWinding(),
		Workers:      c.Workers,
	}
}

func (c *Config) Print() {
	fmt.Printf("%g\t\t= Epsilon\n", c.Epsilon)
	fmt.Printf("%t\t\t= RejectDegenerate\n", c.RejectDegenerate)
	fmt.Printf("%t\t\t= HashEdges\n", c.HashEdges)
	fmt.Printf("[%s]\t= Winding\n", c.Winding)
	fmt.Printf("%t\t\t= SwizzleAxes\n", c.SwizzleAxes)
	fmt.Printf("%d\t\t= Workers\n", c.Workers)
}
