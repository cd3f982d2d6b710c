package config

import "flag"

// Flags holds the command-line overrides.
type Flags struct {
	Config  *string
	Job     *string
	Debug   *bool
	Lenient *bool
	Matrix  *bool
	Cells   *int
}

// RegisterFlags defines the overrides on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:  fs.String("config", "", "Path to config file"),
		Job:     fs.String("job", "", "Path to job file (initial shapes, rule, attributes)"),
		Debug:   fs.Bool("debug", false, "Enable debug logging"),
		Lenient: fs.Bool("lenient", false, "Truncate malformed buffers instead of failing"),
		Matrix:  fs.Bool("matrix", false, "Print vertex and face matrices"),
		Cells:   fs.Int("cells", 0, "Marching cubes cells along the longest axis"),
	}
}

// Apply applies flag overrides to cfg.
func (f *Flags) Apply(cfg *Config) {
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.Lenient {
		cfg.Report.Strict = false
	}
	if *f.Matrix {
		cfg.Report.Matrix = true
	}
	if *f.Cells > 0 {
		cfg.Generation.MeshCells = *f.Cells
	}
}
