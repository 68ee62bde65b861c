package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/capholes"
	"github.com/osuushi/capholes/mesh"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags
	app := newApp(&f)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	config := DefaultConfig()
	if f.config != "" {
		var err error
		if config, err = LoadConfigFile(f.config); err != nil {
			return err
		}
	}
	f.apply(&config)
	if err := config.Validate(); err != nil {
		return err
	}
	level, _ := log.ParseLevel(config.LogLevel)
	logger := newLogger(stderr, level)
	logger.Debug("config", "effective", pretty.Sprint(config))

	m, err := loadMesh(f.input, logger)
	if err != nil {
		return err
	}

	opts := capholes.Options{Logger: logger}
	if config.Draw.Dir != "" {
		if err := os.MkdirAll(config.Draw.Dir, 0o755); err != nil {
			return errors.Wrap(err, "creating draw dir")
		}
		opts.OnHole = holeDrawer(config.Draw, stderr, logger)
	}

	p := newProgress(logger)
	result, err := capholes.CapHolesWithOptions(m, opts)
	if err != nil {
		return errors.Wrap(err, "capping holes")
	}
	p.done("capped holes", "holes", result.HolesCapped, "triangles", result.TrianglesCreated)

	au := aurora.NewAurora(config.Color)
	status := au.Green("capped")
	var checkErr error
	if config.Check {
		if solid := mesh.CheckSolid(m, 0); !solid.IsSolid {
			status = au.Red("not solid")
			checkErr = errors.Errorf("capped mesh is not solid: %v", solid.Failure)
		}
	}
	fmt.Fprintf(stderr, "%s %s: %d holes, %d new triangles\n",
		status, au.Bold(filepath.Base(f.input)), au.Cyan(result.HolesCapped), au.Cyan(result.TrianglesCreated))
	if checkErr != nil {
		return checkErr
	}

	return writeMesh(m, config.Output, stdout)
}

func loadMesh(path string, logger *log.Logger) (*mesh.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer file.Close()
	m, err := mesh.ReadOBJ(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	// Capping only adds triangles, so unused vertices would still fail the
	// solid check afterwards
	if mesh.HasIsolatedVerts(m) {
		numVerts := m.NumVerts()
		m = mesh.Filter(m, func(mesh.TriHandle) bool { return true })
		logger.Warn("dropped unused vertices", "count", numVerts-m.NumVerts())
	}

	links := mesh.ComputeEdgeLinks(m)
	logger.Info("loaded mesh",
		"verts", m.NumVerts(),
		"triangles", m.NumTriangles(),
		"matched", links.MatchedEdges,
		"open", links.OpenEdges,
	)
	// Holes are expected here; anything else means capping can't be trusted
	if solid := mesh.CheckSolid(m, mesh.AllowHoles); !solid.IsSolid {
		return nil, errors.Errorf("input mesh %s is not usable: %v", path, solid.Failure)
	}
	return m, nil
}

// Drawings printed with imgcat go to catTo, which must not be the OBJ output.
func holeDrawer(config DrawConfig, catTo io.Writer, logger *log.Logger) func(capholes.MeshStore, mesh.PolyEdge) {
	if !config.Imgcat {
		catTo = nil
	}
	holes := 0
	return func(store capholes.MeshStore, seed mesh.PolyEdge) {
		holes++
		path := filepath.Join(config.Dir, fmt.Sprintf("hole-%03d.png", holes))
		if err := capholes.DrawPerimeter(store, seed, path, config.Scale, catTo); err != nil {
			logger.Warn("could not draw hole", "seed", seed, "err", err)
			return
		}
		logger.Debug("drew hole", "seed", seed, "path", path)
	}
}

func writeMesh(m *mesh.Mesh, path string, stdout io.Writer) error {
	if path == "" {
		return mesh.WriteOBJ(stdout, m)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := mesh.WriteOBJ(file, m); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "closing output")
}
