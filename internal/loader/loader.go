// Package loader reads model files and assembles renderer-ready meshes.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/mesh"
	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/formats"
)

// Options configures a Loader.
type Options struct {
	Build        mesh.BuildOptions
	MaxLineBytes int // 0 selects formats.DefaultMaxLineBytes
}

// Loader turns model text into meshes. It is safe for concurrent use.
type Loader struct {
	opts Options
	log  *zap.Logger
}

// Model is a loaded model with its source tables and assembled mesh.
type Model struct {
	Name string
	OBJ  *formats.OBJ
	Mesh *mesh.Mesh
}

// New creates a loader. A nil logger discards log output.
func New(opts Options, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{opts: opts, log: log}
}

// LoadFile reads and loads the model at path. The model is named after the
// file's base name.
func (l *Loader) LoadFile(path string) (*Model, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(name, err)
	}
	return l.Load(name, data)
}

// Load parses data and builds its mesh. Any error fails the whole model;
// faces dropped under the skip policy are logged and kept in Mesh.Skipped.
func (l *Loader) Load(name string, data []byte) (*Model, error) {
	start := time.Now()
	log := l.log.With(zap.String("model", name))

	if encoding.HasBOM(data) {
		log.Debug("stripping byte order mark")
	}
	text := encoding.ToUTF8(data)

	obj, err := formats.ReadOBJ(bytes.NewReader(text), l.opts.MaxLineBytes)
	if err != nil {
		return nil, loadError(name, err)
	}

	stats := obj.Stats()
	log.Debug("parsed model",
		zap.Int("positions", stats.Positions),
		zap.Int("texcoords", stats.TexCoords),
		zap.Int("normals", stats.Normals),
		zap.Int("faces", stats.Faces),
	)

	m, err := mesh.BuildMesh(obj, l.opts.Build)
	if err != nil {
		return nil, loadError(name, err)
	}

	skipped := multierr.Errors(m.Skipped)
	for _, err := range skipped {
		log.Warn("face skipped", zap.Error(err))
	}

	log.Info("model loaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("skipped_faces", len(skipped)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Model{Name: name, OBJ: obj, Mesh: m}, nil
}

func loadError(name string, err error) error {
	return fmt.Errorf("failed to load model %s: %w", name, err)
}
