// objtool is a CLI utility for loading Wavefront OBJ models into
// tangent-space triangle lists.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/loader"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/internal/mesh"
	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/formats"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		err = cmdInfo(cfg, args)
	case "build":
		err = cmdBuild(cfg, args)
	case "dump":
		err = cmdDump(cfg, args)
	case "export":
		err = cmdExport(cfg, args)
	case "init-config":
		err = cmdInitConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ to tangent-space mesh utility

Usage:
  objtool [flags] <command> [options]

Commands:
  info <file.obj>                 Show attribute table sizes and face arities
  build <file.obj>                Build the mesh and report counts and bounds
  dump [-n N] <file.obj>          Print output vertices
  export <file.obj> <out.bin>     Write the interleaved vertex buffer
  init-config [path]              Write the current config as YAML

Flags:
  -config <path>      Config file (default ./objmesh.yaml or user config dir)
  -debug              Debug logging
  -skip-bad-faces     Drop faces that fail instead of failing the model
  -workers N          Build faces with N workers
  -log-file <path>    Also log to a rotating file

Examples:
  objtool info sphere.obj
  objtool -skip-bad-faces build sphere.obj
  objtool dump -n 6 sphere.obj
  objtool -workers 8 export sphere.obj sphere.bin`)
}

func newLoader(cfg *config.Config) (*loader.Loader, error) {
	opts, err := cfg.BuildOptions()
	if err != nil {
		return nil, err
	}
	return loader.New(loader.Options{
		Build:        opts,
		MaxLineBytes: cfg.Mesh.MaxLineBytes,
	}, logger.Log), nil
}

func loadModel(cfg *config.Config, path string) (*loader.Model, error) {
	l, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: objtool info <file.obj>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	obj, err := formats.ReadOBJ(bytes.NewReader(encoding.ToUTF8(data)), cfg.Mesh.MaxLineBytes)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	s := obj.Stats()
	fmt.Printf("Model:      %s\n", filepath.Base(args[0]))
	fmt.Printf("Positions:  %d\n", s.Positions)
	fmt.Printf("TexCoords:  %d\n", s.TexCoords)
	fmt.Printf("Normals:    %d\n", s.Normals)
	fmt.Printf("Faces:      %d\n", s.Faces)
	fmt.Printf("  tris      %d\n", s.Triangles)
	fmt.Printf("  quads     %d\n", s.Quads)
	if s.Other > 0 {
		fmt.Printf("  invalid   %d\n", s.Other)
	}
	return nil
}

func cmdBuild(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: objtool build <file.obj>")
	}

	model, err := loadModel(cfg, args[0])
	if err != nil {
		return err
	}

	m := model.Mesh
	fmt.Printf("Model:      %s\n", model.Name)
	fmt.Printf("Vertices:   %d\n", len(m.Vertices))
	fmt.Printf("Triangles:  %d\n", m.TriangleCount())
	fmt.Printf("Buffer:     %d bytes (stride %d)\n", len(m.Vertices)*mesh.VertexStride, mesh.VertexStride)
	fmt.Printf("Bounds:     min %v max %v\n", m.Bounds.Min, m.Bounds.Max)
	fmt.Printf("Center:     %v\n", m.Bounds.Center())
	if m.Skipped != nil {
		fmt.Printf("Skipped:    see warnings above\n")
	}
	return nil
}

func cmdDump(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: objtool dump [-n N] <file.obj>")
	}

	model, err := loadModel(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	for i, v := range model.Mesh.Vertices {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "\n(showing first %d of %d vertices, use -n 0 for all)\n", *limit, len(model.Mesh.Vertices))
			break
		}
		fmt.Printf("%6d pos %v n %v uv %v tu %v tv %v\n", i, v.Position, v.Normal, v.UV, v.TangentU, v.TangentV)
	}
	return nil
}

func cmdExport(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: objtool export <file.obj> <out.bin>")
	}

	model, err := loadModel(cfg, args[0])
	if err != nil {
		return err
	}

	outputPath := args[1]
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := mesh.WriteVertices(f, model.Mesh.Vertices); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported: %s (%d vertices, %d bytes)\n", outputPath,
		len(model.Mesh.Vertices), len(model.Mesh.Vertices)*mesh.VertexStride)
	for _, a := range mesh.VertexLayout {
		fmt.Printf("  %-10s offset %2d  %d x float32\n", a.Name, a.Offset, a.Components)
	}
	return nil
}

func cmdInitConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", args[0])
		return nil
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	return nil
}
