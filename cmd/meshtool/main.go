// meshtool tessellates shapes without a window and prints or exports the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "obj":
		cmdExport(args, "obj", writeOBJ)
	case "raw":
		cmdExport(args, "raw", writeRaw)
	case "layout":
		cmdLayout()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - parametric mesh tessellator

Usage:
  meshtool <command> [options] <sphere|cone>

Commands:
  info   Print vertex, triangle and bounds statistics
  obj    Write a Wavefront OBJ file
  raw    Write interleaved little-endian float32 vertices (32 bytes each)
  layout Print the vertex attribute layout

Options:
  -radius float   Shape radius (default 1)
  -height float   Cone height (default 2)
  -slices int     Angular subdivisions (default 32)
  -stacks int     Latitude/height subdivisions (default 16)
  -o path         Output file for obj/raw (default stdout)

Examples:
  meshtool info -slices 8 -stacks 4 cone
  meshtool obj -radius 2 -o sphere.obj sphere
  meshtool raw -o cone.bin cone`)
}

func parseShape(name string, args []string) (mesh.Shape, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	defaults := config.Default().Shape
	radius := fs.Float64("radius", float64(defaults.Radius), "Shape radius")
	height := fs.Float64("height", float64(defaults.Height), "Cone height")
	slices := fs.Int("slices", defaults.Slices, "Angular subdivisions")
	stacks := fs.Int("stacks", defaults.Stacks, "Latitude/height subdivisions")
	output := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: meshtool %s [options] <sphere|cone>\n", name)
		os.Exit(1)
	}

	cfg := config.ShapeConfig{
		Kind:   fs.Arg(0),
		Radius: float32(*radius),
		Height: float32(*height),
		Slices: *slices,
		Stacks: *stacks,
	}
	shape, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return shape, *output
}

func cmdInfo(args []string) {
	shape, _ := parseShape("info", args)
	stats := mesh.ComputeStats(shape.Vertices())
	size := stats.Bounds.Size()

	fmt.Printf("Shape:     %s\n", shape.Name())
	fmt.Printf("Vertices:  %d (%d unique)\n", stats.Vertices, stats.Unique)
	fmt.Printf("Triangles: %d\n", stats.Triangles)
	fmt.Printf("Bytes:     %d\n", stats.Vertices*int(mesh.VertexLayout.Stride))
	fmt.Printf("Bounds:    min %v max %v\n", stats.Bounds.Min, stats.Bounds.Max)
	fmt.Printf("Size:      %.4f x %.4f x %.4f\n", size.X(), size.Y(), size.Z())
	fmt.Printf("Normals:   max deviation from unit length %.2e\n", stats.MaxNormalError)
}

func cmdLayout() {
	l := mesh.VertexLayout
	fmt.Printf("Stride: %d bytes (%d floats)\n", l.Stride, l.FloatsPerVertex())
	for _, a := range l.Attributes {
		fmt.Printf("  %d %-10s offset %2d  %d x %s\n", a.Location, a.Name, a.Offset, a.Components, a.Type)
	}
}

func writeOBJ(w io.Writer, shape mesh.Shape, vertices []mesh.ShapeVertex) error {
	return mesh.WriteOBJ(w, shape.Name(), vertices)
}

func writeRaw(w io.Writer, _ mesh.Shape, vertices []mesh.ShapeVertex) error {
	return mesh.WriteRaw(w, vertices)
}

type writeFunc func(io.Writer, mesh.Shape, []mesh.ShapeVertex) error

func cmdExport(args []string, name string, write writeFunc) {
	shape, output := parseShape(name, args)
	vertices := shape.Vertices()

	if output == "" {
		if err := write(os.Stdout, shape, vertices); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}

	if err := writeFile(output, shape, vertices, write); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s: %d vertices, %d triangles\n", output, len(vertices), mesh.TriangleCount(vertices))
}

// writeFile writes the vertices to path. A partially written file is removed.
func writeFile(path string, shape mesh.Shape, vertices []mesh.ShapeVertex, write writeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := write(f, shape, vertices); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
