// Command poche generates sketch documents from declarative shape
// parameters and writes them as JSON, exercising the same programmatic
// path a command translator uses.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/worthybrae/poche"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "poche",
		Short:         "generate sketch mesh documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				poche.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log kernel mutations to stderr")
	root.AddCommand(boxCmd(), terrainCmd())
	return root
}

func boxCmd() *cobra.Command {
	var (
		at   []float64
		size []float64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "box",
		Short: "generate an axis-aligned box",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := point3(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			extents, err := vec3(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			m := poche.NewMesh()
			faces := poche.Box(m, origin, extents)
			if faces == nil {
				return fmt.Errorf("box: extents must be positive, got %v", size)
			}
			return writeDocument(m, out)
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", []float64{0, 0, 0}, "minimum corner x,y,z")
	cmd.Flags().Float64SliceVar(&size, "size", []float64{10, 10, 10}, "extents x,y,z")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func terrainCmd() *cobra.Command {
	var (
		at         []float64
		size       float64
		resolution int
		height     float64
		profile    string
		seed       int64
		out        string
	)
	cmd := &cobra.Command{
		Use:   "terrain",
		Short: "generate a terrain grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := point3(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			m := poche.NewMesh()
			faces := poche.Terrain(m, poche.TerrainParams{
				Origin:     origin,
				Size:       size,
				Resolution: resolution,
				Height:     height,
				Profile:    poche.TerrainProfile(profile),
				Seed:       seed,
			})
			if faces == nil {
				return fmt.Errorf("terrain: bad parameters (size %g, resolution %d, profile %q)",
					size, resolution, profile)
			}
			return writeDocument(m, out)
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", []float64{0, 0, 0}, "grid origin x,y,z")
	cmd.Flags().Float64Var(&size, "size", 20, "side length")
	cmd.Flags().IntVar(&resolution, "resolution", 10, "cells per side")
	cmd.Flags().Float64Var(&height, "height", 2, "profile amplitude")
	cmd.Flags().StringVar(&profile, "profile", "hills", "height profile: flat, hills, ridge, bowl")
	cmd.Flags().Int64Var(&seed, "seed", 0, "noise seed for the hills profile")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func point3(s []float64) (poche.Point3, error) {
	if len(s) != 3 {
		return poche.Point3{}, fmt.Errorf("want 3 comma-separated values, got %d", len(s))
	}
	return poche.Pt3(s[0], s[1], s[2]), nil
}

func vec3(s []float64) (poche.Vec3, error) {
	if len(s) != 3 {
		return poche.Vec3{}, fmt.Errorf("want 3 comma-separated values, got %d", len(s))
	}
	return poche.V3(s[0], s[1], s[2]), nil
}

func writeDocument(m *poche.Mesh, out string) error {
	if out == "" {
		return poche.EncodeDocument(os.Stdout, m.Document())
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := poche.EncodeDocument(f, m.Document()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
