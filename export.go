package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"planet_skybox/common"
	"planet_skybox/config"
	"planet_skybox/model"
	"planet_skybox/stl"
)

const trackFile = "track.bin"

// withProgress creates path and hands fn a writer that also advances a progress bar sized to n bytes.
func withProgress(path string, n int64, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bar := progressbar.DefaultBytes(n, fmt.Sprintf("write %s", filepath.Base(path)))
	defer bar.Close()

	if err := fn(io.MultiWriter(f, bar)); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func exportMeshes(scene *model.Scene, dir string) error {
	for _, m := range scene.Models() {
		path := filepath.Join(dir, m.Name+".stl")
		err := withProgress(path, stl.Size(m.Mesh), func(w io.Writer) error {
			return stl.Write(w, m.Mesh, m.Name)
		})
		if err != nil {
			return fmt.Errorf("model '%s': %w", m.Name, err)
		}
		log.Printf("Exported '%s' to %s, triangle count: %d", m.Name, path, m.Mesh.TriangleCount())
	}
	return nil
}

// trackSize is the byte size of a baked track, one model matrix per planet per frame.
func trackSize(scene *model.Scene, frames int) int64 {
	return int64(frames) * int64(len(scene.Planets())) * 64
}

// bake evaluates the scene frame by frame and writes every planet's model matrix as 16 little endian
// float32 values in column-major order.
func bake(w io.Writer, scene *model.Scene, frames int, step float32) error {
	for i := 0; i < frames; i++ {
		if _, err := scene.Frame(float32(i) * step); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		for _, p := range scene.Planets() {
			b, err := common.RawBytes(p.Body.ModelMat)
			if err != nil {
				return err
			}
			if _, err := w.Write(b); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportTrack(scene *model.Scene, e config.Export) error {
	path := filepath.Join(e.Dir, trackFile)
	err := withProgress(path, trackSize(scene, e.Frames), func(w io.Writer) error {
		return bake(w, scene, e.Frames, e.FrameStep)
	})
	if err != nil {
		return err
	}
	log.Printf("Baked %d frames for %d planets to %s", e.Frames, len(scene.Planets()), path)
	return nil
}
