package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"planet_skybox/config"
)

const PROGRAM_NAME = "planet skybox"

var (
	scenePath = flag.String("scene", "", "YAML scene file, the built-in scene is used when empty")
	outDir    = flag.String("out", "", "export directory, overrides export.dir")
	frames    = flag.Int("frames", -1, "number of frames to bake, overrides export.frames")
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func loadScene() (*config.Scene, error) {
	if *scenePath == "" {
		log.Println("No scene file given, using the built-in scene")
		return config.Default(), nil
	}
	log.Printf("Reading scene file %s", *scenePath)
	return config.Load(*scenePath)
}

func main() {
	flag.Parse()

	cfg, err := loadScene()
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}
	if *frames >= 0 {
		cfg.Export.Frames = *frames
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid scene: %v", err)
	}

	scene, err := buildScene(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	describeScene(scene)

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create export directory: %v", err)
	}
	if err := exportMeshes(scene, cfg.Export.Dir); err != nil {
		log.Fatalf("Failed to export meshes: %v", err)
	}
	if err := exportTrack(scene, cfg.Export); err != nil {
		log.Fatalf("Failed to bake frames: %v", err)
	}
	log.Printf("Done, output written to %s", cfg.Export.Dir)
}
