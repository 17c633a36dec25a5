package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/alongpath/asset"
	"github.com/lixenwraith/alongpath/audio"
	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/render"
	"github.com/lixenwraith/alongpath/scene"
	"github.com/lixenwraith/alongpath/session"
)

// Environment defaults for flags, optionally from .env
const (
	envScene = "ALONGPATH_SCENE"
	envDebug = "ALONGPATH_DEBUG"
	envPlane = "ALONGPATH_PLANE"
)

func main() {
	// Reported once logging is up
	envErr := loadDotEnv()

	scenePath := flag.String("scene", os.Getenv(envScene), "Scene file (.toml, .yaml); empty uses config/scene.toml or the built-in scene")
	debugFlag := flag.Bool("debug", envBool(envDebug), "Write logs to logs/alongpath.log")
	planeFlag := flag.String("plane", envOr(envPlane, "xz"), "Projection plane: xz (top-down) or xy (front)")
	noAudio := flag.Bool("no-audio", false, "Disable audio cues")
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.Printf("[main] failed to load .env: %v", envErr)
	}

	doc, err := scene.LoadAuto(*scenePath, asset.DefaultScene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	queue := event.NewEventQueue()
	sc, err := scene.Build(doc, scene.BuildOptions{Queue: queue})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	manager, err := session.OpenManager("")
	if err != nil {
		log.Printf("[main] %v (snapshots kept in memory)", err)
	}
	sceneKey := *scenePath
	if sceneKey == "" {
		sceneKey = "default"
	}
	store := session.NewStore(manager, sceneKey, nil)
	if _, err := store.Restore(sc.Followers); err != nil {
		log.Printf("[main] restore failed: %v", err)
	}

	audioCfg := audio.LoadAudioConfig()
	if *noAudio {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("[main] audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	plane := render.PlaneXZ
	if *planeFlag == "xy" {
		plane = render.PlaneXY
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mALONGPATH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sb := newSandbox(screen, sc, queue, sound, store, plane)
	sb.run()
	screen.Fini()

	if err := store.Save(sc.Followers); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save session: %v\n", err)
	}
}

// loadDotEnv loads .env (or the given files); missing files are not an error
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
