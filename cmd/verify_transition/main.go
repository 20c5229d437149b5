// Package main provides a transition verification tool for stepping through
// the normal → neon timeline frame by frame.
//
// Usage:
//
//	go run ./cmd/verify_transition [flags]
//
// Flags:
//
//	--profile <name>     Built-in profile (default: "doloris")
//	--config <path>      Resume config file, overrides --profile
//	--logo <mode>        Override logo animation mode (pop, morph)
//	--kunai <mode>       Override kunai animation mode (fade, drop)
//	--speed <factor>     Time scale, 0.25 plays the transition at quarter speed (default: 1)
//	--auto               Toggle again whenever the previous transition finishes
//	--verbose            Enable verbose logging
//
// Controls:
//
//	Space      - Toggle mode
//	P          - Pause / resume
//	. (period) - Advance one frame while paused
//	[ / ]      - Halve / double speed
//	R          - Restart from the initial mode
//	Q          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decker502/neonswitch/data"
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/embedded"
	"github.com/decker502/neonswitch/pkg/game"
	"github.com/decker502/neonswitch/pkg/scenes"
	"github.com/decker502/neonswitch/pkg/transition"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const frameDelta = time.Second / 60

var errQuit = errors.New("quit")

var (
	profileFlag = flag.String("profile", config.DefaultProfile, "Built-in profile to use when --config is empty")
	configFlag  = flag.String("config", "", "Path to a resume config file")
	logoFlag    = flag.String("logo", "", "Override logo animation mode (pop, morph)")
	kunaiFlag   = flag.String("kunai", "", "Override kunai animation mode (fade, drop)")
	speedFlag   = flag.Float64("speed", 1, "Time scale for the transition")
	autoFlag    = flag.Bool("auto", false, "Toggle again whenever the previous transition finishes")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// TransitionVerifyGame implements ebiten.Game for transition verification
type TransitionVerifyGame struct {
	cfg       *config.ResumeConfig
	resources *game.ResourceManager
	scene     *scenes.NeonSwitchScene

	speed  float64
	paused bool
	frames int
}

// NewTransitionVerifyGame loads the config once and builds the first scene
func NewTransitionVerifyGame() (*TransitionVerifyGame, error) {
	cfg, err := config.Load(*configFlag, *profileFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if *logoFlag != "" {
		cfg.Global.AnimationModes.Logo = config.LogoVariant(*logoFlag)
	}
	if *kunaiFlag != "" {
		cfg.Global.AnimationModes.Kunai = config.KunaiVariant(*kunaiFlag)
	}
	for _, w := range config.ValidateResumeConfig(cfg) {
		log.Printf("Config warning: %s", w)
	}

	baseDir := "."
	if *configFlag != "" {
		baseDir = filepath.Dir(*configFlag)
	}

	g := &TransitionVerifyGame{
		cfg:       cfg,
		resources: game.NewResourceManager(baseDir),
		speed:     *speedFlag,
	}
	if g.speed <= 0 {
		g.speed = 1
	}
	g.restart()
	return g, nil
}

func (g *TransitionVerifyGame) restart() {
	g.scene = scenes.NewNeonSwitchScene(g.cfg, g.resources)
	g.frames = 0
	log.Printf("Scene restarted in %s mode", g.scene.Controller().Mode())
}

// Update handles verifier keys, then steps the scene with the scaled delta
func (g *TransitionVerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.speed /= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.speed *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.Controller().RequestToggle()
	}

	step := !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	if !step {
		return nil
	}

	if *autoFlag && !g.scene.Controller().IsAnimating() && !g.scene.ViewState().Tweening() {
		g.scene.Controller().RequestToggle()
	}

	g.scene.Step(time.Duration(float64(frameDelta) * g.speed))
	g.frames++
	return nil
}

// Draw renders the scene and the verifier status
func (g *TransitionVerifyGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	c := g.scene.Controller()
	v := g.scene.ViewState()
	modes := g.cfg.Global.AnimationModes.Normalize()

	status := fmt.Sprintf(
		"Transition Verifier\n"+
			"Mode: %s | Animating: %v | Speed: %.2fx | Paused: %v\n"+
			"Logo: %s | Kunai: %s | Frames: %d | Committed: %d\n"+
			"Overlay: %.2f | States: %s\n"+
			"Space toggle | P pause | . step | [ ] speed | R restart | Q quit",
		c.Mode(), c.IsAnimating(), g.speed, g.paused,
		modes.Logo, modes.Kunai, g.frames, c.CommittedTransitions(),
		v.OverlayOpacity(), strings.Join(stateNames(v.ActiveStates()), " "),
	)
	ebitenutil.DebugPrintAt(screen, status, 8, config.WindowHeight-88)
}

// Layout returns the logical screen size
func (g *TransitionVerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func stateNames(states []transition.VisualState) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime)
	}

	embedded.Init(data.FS())

	log.Println("=== Transition Verifier ===")
	log.Printf("Profile: %s, Config: %q, Speed: %.2fx", *profileFlag, *configFlag, *speedFlag)

	g, err := NewTransitionVerifyGame()
	if err != nil {
		log.Fatalf("Failed to create verifier: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Transition Verifier - " + g.cfg.Global.PageTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("Verifier error: %v", err)
	}

	log.Println("Verifier closed")
}
