package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/neonswitch/data"
	"github.com/decker502/neonswitch/pkg/app"
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "", "Path to a resume config file (.yaml, .yml, .json, .jsonc)")
	profileFlag = flag.String("profile", config.DefaultProfile, "Built-in profile to use when --config is empty")
	listFlag    = flag.Bool("list-profiles", false, "List built-in profiles and exit")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	embedded.Init(data.FS())

	if *listFlag {
		names, err := config.ListEmbeddedProfiles()
		if err != nil {
			log.Fatalf("列出内置 profile 失败: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Profile:    *profileFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
