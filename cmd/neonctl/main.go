// neonctl 双模态简历的命令行工具
//
// 用法：
//
//	neonctl timeline --logo morph --kunai drop   # 打印一次转场的全部视觉调用
//	neonctl check -c resume.jsonc                # 检查配置中会被降级的值
//	neonctl profiles                             # 列出内置配置
//	neonctl tui --profile mortis                 # 在终端中运行
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/decker502/neonswitch/cmd/neonctl/commands"
	"github.com/decker502/neonswitch/data"
	"github.com/decker502/neonswitch/pkg/embedded"
)

func main() {
	embedded.Init(data.FS())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := commands.NewRootCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "neonctl: %v\n", err)
		os.Exit(1)
	}
}
