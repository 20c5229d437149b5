// Package data 内置 profile 数据
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，因此嵌入声明放在 data/ 目录下，
// 桌面端、移动端和 neonctl 共用同一份数据。
package data

import (
	"embed"
	"io/fs"
)

//go:embed profiles
var files embed.FS

// FS 返回以 data/ 为根的只读文件系统，交给 embedded.Init 使用
func FS() fs.FS {
	return files
}
