//go:build !mobile

package app

import "os"

// mobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（用于本地调试）
const mobileEmulateEnv = "NEONSWITCH_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 NEONSWITCH_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
