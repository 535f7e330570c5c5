package components

import (
	"image/color"

	"github.com/decker502/coredefense/pkg/utils"
)

// BackgroundComponent 星空背景
// Stars 为相对场地中心的坐标，每 tick 随场地旋转
type BackgroundComponent struct {
	Stars []utils.Vec
	Fill  color.NRGBA // 背景底色
}
