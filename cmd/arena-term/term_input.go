package main

import (
	"time"

	"github.com/decker502/coredefense/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// TermKeys 把 tcell 的按键事件转换为按下/抬起事件
//
// 终端只报告按下（以及按住时的自动重复），不报告抬起。
// 方向键在最近一次按下或重复之后 releaseAfter 内视为按住，
// 超时后由 Expire 生成抬起事件。动作键（R、空格、M）立即生成一对按下/抬起。
type TermKeys struct {
	releaseAfter time.Duration
	held         map[string]time.Time // 按键代码 -> 松开的截止时间
}

// NewTermKeys 创建按键跟踪器
func NewTermKeys(releaseAfter time.Duration) *TermKeys {
	return &TermKeys{
		releaseAfter: releaseAfter,
		held:         make(map[string]time.Time),
	}
}

// IsQuit 是否为退出键（Esc、Ctrl-C、q）
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// TermKeyCode 返回 tcell 按键对应的按键代码；WASD 映射为方向键
func TermKeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return types.KeyArrowLeft
	case tcell.KeyRight:
		return types.KeyArrowRight
	case tcell.KeyUp:
		return types.KeyArrowUp
	case tcell.KeyDown:
		return types.KeyArrowDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return types.KeyArrowLeft
		case 'd', 'D':
			return types.KeyArrowRight
		case 'w', 'W':
			return types.KeyArrowUp
		case 's', 'S':
			return types.KeyArrowDown
		case 'r', 'R':
			return types.KeyR
		case 'm', 'M':
			return types.KeyM
		case ' ':
			return types.KeySpace
		}
	}
	return ""
}

// Press 处理一次按键，把生成的事件追加到 dst
func (k *TermKeys) Press(dst []types.KeyEvent, code string, now time.Time) []types.KeyEvent {
	if code == "" {
		return dst
	}
	if !isDirection(code) {
		return append(dst, types.KeyEvent{Code: code, Down: true}, types.KeyEvent{Code: code, Down: false})
	}
	if _, held := k.held[code]; !held {
		dst = append(dst, types.KeyEvent{Code: code, Down: true})
	}
	k.held[code] = now.Add(k.releaseAfter)
	return dst
}

// Expire 为超时未重复的方向键生成抬起事件
func (k *TermKeys) Expire(dst []types.KeyEvent, now time.Time) []types.KeyEvent {
	for _, code := range directionCodes {
		deadline, held := k.held[code]
		if held && !now.Before(deadline) {
			delete(k.held, code)
			dst = append(dst, types.KeyEvent{Code: code, Down: false})
		}
	}
	return dst
}

// Held 当前视为按住的方向键数量
func (k *TermKeys) Held() int {
	return len(k.held)
}

// directionCodes 固定的遍历顺序
var directionCodes = []string{types.KeyArrowLeft, types.KeyArrowRight, types.KeyArrowUp, types.KeyArrowDown}

func isDirection(code string) bool {
	for _, c := range directionCodes {
		if c == code {
			return true
		}
	}
	return false
}
