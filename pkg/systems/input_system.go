package systems

import (
	"log"
	"math"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/entities"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// Intent 按键对会话的请求，由宿主（场景或终端主循环）执行
type Intent int

const (
	IntentNone       Intent = iota
	IntentRestart           // 开始新的一局
	IntentToggleMute        // 切换静音并保存设置
)

// directionVecs 方向键对应的单位向量（y 轴向下）
var directionVecs = map[string]utils.Vec{
	types.KeyArrowLeft:  utils.V(-1, 0),
	types.KeyArrowRight: utils.V(1, 0),
	types.KeyArrowUp:    utils.V(0, -1),
	types.KeyArrowDown:  utils.V(0, 1),
}

// directionOrder 求和顺序固定，避免依赖 map 遍历顺序
var directionOrder = []string{types.KeyArrowLeft, types.KeyArrowRight, types.KeyArrowUp, types.KeyArrowDown}

// InputSystem 把离散按键事件转换为玩家速度与会话意图
//
// 方向键：记录按住状态，各方向单位向量求和；两个轴同时按下（|v|² = 2）时
// 缩放 1/√2，最终速度为 Player.Speed。移动时开启引擎循环音，停止时关闭。
//
// R 抬起（非教程阶段）与空格抬起（教程阶段）请求重开；M 抬起切换静音。
// 其它按键被忽略。
type InputSystem struct {
	session *game.Session
	config  *config.ArenaConfig

	held     map[string]bool
	engineOn bool
}

// NewInputSystem 创建输入系统
func NewInputSystem(session *game.Session, cfg *config.ArenaConfig) *InputSystem {
	return &InputSystem{
		session: session,
		config:  cfg,
		held:    make(map[string]bool),
	}
}

// HandleKey 处理一次按键事件
//
// 返回：
//   - Intent: 需要宿主执行的会话操作，没有时为 IntentNone
func (s *InputSystem) HandleKey(ev types.KeyEvent) Intent {
	switch {
	case ev.Code == types.KeyR && !ev.Down && s.session.Phase != game.PhaseTutorial:
		return IntentRestart
	case ev.Code == types.KeySpace && !ev.Down && s.session.Phase == game.PhaseTutorial:
		return IntentRestart
	case ev.Code == types.KeyM && !ev.Down:
		return IntentToggleMute
	}

	if _, ok := directionVecs[ev.Code]; !ok {
		return IntentNone
	}
	s.held[ev.Code] = ev.Down
	s.ApplyVelocity()
	return IntentNone
}

// Direction 当前按住的方向之和（未归一化）
func (s *InputSystem) Direction() utils.Vec {
	sum := utils.ZeroVec
	for _, code := range directionOrder {
		if s.held[code] {
			sum = sum.Add(directionVecs[code])
		}
	}
	return sum
}

// ApplyVelocity 根据按住的方向设置玩家速度并切换引擎音
// 重开一局后也需要调用，让仍按住的方向键立即生效
func (s *InputSystem) ApplyVelocity() {
	dir := s.Direction()
	mag := dir.MagnitudeSq()
	if mag == 2 {
		dir = dir.Scale(1 / math.Sqrt2)
	}

	if transform := s.session.PlayerTransform(); transform != nil {
		entities.SetVelocity(transform, dir.Scale(s.config.Player.Speed), s.config.Epsilon)
	}

	moving := mag != 0
	if moving != s.engineOn {
		s.engineOn = moving
		s.session.Audio().Loop(game.LoopEngine, moving)
	}
}

// ReleaseAll 清除所有按住状态（窗口失焦或终端按键超时时使用）
func (s *InputSystem) ReleaseAll() {
	if len(s.held) == 0 {
		return
	}
	log.Printf("[InputSystem] Releasing %d held keys", len(s.held))
	s.held = make(map[string]bool)
	s.ApplyVelocity()
}
