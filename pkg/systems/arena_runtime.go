package systems

import (
	"log"
	"time"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
)

// statsIntervalMs 耗时统计的输出间隔
const statsIntervalMs = 1000

// SettingsApplier 设置变化后需要重新应用的音频后端
type SettingsApplier interface {
	ApplySettings()
}

// ArenaRuntime 把会话、模拟、输入与渲染组装成一个可由任意宿主驱动的整体
//
// 宿主（ebiten 场景或终端主循环）负责：
//   - 每帧以毫秒时钟调用 Advance，让调度器执行到期的 tick
//   - 把按键事件交给 HandleKey
//   - 每帧调用 Draw
//
// 所有方法都在宿主的单一线程上调用。
type ArenaRuntime struct {
	session   *game.Session
	config    *config.ArenaConfig
	sim       *Simulation
	input     *InputSystem
	render    *RenderSystem
	scheduler *game.Scheduler

	settings *game.SettingsManager
	applier  SettingsApplier

	maxUpdateMs float64
	maxRenderMs float64
}

// RuntimeOptions 运行时的可选依赖
type RuntimeOptions struct {
	Rules    *config.SpawnRulesConfig // nil 时使用默认出怪规则
	Settings *game.SettingsManager    // nil 时 M 键不起作用
	Applier  SettingsApplier          // 静音切换后调用
}

// NewArenaRuntime 创建运行时（尚未开始，需调用 Start）
func NewArenaRuntime(session *game.Session, opts RuntimeOptions) *ArenaRuntime {
	cfg := session.Config()
	if opts.Rules != nil {
		session.InitialSpawnDelayMs = opts.Rules.InitialDelayMs
	}
	return &ArenaRuntime{
		session:  session,
		config:   cfg,
		sim:      NewSimulation(session, opts.Rules),
		input:    NewInputSystem(session, cfg),
		render:   NewRenderSystem(session.EntityManager(), session, cfg),
		settings: opts.Settings,
		applier:  opts.Applier,
	}
}

// Start 以 nowMs 作为时钟起点开始运行
//
// 参数：
//   - nowMs: 宿主的当前毫秒时钟
//   - skipTutorial: 为 true 时直接开局
func (r *ArenaRuntime) Start(nowMs float64, skipTutorial bool) {
	r.scheduler = game.NewScheduler(nowMs)
	r.scheduler.Every(statsIntervalMs, func(float64) {
		log.Printf("[ArenaRuntime] max render time: %.2fms, max update time: %.2fms", r.maxRenderMs, r.maxUpdateMs)
	})

	if skipTutorial {
		r.Restart()
		return
	}
	r.StartTutorial()
}

// StartTutorial 进入教程并调度教程 tick
func (r *ArenaRuntime) StartTutorial() {
	r.session.StartTutorial()
	r.session.AttachSimTask(r.scheduler.Every(r.config.TickIntervalMs(), r.timed(r.sim.TutorialTick)))
	r.input.ApplyVelocity()
}

// Restart 开始新的一局并调度进行中 tick
// 旧的 tick 任务由 Session.Reset 取消
func (r *ArenaRuntime) Restart() {
	r.session.Reset()
	r.session.AttachSimTask(r.scheduler.Every(r.config.TickIntervalMs(), r.timed(r.sim.ActiveTick)))
	r.input.ApplyVelocity()
}

// Advance 推进时钟并执行到期的任务
func (r *ArenaRuntime) Advance(nowMs float64) int {
	if r.scheduler == nil {
		return 0
	}
	return r.scheduler.Advance(nowMs)
}

// HandleKey 处理一次按键事件
func (r *ArenaRuntime) HandleKey(ev types.KeyEvent) {
	switch r.input.HandleKey(ev) {
	case IntentRestart:
		r.Restart()
	case IntentToggleMute:
		r.toggleMute()
	}
}

// ReleaseAllKeys 松开所有方向键
func (r *ArenaRuntime) ReleaseAllKeys() {
	r.input.ReleaseAll()
}

// Draw 渲染一帧并记录耗时
func (r *ArenaRuntime) Draw(renderer Renderer) {
	start := time.Now()
	r.render.Draw(renderer)
	r.maxRenderMs = max(r.maxRenderMs, msSince(start))
}

// Session 返回会话
func (r *ArenaRuntime) Session() *game.Session {
	return r.session
}

// Stats 返回目前为止单次更新与单次渲染的最大耗时（毫秒）
func (r *ArenaRuntime) Stats() (maxUpdateMs, maxRenderMs float64) {
	return r.maxUpdateMs, r.maxRenderMs
}

func (r *ArenaRuntime) toggleMute() {
	if r.settings == nil {
		return
	}
	on, err := r.settings.ToggleSound()
	if err != nil {
		log.Printf("[ArenaRuntime] Failed to save settings: %v", err)
	}
	if r.applier != nil {
		r.applier.ApplySettings()
	}
	log.Printf("[ArenaRuntime] Sound enabled: %v", on)
}

func (r *ArenaRuntime) timed(tick func(deltaMs float64)) func(deltaMs float64) {
	return func(deltaMs float64) {
		start := time.Now()
		tick(deltaMs)
		r.maxUpdateMs = max(r.maxUpdateMs, msSince(start))
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
