package systems

import (
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/systems/behavior"
	"github.com/decker502/coredefense/pkg/utils"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// Simulation 按固定顺序驱动一个 tick 内的所有系统
//
// 进行中阶段（ActiveTick）：
//  1. 移动（含场地旋转与尾迹）
//  2. 敌人行为
//  3. 粒子移动与寿命
//  4. 背景旋转
//  5. 碰撞（中心 → 玩家 → 禁入区）
//  6. 出怪倒计时
//  7. 清理本 tick 删除的实体
//  8. 刷新分数文字
//
// 教程阶段（TutorialTick）只运行移动、粒子、背景与禁入区，不出怪也不计分。
type Simulation struct {
	session *game.Session
	config  *config.ArenaConfig

	movement   *MovementSystem
	behavior   *behavior.BehaviorSystem
	particles  *ParticleSystem
	lifetime   *LifetimeSystem
	background *BackgroundSystem
	collision  *CollisionSystem
	spawner    *WaveSpawnSystem
	scoreText  *ScoreTextSystem

	ticks int
}

// NewSimulation 创建模拟
//
// 参数：
//   - session: 当前会话（重置时实体管理器被清空，但对象本身不变）
//   - rules: 出怪规则，nil 时使用默认规则
func NewSimulation(session *game.Session, rules *config.SpawnRulesConfig) *Simulation {
	em := session.EntityManager()
	cfg := session.Config()
	return &Simulation{
		session:    session,
		config:     cfg,
		movement:   NewMovementSystem(em, cfg, session.Rand()),
		behavior:   behavior.NewBehaviorSystem(session),
		particles:  NewParticleSystem(em),
		lifetime:   NewLifetimeSystem(em),
		background: NewBackgroundSystem(em),
		collision:  NewCollisionSystem(em, cfg, session),
		spawner:    NewWaveSpawnSystem(session, rules),
		scoreText:  NewScoreTextSystem(em, session),
	}
}

// ActiveTick 执行一个进行中阶段的 tick
//
// 参数：
//   - deltaMs: 距上一个 tick 的真实毫秒数
func (s *Simulation) ActiveTick(deltaMs float64) {
	d := utils.NewDelta(deltaMs, s.config.SpinDegreesPerSecond)
	s.ticks++

	s.movement.Update(d)
	s.behavior.Update(deltaMs)
	s.particles.Update(d)
	s.lifetime.Update(deltaMs)
	s.background.Update(d)
	s.collision.Update()
	s.spawner.Update(deltaMs)
	s.session.EntityManager().RemoveMarkedEntities()
	s.scoreText.Update()
}

// TutorialTick 执行一个教程阶段的 tick
func (s *Simulation) TutorialTick(deltaMs float64) {
	d := utils.NewDelta(deltaMs, s.config.SpinDegreesPerSecond)
	s.ticks++

	s.movement.Update(d)
	s.particles.Update(d)
	s.lifetime.Update(deltaMs)
	s.background.Update(d)
	s.collision.ContainPlayer()
	s.session.EntityManager().RemoveMarkedEntities()
}

// Ticks 已执行的 tick 数
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Spawner 返回出怪系统
func (s *Simulation) Spawner() *WaveSpawnSystem {
	return s.spawner
}
