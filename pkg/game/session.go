package game

import (
	"log"
	"math/rand"
	"sort"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/entities"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
	"github.com/google/uuid"
)

// Phase 会话阶段，任一时刻恰好处于其中之一
type Phase int

const (
	// PhaseTutorial 教程：显示说明文字，玩家可移动，不生成敌人、不计分
	PhaseTutorial Phase = iota
	// PhaseActive 进行中：模拟任务以固定频率运行
	PhaseActive
	// PhaseGameOver 结束：模拟任务已取消，画面继续渲染
	PhaseGameOver
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseTutorial:
		return "tutorial"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Canceler 可取消的周期任务（*TaskHandle 实现了该接口）
type Canceler interface {
	Cancel()
}

// Session 一局游戏的全部状态
//
// 职责：
//   - 持有分数、阶段、出怪倒计时与本局 RunID
//   - 构建与销毁场景实体（重置、教程）
//   - 敌人的生成与移除（RemoveEnemy 可重复调用）
//   - 游戏结束时取消模拟任务（GameOver 可重复调用）
//
// 敌人列表与对象列表都是实体管理器上的查询结果：
// 删除实体会同时把它从两个列表中移除。
type Session struct {
	entityManager *ecs.EntityManager
	config        *config.ArenaConfig
	rng           *rand.Rand
	audio         AudioCue

	Score            int
	Phase            Phase
	TimeToEnemySpawn float64 // 距下一波的剩余时间（毫秒）
	RunID            string  // 本局唯一标识，每次重置重新生成

	// InitialSpawnDelayMs 重置后第一波的延迟
	InitialSpawnDelayMs float64

	PlayerID ecs.EntityID
	CenterID ecs.EntityID

	simTask Canceler
}

// NewSession 创建会话
//
// 参数：
//   - em: 实体管理器
//   - cfg: 场地配置
//   - rng: 随机源（nil 使用全局随机源）
//   - audio: 音效接收端（nil 时不发声）
//
// 返回的会话处于教程阶段但尚未构建实体，需调用 StartTutorial 或 Reset。
func NewSession(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand, audio AudioCue) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Session{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		audio:         audio,
		Phase:         PhaseTutorial,
	}
}

// EntityManager 返回会话使用的实体管理器
func (s *Session) EntityManager() *ecs.EntityManager { return s.entityManager }

// Config 返回场地配置
func (s *Session) Config() *config.ArenaConfig { return s.config }

// Rand 返回随机源（可能为 nil）
func (s *Session) Rand() *rand.Rand { return s.rng }

// Audio 返回音效接收端
func (s *Session) Audio() AudioCue { return s.audio }

// AttachSimTask 登记当前阶段的模拟任务，游戏结束或重置时取消
func (s *Session) AttachSimTask(task Canceler) {
	s.simTask = task
}

// StartTutorial 进入教程：背景、中心、玩家与四行说明文字
func (s *Session) StartTutorial() {
	s.cancelSimTask()
	s.entityManager.Clear()

	entities.NewBackgroundEntity(s.entityManager, s.config, s.rng)
	s.CenterID = entities.NewCenterEntity(s.entityManager, s.config)
	s.PlayerID = entities.NewPlayerEntity(s.entityManager, s.config)
	entities.NewTutorialTextEntities(s.entityManager)

	s.Score = 0
	s.TimeToEnemySpawn = s.InitialSpawnDelayMs
	s.RunID = ""
	s.Phase = PhaseTutorial

	log.Printf("[Session] Tutorial started")
}

// Reset 开始新的一局
//
// 丢弃所有实体并重新构建背景、分数、中心与玩家；分数清零；生成新的 RunID；
// 播放开局音效并开始背景音乐。正在运行的模拟任务会被取消，
// 调用方随后通过 AttachSimTask 登记新任务。
func (s *Session) Reset() {
	previous := s.Phase
	s.cancelSimTask()
	s.entityManager.Clear()

	entities.NewBackgroundEntity(s.entityManager, s.config, s.rng)
	entities.NewScoreTextEntity(s.entityManager)
	s.CenterID = entities.NewCenterEntity(s.entityManager, s.config)
	s.PlayerID = entities.NewPlayerEntity(s.entityManager, s.config)

	s.Score = 0
	s.TimeToEnemySpawn = s.InitialSpawnDelayMs
	s.RunID = uuid.NewString()
	s.Phase = PhaseActive

	s.audio.Play(SoundGameBegin)
	s.audio.Loop(LoopSong, true)

	log.Printf("[Session] New run %s (from %s)", s.RunID, previous)
}

// GameOver 结束本局
//
// 只在进行中阶段生效：取消模拟任务、显示结束提示、播放结束音效。
// 重复调用不会产生第二条提示或第二次取消。
//
// 返回：
//   - bool: 本次调用是否真正结束了游戏
func (s *Session) GameOver() bool {
	if s.Phase != PhaseActive {
		return false
	}
	s.Phase = PhaseGameOver
	s.cancelSimTask()

	entities.NewTextEntity(s.entityManager, entities.GameOverText, entities.GameOverTextY, components.LayerOverlay)
	s.audio.Play(SoundGameOver)

	log.Printf("[Session] Run %s over, score %d", s.RunID, s.Score)
	return true
}

func (s *Session) cancelSimTask() {
	if s.simTask != nil {
		s.simTask.Cancel()
		s.simTask = nil
	}
}

// SpawnEnemy 在出生圆环上的随机位置生成敌人
func (s *Session) SpawnEnemy(enemyType types.EnemyType) ecs.EntityID {
	pos := s.config.Center().Add(utils.RandomInRadius(s.config.OuterRadius, s.rng))
	return s.SpawnEnemyAt(enemyType, pos)
}

// SpawnEnemyAt 在指定位置生成敌人并播放出生音效
//
// 返回：
//   - ecs.EntityID: 新敌人的ID，类型无法生成时返回 0
func (s *Session) SpawnEnemyAt(enemyType types.EnemyType, pos utils.Vec) ecs.EntityID {
	id, err := entities.NewEnemyEntity(s.entityManager, s.config, s.rng, enemyType, pos)
	if err != nil {
		log.Printf("[Session] Failed to spawn %s: %v", enemyType, err)
		return 0
	}
	s.audio.Play(SoundEnemySpawn)
	return id
}

// SpawnGreyGooClone 生成 GreyGoo 的克隆体（携带递减后的复制次数）
func (s *Session) SpawnGreyGooClone(pos utils.Vec, spawnsLeft int) ecs.EntityID {
	id := entities.NewGreyGooEntity(s.entityManager, s.config, pos, spawnsLeft)
	s.audio.Play(SoundEnemySpawn)
	return id
}

// SpawnProtoBasic 生成飞向 target 的 ProtoBasic（不计入敌人列表）
func (s *Session) SpawnProtoBasic(pos, target utils.Vec) ecs.EntityID {
	return entities.NewProtoBasicEntity(s.entityManager, s.config, pos, target)
}

// RemoveEnemy 移除敌人（或 ProtoBasic）
//
// 实体已不存在时什么也不做并返回 false，因此同一 tick 内重复移除是安全的。
// 否则：删除实体（同时离开敌人列表与对象列表），给分的敌人加 1 分，
// 在原位置生成爆炸粒子并播放爆炸音效。
func (s *Session) RemoveEnemy(id ecs.EntityID) bool {
	if !s.entityManager.IsAlive(id) {
		return false
	}

	var pos utils.Vec
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		pos = transform.Pos
	}
	givesPoints := false
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
		givesPoints = enemy.GivesPoints
	}

	s.entityManager.DestroyEntity(id)
	if givesPoints {
		s.Score++
	}

	entities.NewExplosion(s.entityManager, s.config, s.rng, pos)
	s.audio.Play(SoundExplosion)
	return true
}

// EnemyList 当前存活的敌人（按生成顺序）
func (s *Session) EnemyList() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)
}

// ObjectList 当前需要绘制的实体，按绘制顺序（先层级，后生成顺序）
func (s *Session) ObjectList() []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.RenderComponent](s.entityManager)
	layers := make(map[ecs.EntityID]components.Layer, len(ids))
	for _, id := range ids {
		render, _ := ecs.GetComponent[*components.RenderComponent](s.entityManager, id)
		layers[id] = render.Layer
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return layers[ids[i]] < layers[ids[j]]
	})
	return ids
}

// PlayerTransform 返回玩家的变换组件（玩家不存在时返回 nil）
func (s *Session) PlayerTransform() *components.TransformComponent {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.PlayerID)
	if !ok {
		return nil
	}
	return transform
}
