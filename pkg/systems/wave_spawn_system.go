package systems

import (
	"log"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 维护会话的出怪倒计时，到期后重置为完整间隔并生成一波
//   - 前几分使用固定波次（教学用），之后按分数档位决定本波的抽取次数
//   - 每次抽取在加权区间中选出一组敌人，依次生成在出生圆环上
//
// 出怪规则来自 SpawnRulesConfig（data/spawn_rules.yaml 或默认值）。
type WaveSpawnSystem struct {
	session *game.Session
	rules   *config.SpawnRulesConfig

	wavesSpawned int
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 参数：
//   - session: 当前会话（读取分数与倒计时，负责实际生成）
//   - rules: 出怪规则，nil 时使用默认规则
func NewWaveSpawnSystem(session *game.Session, rules *config.SpawnRulesConfig) *WaveSpawnSystem {
	if rules == nil {
		rules = config.DefaultSpawnRules()
	}
	return &WaveSpawnSystem{
		session: session,
		rules:   rules,
	}
}

// Update 推进出怪倒计时
//
// 返回：
//   - int: 本 tick 生成的敌人数量
func (s *WaveSpawnSystem) Update(deltaMs float64) int {
	s.session.TimeToEnemySpawn -= deltaMs
	if s.session.TimeToEnemySpawn > 0 {
		return 0
	}
	s.session.TimeToEnemySpawn = s.rules.IntervalMs
	return s.SpawnWave()
}

// SpawnWave 按当前分数立即生成一波敌人
func (s *WaveSpawnSystem) SpawnWave() int {
	score := s.session.Score
	names := s.PlanWave(score)

	spawned := 0
	for _, name := range names {
		enemyType := types.ParseEnemyType(name)
		if enemyType == types.EnemyUnknown {
			log.Printf("[WaveSpawnSystem] Skipping unknown enemy %q", name)
			continue
		}
		if s.session.SpawnEnemy(enemyType) != 0 {
			spawned++
		}
	}

	s.wavesSpawned++
	log.Printf("[WaveSpawnSystem] Wave %d (score %d): %v", s.wavesSpawned, score, names)
	return spawned
}

// PlanWave 决定一波要生成的敌人名称
//
// 固定波次直接返回；否则抽取 CountForScore 次，每次取一个 [0,1) 随机数选区间。
func (s *WaveSpawnSystem) PlanWave(score int) []string {
	if scripted, ok := s.rules.ScriptedEnemies(score); ok {
		return scripted
	}

	var names []string
	count := s.rules.CountForScore(score)
	for i := 0; i < count; i++ {
		names = append(names, s.rules.PickBand(utils.RandFloat64(s.session.Rand()))...)
	}
	return names
}

// WavesSpawned 本系统创建以来生成的波数
func (s *WaveSpawnSystem) WavesSpawned() int {
	return s.wavesSpawned
}
