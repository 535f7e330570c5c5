package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/coredefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// SpawnRulesConfig 敌人波次生成规则配置
//
// 波次选择流程：
//  1. 当前分数命中 Scripted 中的某一条 → 按该条固定生成
//  2. 否则由 Tiers 决定本波生成次数，每次按 Bands 权重随机选择一组敌人
//
// 配置文件位置: data/spawn_rules.yaml
type SpawnRulesConfig struct {
	IntervalMs     float64        `yaml:"intervalMs"`     // 两波之间的间隔（毫秒）
	InitialDelayMs float64        `yaml:"initialDelayMs"` // 开局到第一波的延迟（毫秒）
	Scripted       []ScriptedWave `yaml:"scripted"`       // 低分数段的固定波次
	Tiers          []SpawnTier    `yaml:"tiers"`          // 分数段 -> 每波生成次数
	DefaultCount   int            `yaml:"defaultCount"`   // 超出所有分数段时的生成次数
	Bands          []WeightedBand `yaml:"bands"`          // 加权随机选择表
}

// ScriptedWave 固定波次：分数等于 Score 时生成 Enemies
type ScriptedWave struct {
	Score   int      `yaml:"score"`
	Enemies []string `yaml:"enemies"`
}

// SpawnTier 分数低于 BelowScore 时每波生成 Count 次
type SpawnTier struct {
	BelowScore int `yaml:"belowScore"`
	Count      int `yaml:"count"`
}

// WeightedBand 一个随机选择区间，命中后生成 Enemies 中的全部敌人
type WeightedBand struct {
	Enemies []string `yaml:"enemies"`
	Weight  float64  `yaml:"weight"`
}

// DefaultSpawnRules 返回默认生成规则
//
// 分数 0 → 1 个 Basic；分数 1 → Swirl + Tp；分数 2、3 → Scared + Tp；
// 之后每波 2/3/4 次（分数 <16 / <64 / 其他），7 个等宽区间随机选择。
func DefaultSpawnRules() *SpawnRulesConfig {
	return &SpawnRulesConfig{
		IntervalMs:     10 * 1000,
		InitialDelayMs: 0,
		Scripted: []ScriptedWave{
			{Score: 0, Enemies: []string{types.EnemyNameBasic}},
			{Score: 1, Enemies: []string{types.EnemyNameSwirl, types.EnemyNameTp}},
			{Score: 2, Enemies: []string{types.EnemyNameScared, types.EnemyNameTp}},
			{Score: 3, Enemies: []string{types.EnemyNameScared, types.EnemyNameTp}},
		},
		Tiers: []SpawnTier{
			{BelowScore: 16, Count: 2},
			{BelowScore: 64, Count: 3},
		},
		DefaultCount: 4,
		Bands: []WeightedBand{
			{Enemies: []string{types.EnemyNameWiz}, Weight: 1},
			{Enemies: []string{types.EnemyNameWaiting}, Weight: 1},
			{Enemies: []string{types.EnemyNameGreyGoo}, Weight: 1},
			{Enemies: []string{types.EnemyNameScared}, Weight: 1},
			{Enemies: []string{types.EnemyNameSwirl}, Weight: 1},
			{Enemies: []string{types.EnemyNameTp}, Weight: 1},
			{Enemies: []string{types.EnemyNameBasic, types.EnemyNameBasic}, Weight: 1},
		},
	}
}

// LoadSpawnRules 从 YAML 文件加载敌人生成规则配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file: %w", err)
	}

	var config SpawnRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	return &config, nil
}

// LoadSpawnRulesOrDefault 加载出怪规则，路径为空或加载失败时返回默认规则
func LoadSpawnRulesOrDefault(path string) *SpawnRulesConfig {
	if path == "" {
		return DefaultSpawnRules()
	}
	rules, err := LoadSpawnRules(path)
	if err != nil {
		log.Printf("[Config] %v (using defaults)", err)
		return DefaultSpawnRules()
	}
	log.Printf("[Config] Loaded spawn rules: %s", path)
	return rules
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if config.IntervalMs <= 0 {
		return fmt.Errorf("intervalMs must be > 0, got %.1f", config.IntervalMs)
	}
	if config.InitialDelayMs < 0 {
		return fmt.Errorf("initialDelayMs must be >= 0, got %.1f", config.InitialDelayMs)
	}

	for _, wave := range config.Scripted {
		if wave.Score < 0 {
			return fmt.Errorf("scripted wave score must be >= 0, got %d", wave.Score)
		}
		if err := validateEnemyNames(wave.Enemies); err != nil {
			return fmt.Errorf("scripted wave for score %d: %w", wave.Score, err)
		}
	}

	// 分数段必须严格递增
	prev := -1
	for _, tier := range config.Tiers {
		if tier.BelowScore <= prev {
			return fmt.Errorf("tiers must be sorted by belowScore, got %d after %d", tier.BelowScore, prev)
		}
		if tier.Count < 1 {
			return fmt.Errorf("tier count must be >= 1, got %d for belowScore %d", tier.Count, tier.BelowScore)
		}
		prev = tier.BelowScore
	}
	if config.DefaultCount < 1 {
		return fmt.Errorf("defaultCount must be >= 1, got %d", config.DefaultCount)
	}

	if len(config.Bands) == 0 {
		return fmt.Errorf("bands cannot be empty")
	}
	for i, band := range config.Bands {
		if band.Weight <= 0 {
			return fmt.Errorf("band %d weight must be > 0, got %v", i, band.Weight)
		}
		if err := validateEnemyNames(band.Enemies); err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
	}

	return nil
}

func validateEnemyNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}
	for _, name := range names {
		t := types.ParseEnemyType(name)
		if t == types.EnemyUnknown {
			return fmt.Errorf("unknown enemy type %q", name)
		}
		if t == types.EnemyProtoBasic {
			return fmt.Errorf("enemy type %q cannot be spawned by waves", name)
		}
	}
	return nil
}

// ScriptedEnemies 返回分数对应的固定波次（如有）
func (c *SpawnRulesConfig) ScriptedEnemies(score int) ([]string, bool) {
	for _, wave := range c.Scripted {
		if wave.Score == score {
			return wave.Enemies, true
		}
	}
	return nil, false
}

// CountForScore 返回非固定波次的生成次数
func (c *SpawnRulesConfig) CountForScore(score int) int {
	for _, tier := range c.Tiers {
		if score < tier.BelowScore {
			return tier.Count
		}
	}
	return c.DefaultCount
}

// PickBand 根据 [0,1) 内的随机数选择一个区间
//
// 区间按权重累积划分：第 i 个区间覆盖
// [sum(w[0..i-1])/W, sum(w[0..i])/W)，W 为总权重。
func (c *SpawnRulesConfig) PickBand(u float64) []string {
	total := 0.0
	for _, band := range c.Bands {
		total += band.Weight
	}

	acc := 0.0
	for _, band := range c.Bands {
		acc += band.Weight
		if u < acc/total {
			return band.Enemies
		}
	}
	// 浮点误差兜底：落入最后一个区间
	return c.Bands[len(c.Bands)-1].Enemies
}
