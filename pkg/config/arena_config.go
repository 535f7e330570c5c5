package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/coredefense/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SpriteSizeToRadius 由精灵边长换算碰撞半径的系数（外接圆：½·√2）
const SpriteSizeToRadius = 0.5 * math.Sqrt2

// ArenaConfig 场地与实体调参配置
//
// 所有速度单位为 像素/毫秒，所有时间单位为毫秒。
// 配置文件为可选项：文件中缺失的字段保留 DefaultArenaConfig 的默认值。
//
// 配置文件位置: data/arena.yaml
type ArenaConfig struct {
	// CanvasSize 逻辑画布边长（正方形）
	CanvasSize int `yaml:"canvasSize"`

	// OuterRadius 敌人出生圆环半径
	OuterRadius float64 `yaml:"outerRadius"`

	// InnerRadius 玩家禁入区半径
	InnerRadius float64 `yaml:"innerRadius"`

	// SpinDegreesPerSecond 场地自转角速度（度/秒）
	SpinDegreesPerSecond float64 `yaml:"spinDegreesPerSecond"`

	// TickRateHz 模拟 tick 频率
	TickRateHz float64 `yaml:"tickRateHz"`

	// Epsilon 速度平方阈值：低于该值不更新朝向、不产生尾迹
	Epsilon float64 `yaml:"epsilon"`

	// StarCount 背景星星数量
	StarCount int `yaml:"starCount"`

	Player    PlayerConfig   `yaml:"player"`
	Particles ParticleConfig `yaml:"particles"`
	Sprites   SpriteSizes    `yaml:"sprites"`
	Enemies   EnemyTuning    `yaml:"enemies"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`       // 移动速度
	StartOffset float64 `yaml:"startOffset"` // 出生点在禁入区外的额外距离（中心正下方）
}

// ParticleConfig 粒子参数
type ParticleConfig struct {
	TrailIntervalMs float64 `yaml:"trailIntervalMs"` // 尾迹粒子发射间隔
	TrailSpeed      float64 `yaml:"trailSpeed"`      // 尾迹粒子速度
	AngVelMax       float64 `yaml:"angVelMax"`       // 粒子最大角速度（弧度/毫秒）
	LifetimeMaxMs   float64 `yaml:"lifetimeMaxMs"`   // 粒子最大寿命
	ExplosionCount  int     `yaml:"explosionCount"`  // 爆炸粒子数量
	ExplosionOffset float64 `yaml:"explosionOffset"` // 爆炸粒子初始距离
	ExplosionSpeed  float64 `yaml:"explosionSpeed"`  // 爆炸粒子速度
	Size            float64 `yaml:"size"`            // 粒子边长
}

// SpriteSizes 精灵边长（决定碰撞半径）
type SpriteSizes struct {
	Player     float64 `yaml:"player"`
	Center     float64 `yaml:"center"`
	Enemy      float64 `yaml:"enemy"`
	ProtoBasic float64 `yaml:"protoBasic"`
}

// EnemyTuning 各敌人原型的参数
type EnemyTuning struct {
	RetargetIntervalMs float64 `yaml:"retargetIntervalMs"` // 定期重新瞄准的间隔

	BasicSpeed float64 `yaml:"basicSpeed"`

	WaitingSpeed     float64 `yaml:"waitingSpeed"`
	WaitingMaxWaitMs float64 `yaml:"waitingMaxWaitMs"`

	WizSpawnIntervalMs float64 `yaml:"wizSpawnIntervalMs"`

	GreyGooSpeed           float64 `yaml:"greyGooSpeed"`
	GreyGooSpawnIntervalMs float64 `yaml:"greyGooSpawnIntervalMs"`
	GreyGooSpawnsLeft      int     `yaml:"greyGooSpawnsLeft"`
	GreyGooCloneRadius     float64 `yaml:"greyGooCloneRadius"`

	ScaredRadius     float64 `yaml:"scaredRadius"`
	ScaredFleeSpeed  float64 `yaml:"scaredFleeSpeed"`
	ScaredChaseSpeed float64 `yaml:"scaredChaseSpeed"`

	SwirlTowardsSpeed float64 `yaml:"swirlTowardsSpeed"`
	SwirlPerpSpeed    float64 `yaml:"swirlPerpSpeed"`

	TpSpeed       float64 `yaml:"tpSpeed"`
	TpIntervalMs  float64 `yaml:"tpIntervalMs"`
	TpJumpTowards float64 `yaml:"tpJumpTowards"`
	TpJumpPerp    float64 `yaml:"tpJumpPerp"`

	ProtoSpeed        float64 `yaml:"protoSpeed"`
	ProtoArriveRadius float64 `yaml:"protoArriveRadius"`

	TrailSpeed float64 `yaml:"trailSpeed"` // 敌人尾迹粒子速度（ProtoBasic 固定为 0）
}

// DefaultArenaConfig 返回默认配置（与原版手感一致）
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		CanvasSize:           1200,
		OuterRadius:          500,
		InnerRadius:          50,
		SpinDegreesPerSecond: 1,
		TickRateHz:           60,
		Epsilon:              0.0001,
		StarCount:            1000,
		Player: PlayerConfig{
			Speed:       100.0 / 1000,
			StartOffset: 50,
		},
		Particles: ParticleConfig{
			TrailIntervalMs: 50,
			TrailSpeed:      300.0 / 1000,
			AngVelMax:       2.0 / 1000,
			LifetimeMaxMs:   100,
			ExplosionCount:  50,
			ExplosionOffset: 20,
			ExplosionSpeed:  300.0 / 1000,
			Size:            20,
		},
		Sprites: SpriteSizes{
			Player:     32,
			Center:     64,
			Enemy:      32,
			ProtoBasic: 20,
		},
		Enemies: EnemyTuning{
			RetargetIntervalMs:     1000.0 / 10,
			BasicSpeed:             50.0 / 1000,
			WaitingSpeed:           70.0 / 1000,
			WaitingMaxWaitMs:       20 * 1000,
			WizSpawnIntervalMs:     10 * 1000,
			GreyGooSpeed:           10.0 / 1000,
			GreyGooSpawnIntervalMs: 5 * 1000,
			GreyGooSpawnsLeft:      10,
			GreyGooCloneRadius:     50,
			ScaredRadius:           100,
			ScaredFleeSpeed:        60.0 / 1000,
			ScaredChaseSpeed:       50.0 / 1000,
			SwirlTowardsSpeed:      50.0 / 1000,
			SwirlPerpSpeed:         100.0 / 1000,
			TpSpeed:                50.0 / 1000,
			TpIntervalMs:           3 * 1000,
			TpJumpTowards:          50,
			TpJumpPerp:             100,
			ProtoSpeed:             250.0 / 1000,
			ProtoArriveRadius:      50,
			TrailSpeed:             300.0 / 1000,
		},
	}
}

// LoadArenaConfig 加载场地配置
//
// 参数:
//   - path: 配置文件路径（如 "data/arena.yaml"）
//
// 返回:
//   - *ArenaConfig: 默认值之上叠加文件内容后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	return ParseArenaConfig(data)
}

// LoadArenaConfigOrDefault 加载场地配置，路径为空或加载失败时返回默认配置
func LoadArenaConfigOrDefault(path string) *ArenaConfig {
	if path == "" {
		return DefaultArenaConfig()
	}
	cfg, err := LoadArenaConfig(path)
	if err != nil {
		log.Printf("[Config] %v (using defaults)", err)
		return DefaultArenaConfig()
	}
	log.Printf("[Config] Loaded arena config: %s", path)
	return cfg
}

// ParseArenaConfig 从 YAML 数据解析场地配置（缺失字段使用默认值）
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 画布、半径、tick 频率为正
//   - 禁入区半径小于出生圆环半径
//   - 出生圆环完全位于画布内
//   - GreyGoo 复制次数非负
func (c *ArenaConfig) Validate() error {
	if c.CanvasSize <= 0 {
		return fmt.Errorf("canvasSize must be > 0, got %d", c.CanvasSize)
	}
	if c.InnerRadius <= 0 {
		return fmt.Errorf("innerRadius must be > 0, got %.1f", c.InnerRadius)
	}
	if c.OuterRadius <= c.InnerRadius {
		return fmt.Errorf("outerRadius(%.1f) must be greater than innerRadius(%.1f)",
			c.OuterRadius, c.InnerRadius)
	}
	if c.OuterRadius > float64(c.CanvasSize)/2 {
		return fmt.Errorf("outerRadius(%.1f) does not fit in canvas of size %d",
			c.OuterRadius, c.CanvasSize)
	}
	if c.TickRateHz <= 0 {
		return fmt.Errorf("tickRateHz must be > 0, got %.1f", c.TickRateHz)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be >= 0, got %v", c.Epsilon)
	}
	if c.Enemies.GreyGooSpawnsLeft < 0 {
		return fmt.Errorf("enemies.greyGooSpawnsLeft must be >= 0, got %d", c.Enemies.GreyGooSpawnsLeft)
	}
	if c.Particles.ExplosionCount < 0 {
		return fmt.Errorf("particles.explosionCount must be >= 0, got %d", c.Particles.ExplosionCount)
	}
	return nil
}

// Center 场地中心（画布中心）
func (c *ArenaConfig) Center() utils.Vec {
	half := float64(c.CanvasSize) / 2
	return utils.V(half, half)
}

// TickIntervalMs 模拟 tick 的名义间隔
func (c *ArenaConfig) TickIntervalMs() float64 {
	return 1000 / c.TickRateHz
}

// RadiusForSize 由精灵边长计算碰撞半径
func RadiusForSize(size float64) float64 {
	return size * SpriteSizeToRadius
}
