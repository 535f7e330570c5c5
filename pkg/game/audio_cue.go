package game

// 音效名称
const (
	SoundEnemySpawn = "enemySpawn"
	SoundExplosion  = "explosion"
	SoundGameBegin  = "gameBegin"
	SoundGameOver   = "gameover"
	SoundWiz        = "wiz"
	SoundGreyGoo    = "greyGoo"
)

// 循环音轨名称
const (
	LoopEngine = "engine"
	LoopSong   = "song"
)

// AudioCue 按名称触发音效的接收端
//
// 调用方不关心播放结果：缺少资源、静音或设备不可用时实现应静默忽略。
type AudioCue interface {
	// Play 播放一次音效
	Play(name string)
	// Loop 开始或停止循环音轨
	Loop(name string, on bool)
}

// NopAudio 不发声的 AudioCue
type NopAudio struct{}

func (NopAudio) Play(string)       {}
func (NopAudio) Loop(string, bool) {}

// AllSounds 所有音效与音轨名称，供后端预加载
func AllSounds() []string {
	return []string{
		SoundEnemySpawn, SoundExplosion, SoundGameBegin, SoundGameOver,
		SoundWiz, SoundGreyGoo, LoopEngine, LoopSong,
	}
}
