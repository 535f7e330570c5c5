package game

// Scheduler 单线程的周期任务调度器
//
// 调度器不启动 goroutine：宿主循环（ebiten Update 或终端主循环）
// 每帧以当前毫秒时钟调用 Advance，到期的任务在调用方线程中同步执行。
// 任务拿到的是距上一次执行的真实时间差，而不是名义间隔。
type Scheduler struct {
	now   float64
	tasks []*TaskHandle
}

// TaskHandle 周期任务句柄
type TaskHandle struct {
	interval  float64
	nextDue   float64
	lastRun   float64
	fn        func(deltaMs float64)
	cancelled bool
}

// schedulerSlack 到期判定的容差（占间隔的比例）
// 宿主帧与任务间隔名义相等时，时钟抖动不会导致隔帧执行
const schedulerSlack = 0.25

// NewScheduler 创建调度器，时钟从 startMs 开始
func NewScheduler(startMs float64) *Scheduler {
	return &Scheduler{now: startMs}
}

// Every 注册一个每 intervalMs 执行一次的任务
// 第一次执行在一个完整间隔之后
func (s *Scheduler) Every(intervalMs float64, fn func(deltaMs float64)) *TaskHandle {
	h := &TaskHandle{
		interval: intervalMs,
		nextDue:  s.now + intervalMs,
		lastRun:  s.now,
		fn:       fn,
	}
	s.tasks = append(s.tasks, h)
	return h
}

// Advance 推进时钟到 nowMs 并执行到期任务
//
// 每个任务每次 Advance 最多执行一次；落后超过一个间隔时直接对齐到当前时间，
// 不补跑错过的执行。执行中注册的任务从下一次 Advance 开始参与调度。
//
// 返回：
//   - int: 本次执行的任务数
func (s *Scheduler) Advance(nowMs float64) int {
	if nowMs < s.now {
		nowMs = s.now
	}
	s.now = nowMs

	ran := 0
	due := append([]*TaskHandle(nil), s.tasks...)
	for _, h := range due {
		if h.cancelled || nowMs+h.interval*schedulerSlack < h.nextDue {
			continue
		}
		delta := nowMs - h.lastRun
		h.lastRun = nowMs
		h.nextDue += h.interval
		if h.nextDue <= nowMs {
			h.nextDue = nowMs + h.interval
		}
		h.fn(delta)
		ran++
	}

	s.compact()
	return ran
}

// Now 当前时钟（毫秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len 仍在调度的任务数
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.tasks {
		if !h.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, h := range s.tasks {
		if !h.cancelled {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Cancel 取消任务（可重复调用）
// 在任务自身的回调中取消也是安全的
func (h *TaskHandle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Cancelled 任务是否已取消
func (h *TaskHandle) Cancelled() bool {
	return h == nil || h.cancelled
}
