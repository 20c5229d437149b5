package transition

import (
	"log"
	"slices"
	"sort"
	"time"
)

// Clock 单调时钟
type Clock interface {
	Now() time.Duration
}

// scheduledStep 已排队等待触发的步骤
type scheduledStep struct {
	due      time.Duration
	seq      uint64
	timeline string
	step     Step
}

// Scheduler 单线程时间轴执行器
//
// 时间只由 Advance 推进，步骤按 (触发时间, 入队序号) 排序依次执行，
// 同一时刻的步骤保持构建顺序。同一时间轴的步骤绝不会并发执行。
// 不提供取消：时间轴一旦排入，只能执行到最后一步。
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   []scheduledStep
	running bool
	fired   uint64
}

// NewScheduler 创建时钟为 0 的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: make([]scheduledStep, 0, 16),
	}
}

// Now 返回调度器的当前时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未触发的步骤数（不含尚未入队的嵌套步骤）
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Idle 没有待触发的步骤时返回 true
func (s *Scheduler) Idle() bool {
	return len(s.queue) == 0
}

// Fired 返回累计已触发的步骤数
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// NextDue 返回下一个步骤的触发时间
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Schedule 将时间轴的全部步骤以当前时间为起点排入队列
func (s *Scheduler) Schedule(tl Timeline) {
	start := s.now
	for _, step := range tl.Steps {
		s.enqueue(tl.Name, start+step.Offset, step)
	}
	log.Printf("[Scheduler] Scheduled %s: %d steps, start=%v, end=%v",
		tl.Name, len(tl.Steps), start, start+tl.Duration())
}

// Advance 推进时钟并触发所有到期的步骤
//
// 参数：
//   - dt: 推进的时长，负值视为 0
//
// 返回：
//   - int: 本次触发的步骤数
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	// 步骤回调中再次推进时钟时不重入：新排入的到期步骤由外层循环继续执行
	if s.running {
		return 0
	}
	s.running = true
	defer func() { s.running = false }()

	count := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		next := s.queue[0]
		s.queue = s.queue[1:]

		s.now = next.due
		s.fire(next)
		count++
	}

	s.now = target
	return count
}

// RunUntilIdle 逐个跳到下一个触发时间，直到队列为空
//
// 用于测试和 neonctl timeline 的离线演算。
// 在步骤回调中调用时与 Advance 一样不重入，直接返回 0。
func (s *Scheduler) RunUntilIdle() int {
	if s.running {
		return 0
	}
	count := 0
	for {
		due, ok := s.NextDue()
		if !ok {
			return count
		}
		count += s.Advance(due - s.now)
	}
}

// fire 执行步骤并把嵌套步骤以本步骤的触发时间为基准排入队列
func (s *Scheduler) fire(item scheduledStep) {
	s.fired++
	log.Printf("[Scheduler] %s: %s @ %v", item.timeline, item.step.Name, s.now)
	if item.step.Action != nil {
		item.step.Action()
	}
	for _, nested := range item.step.Nested {
		s.enqueue(item.timeline, s.now+nested.Offset, nested)
	}
}

// enqueue 按 (due, seq) 有序插入
func (s *Scheduler) enqueue(timeline string, due time.Duration, step Step) {
	item := scheduledStep{
		due:      due,
		seq:      s.seq,
		timeline: timeline,
		step:     step,
	}
	s.seq++

	// seq 单调递增，同一 due 的新步骤总是排在已有步骤之后
	i := sort.Search(len(s.queue), func(i int) bool {
		return s.queue[i].due > due
	})
	s.queue = slices.Insert(s.queue, i, item)
}
