package view

import "time"

// tween 单个数值的补间
//
// set 从当前显示值出发，过渡时长为 0 时立即到达目标值。
type tween struct {
	from     float64
	to       float64
	elapsed  time.Duration
	duration time.Duration
}

func (t *tween) set(v float64, fade time.Duration) {
	t.from = t.value()
	t.to = v
	t.elapsed = 0
	t.duration = fade
	if fade <= 0 {
		t.from = v
		t.duration = 0
	}
}

func (t *tween) update(dt time.Duration) {
	if t.done() {
		return
	}
	t.elapsed += dt
}

func (t *tween) done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}

func (t *tween) value() float64 {
	if t.done() {
		return t.to
	}
	p := float64(t.elapsed) / float64(t.duration)
	return lerp(t.from, t.to, easeInOutCubic(p))
}

func (t *tween) target() float64 {
	return t.to
}
