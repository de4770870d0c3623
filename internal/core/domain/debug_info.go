package domain

import "time"

// DebugInfo - замер длительности одного этапа резолва, уходит в debug-логи
type DebugInfo struct {
	Event     string    `json:"event"`
	Timing    int64     `json:"timing"`
	StartTime time.Time `json:"-"`
}

func NewDebugInfo(event string) DebugInfo {
	return DebugInfo{
		Event:     event,
		StartTime: time.Now(),
	}
}

func (d *DebugInfo) Elapse() {
	d.Timing = time.Since(d.StartTime).Milliseconds()
}
