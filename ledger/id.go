package ledger

import "time"

// idGenerator 以毫秒时间戳为基础的单调递增 ID
// 同一毫秒内连续生成时顺延，不会重复
type idGenerator struct {
	now  func() time.Time
	last int64
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe 恢复数据后推进到已有最大 ID 之后
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
