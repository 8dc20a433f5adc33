package gfx

import (
	"time"

	"github.com/gregjohnson2017/glsu/pkg/glapi"
	"github.com/gregjohnson2017/glsu/pkg/perf"
)

// TimerQuery measures GPU time between two points in the command stream
// with a pair of timestamp queries.
type TimerQuery struct {
	ctx     *Context
	queryID [2]uint32
}

// StartTimer issues the first timestamp. Queries are only allocated while
// the timer runs.
func StartTimer(ctx *Context) *TimerQuery {
	tq := &TimerQuery{ctx: ctx}
	tq.queryID[0] = ctx.fn.GenQuery()
	tq.queryID[1] = ctx.fn.GenQuery()
	ctx.fn.QueryCounter(tq.queryID[0], glapi.TIMESTAMP)
	return tq
}

// Stop issues the second timestamp, waits for the GPU to reach it, and
// records the elapsed time under key. It blocks the calling thread until
// the result is available.
func (tq *TimerQuery) Stop(key string) time.Duration {
	fn := tq.ctx.fn
	if tq.queryID[0] == 0 || tq.queryID[1] == 0 {
		tq.release()
		return 0
	}
	fn.QueryCounter(tq.queryID[1], glapi.TIMESTAMP)
	for fn.GetQueryObjecti(tq.queryID[1], glapi.QUERY_RESULT_AVAILABLE) == glapi.FALSE {
	}
	start := fn.GetQueryObjectui64(tq.queryID[0], glapi.QUERY_RESULT)
	stop := fn.GetQueryObjectui64(tq.queryID[1], glapi.QUERY_RESULT)
	elapsed := time.Duration(int64(stop - start))
	perf.RecordAverageTime(key, elapsed.Nanoseconds())
	tq.release()
	return elapsed
}

func (tq *TimerQuery) release() {
	for i, id := range tq.queryID {
		if id != 0 {
			tq.ctx.fn.DeleteQuery(id)
			tq.queryID[i] = 0
		}
	}
}
