package schedule

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
)

func makeTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{Role: "Junior Developer", Start: 1 + i*10}
	}
	return tasks
}

func TestPool_RunsAllTasks(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context, task Task) ([]model.RawJob, error) {
		calls.Add(1)
		return []model.RawJob{{Position: task.Role, JobURL: "https://x.com/jobs/1"}}, nil
	}

	pool := NewPool(3, nil, quota.NewController(100))
	results := pool.Run(context.Background(), makeTasks(10), fetch)

	assert.EqualValues(t, 10, calls.Load())
	assert.Len(t, results, 10)
}

func TestPool_BudgetOneExecutesAtMostOneMoreQuery(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context, task Task) ([]model.RawJob, error) {
		calls.Add(1)
		return nil, nil
	}

	pool := NewPool(1, nil, quota.NewController(1))
	pool.Run(context.Background(), makeTasks(10), fetch)

	assert.EqualValues(t, 1, calls.Load())
}

func TestPool_ZeroBudgetIssuesZeroCalls(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context, task Task) ([]model.RawJob, error) {
		calls.Add(1)
		return nil, nil
	}

	pool := NewPool(3, nil, quota.NewController(0))
	results := pool.Run(context.Background(), makeTasks(20), fetch)

	assert.EqualValues(t, 0, calls.Load())
	assert.Empty(t, results)
}

func TestPool_DailyQuotaStopsAllWorkers(t *testing.T) {
	ctrl := quota.NewController(100)

	var calls atomic.Int64
	fetch := func(ctx context.Context, task Task) ([]model.RawJob, error) {
		if calls.Add(1) == 1 {
			return nil, quota.ClassifyHTTP(429, "quota exceeded per day")
		}
		return nil, nil
	}

	// single worker makes the stop deterministic: the first task raises the
	// daily signal, so no further task may start
	pool := NewPool(1, nil, ctrl)
	pool.Run(context.Background(), makeTasks(10), fetch)

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, 0, ctrl.Remaining())
}

func TestPool_RecoverableFailureSkipsOnlyThatTask(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context, task Task) ([]model.RawJob, error) {
		if calls.Add(1) == 1 {
			return nil, &quota.AuthError{Status: 400, Msg: "bad page"}
		}
		return []model.RawJob{{Position: task.Role}}, nil
	}

	pool := NewPool(1, nil, quota.NewController(100))
	results := pool.Run(context.Background(), makeTasks(5), fetch)

	assert.EqualValues(t, 5, calls.Load())
	assert.Len(t, results, 4)
}

func TestFacetedTasks(t *testing.T) {
	tasks := FacetedTasks([]string{"QA Engineer"}, []string{"internship", "entry level"})
	// (2 tiers + any) x 2 remote flags
	assert.Len(t, tasks, 6)

	anyCount := 0
	for _, task := range tasks {
		if task.Experience == "" {
			anyCount++
		}
	}
	assert.Equal(t, 2, anyCount)
}

func TestPagedTasks(t *testing.T) {
	tasks := PagedTasks([]string{"Junior Developer", "QA Engineer"}, 2, 10)
	assert.Len(t, tasks, 4)
	assert.Equal(t, 1, tasks[0].Start)
	assert.Equal(t, 11, tasks[1].Start)
}
