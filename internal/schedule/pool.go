// Bounded worker pool that fans query tasks out under the quota controller.

package schedule

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/time/rate"

	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
)

// Task is one remote query. The CSE source uses Role+Start (page offset);
// the network source uses Role+Experience+RemoteOnly.
type Task struct {
	Role       string
	Start      int
	Experience string
	RemoteOnly bool
}

// FetchFunc performs one task's remote call and returns its raw records.
// Implementations surface the quota error taxonomy so the pool can tell a
// skippable failure from the daily hard stop.
type FetchFunc func(ctx context.Context, t Task) ([]model.RawJob, error)

// Pool drains an ordered task list with a fixed number of workers. Each
// worker checks the shared remaining-budget counter before dequeuing and
// paces itself between tasks to stay under per-second limits independent of
// the daily cap.
type Pool struct {
	Workers int
	Pace    *rate.Limiter
	Quota   *quota.Controller
}

// NewPool builds a pool of workers pacing at one task per pause interval.
func NewPool(workers int, pace *rate.Limiter, ctrl *quota.Controller) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{Workers: workers, Pace: pace, Quota: ctrl}
}

// Run executes all tasks to completion or until the budget reaches zero,
// whichever comes first. Results are pooled; ordering across tasks is not
// meaningful. A task failing recoverably is logged and skipped; the
// daily-quota signal zeroes the shared budget so every worker drains within
// one task boundary.
func (p *Pool) Run(ctx context.Context, tasks []Task, fetch FetchFunc) []model.RawJob {
	queue := make(chan Task)
	go func() {
		defer close(queue)
		for _, t := range tasks {
			select {
			case queue <- t:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		mu      sync.Mutex
		results []model.RawJob
		wg      sync.WaitGroup
	)

	for i := 0; i < p.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				if p.Quota != nil && p.Quota.Remaining() == 0 {
					// drain without starting new tasks
					continue
				}
				if p.Pace != nil {
					if err := p.Pace.Wait(ctx); err != nil {
						return
					}
				}

				jobs, err := p.run(ctx, t, fetch)
				if err != nil {
					if errors.Is(err, quota.ErrDailyQuota) {
						log.Println("⏹️ Daily quota exceeded — stopping all workers, keeping partial results")
						continue
					}
					log.Printf("⚠️ Skipping task (role=%q start=%d exp=%q remote=%v): %v",
						t.Role, t.Start, t.Experience, t.RemoteOnly, err)
					continue
				}

				mu.Lock()
				results = append(results, jobs...)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return results
}

func (p *Pool) run(ctx context.Context, t Task, fetch FetchFunc) ([]model.RawJob, error) {
	var jobs []model.RawJob
	call := func(ctx context.Context) error {
		var err error
		jobs, err = fetch(ctx, t)
		return err
	}
	if p.Quota == nil {
		return jobs, call(ctx)
	}
	if err := p.Quota.Execute(ctx, call); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FacetedTasks builds the network source's cross product of
// role × experience-tier-including-any × remote-only-flag.
func FacetedTasks(roles, experiences []string) []Task {
	var tasks []Task
	for _, role := range roles {
		for _, exp := range append(append([]string{}, experiences...), "") {
			tasks = append(tasks, Task{Role: role, Experience: exp, RemoteOnly: false})
			tasks = append(tasks, Task{Role: role, Experience: exp, RemoteOnly: true})
		}
	}
	return tasks
}

// PagedTasks builds the CSE source's cross product of role × page-start.
func PagedTasks(roles []string, pagesPerRole, resultsPerPage int) []Task {
	var tasks []Task
	for _, role := range roles {
		for page := 0; page < pagesPerRole; page++ {
			tasks = append(tasks, Task{Role: role, Start: 1 + page*resultsPerPage})
		}
	}
	return tasks
}
