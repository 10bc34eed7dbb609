// Package anywork runs small jobs on a fixed set of goroutines. A job fails
// by panicking; failures are counted and reported by Sync.
package anywork

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/master-bogdan/termfolio/common"
)

type Work func()
type WorkQueue chan Work

type Group struct {
	pending   sync.WaitGroup
	pipeline  WorkQueue
	mu        sync.Mutex
	failures  []string
	once      sync.Once
	headcount int
}

// New starts a group with the given number of members; zero or less means
// one per CPU.
func New(workers int) *Group {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	group := &Group{
		pipeline:  make(WorkQueue, workers*16),
		headcount: workers,
	}
	for identity := 0; identity < workers; identity++ {
		go group.member(identity)
	}
	return group
}

func (it *Group) catcher(title string, identity int) {
	catch := recover()
	if catch != nil {
		message := fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch)
		common.Debug("%s", message)
		it.mu.Lock()
		it.failures = append(it.failures, message)
		it.mu.Unlock()
	}
}

func (it *Group) process(fun Work, identity int) {
	defer it.pending.Done()
	defer it.catcher("process", identity)
	fun()
}

func (it *Group) member(identity int) {
	for work := range it.pipeline {
		it.process(work, identity)
	}
}

func (it *Group) Scale() int {
	return it.headcount
}

func (it *Group) Backlog(todo Work) {
	if todo != nil {
		it.pending.Add(1)
		it.pipeline <- todo
	}
}

// Sync waits for everything in the backlog and reports failures since the
// previous Sync.
func (it *Group) Sync() error {
	it.pending.Wait()
	it.mu.Lock()
	failures := it.failures
	it.failures = nil
	it.mu.Unlock()
	if len(failures) > 0 {
		return fmt.Errorf("There has been %d failures: %s", len(failures), strings.Join(failures, "; "))
	}
	return nil
}

// Close stops the members; the group cannot be used afterwards.
func (it *Group) Close() {
	it.once.Do(func() {
		close(it.pipeline)
	})
}

// OnErrPanic turns an error into a job failure.
func OnErrPanic(err error) {
	if err != nil {
		panic(err)
	}
}
