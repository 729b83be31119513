package launch

import (
	"errors"
	"fmt"
	"sync"
)

// opLog records terminate and spawn calls in order.
type opLog struct {
	mu  sync.Mutex
	ops []string
}

func (l *opLog) add(op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, op)
}

func (l *opLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ops...)
}

type fakeProcess struct {
	pid          int
	log          *opLog
	terminateErr error

	mu         sync.Mutex
	terminates int
	done       chan struct{}
	closed     bool
}

func (p *fakeProcess) Pid() int { return p.pid }

func (p *fakeProcess) Terminate() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminates++
	p.log.add(fmt.Sprintf("terminate %d", p.pid))
	if p.terminateErr != nil {
		return p.terminateErr
	}
	p.exit()
	return nil
}

// exit closes Done; callers hold mu.
func (p *fakeProcess) exit() {
	if !p.closed {
		close(p.done)
		p.closed = true
	}
}

func (p *fakeProcess) Done() <-chan struct{} { return p.done }

func (p *fakeProcess) ExitErr() error { return nil }

func (p *fakeProcess) terminateCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terminates
}

type spawnCall struct {
	executable string
	args       []string
}

type fakeSpawner struct {
	log      *opLog
	nextPID  int
	spawnErr error

	mu    sync.Mutex
	calls []spawnCall
	procs []*fakeProcess
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{log: &opLog{}, nextPID: 100}
}

func (f *fakeSpawner) Spawn(executable string, args []string) (Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, spawnCall{executable: executable, args: args})
	if f.spawnErr != nil {
		f.log.add("spawn failed")
		return nil, f.spawnErr
	}
	f.nextPID++
	p := &fakeProcess{pid: f.nextPID, log: f.log, done: make(chan struct{})}
	f.procs = append(f.procs, p)
	f.log.add(fmt.Sprintf("spawn %d", p.pid))
	return p, nil
}

var errPermission = errors.New("operation not permitted")
