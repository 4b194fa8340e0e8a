package loop

import (
	"reflect"
	"time"

	"github.com/plus3/tetrad/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames          int64
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStats struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs its systems against one session.
type Scheduler struct {
	session *tetris.Session
	cmds    *tetris.Commands
	systems []System
	stats   []*systemStats
	frames  int64
	paused  bool
}

// NewScheduler creates a scheduler for s with no systems.
func NewScheduler(s *tetris.Session) *Scheduler {
	return &Scheduler{
		session: s,
		cmds:    tetris.NewCommands(),
	}
}

// Register appends a system. Its stats are reported under its type name.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.stats = append(s.stats, &systemStats{
		name:        t.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Session returns the session the scheduler drives.
func (s *Scheduler) Session() *tetris.Session {
	return s.session
}

// Commands returns the buffer systems flush into the session. Hosts may
// push intents into it between frames.
func (s *Scheduler) Commands() *tetris.Commands {
	return s.cmds
}

// Paused reports whether gravity and autoplay are stopped.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// SetPaused stops or restarts gravity and autoplay from the next frame.
func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

// Once executes all registered systems once with the given delta time.
// Intents still buffered after the last system are applied before Once
// returns.
func (s *Scheduler) Once(dt time.Duration) {
	frame := &Frame{
		Index:     s.frames,
		DeltaTime: dt,
		Session:   s.session,
		Commands:  s.cmds,
		Paused:    s.paused,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	s.cmds.Flush(s.session)
	s.paused = frame.Paused
	s.frames++
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	out := &SchedulerStats{
		Frames:      s.frames,
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, st := range s.stats {
		var avg time.Duration
		if st.executionCount > 0 {
			avg = st.totalDuration / time.Duration(st.executionCount)
		}
		out.Systems[i] = SystemStats{
			Name:           st.name,
			ExecutionCount: st.executionCount,
			MinDuration:    st.minDuration,
			MaxDuration:    st.maxDuration,
			AvgDuration:    avg,
			LastDuration:   st.lastDuration,
			TotalDuration:  st.totalDuration,
		}
		out.TotalExecutions += st.executionCount
	}
	return out
}
