package tetris

// Observer receives session events. Hooks run synchronously inside the
// session operation that caused them and must not call back into the
// session.
type Observer interface {
	OnSpawn(p Piece)
	OnLock(p Piece)
	OnLinesCleared(rows []int)
	OnHold(held Variant)
	OnStateChange(from, to State)
	OnGameOver(stats Stats)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnSpawn(Piece) {}
func (NopObserver) OnLock(Piece) {}
func (NopObserver) OnLinesCleared([]int) {}
func (NopObserver) OnHold(Variant) {}
func (NopObserver) OnStateChange(State, State) {}
func (NopObserver) OnGameOver(Stats) {}

// ObserverFuncs adapts a set of optional functions to the Observer
// interface. Nil fields are skipped.
type ObserverFuncs struct {
	Spawn        func(p Piece)
	Lock         func(p Piece)
	LinesCleared func(rows []int)
	Hold         func(held Variant)
	StateChange  func(from, to State)
	GameOver     func(stats Stats)
}

func (o ObserverFuncs) OnSpawn(p Piece) {
	if o.Spawn != nil {
		o.Spawn(p)
	}
}

func (o ObserverFuncs) OnLock(p Piece) {
	if o.Lock != nil {
		o.Lock(p)
	}
}

func (o ObserverFuncs) OnLinesCleared(rows []int) {
	if o.LinesCleared != nil {
		o.LinesCleared(rows)
	}
}

func (o ObserverFuncs) OnHold(held Variant) {
	if o.Hold != nil {
		o.Hold(held)
	}
}

func (o ObserverFuncs) OnStateChange(from, to State) {
	if o.StateChange != nil {
		o.StateChange(from, to)
	}
}

func (o ObserverFuncs) OnGameOver(stats Stats) {
	if o.GameOver != nil {
		o.GameOver(stats)
	}
}
