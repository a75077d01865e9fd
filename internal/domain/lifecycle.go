package domain

import "time"

// State - состояние мягкого удаления
type State int

const (
	StateActive State = iota
	StateClosed
)

func (s State) String() string {
	if s == StateClosed {
		return "closed"
	}
	return "active"
}

// Lifecycle - вариант Active | Closed{At}. Нулевое значение - Active.
type Lifecycle struct {
	state    State
	closedAt time.Time
}

func Active() Lifecycle {
	return Lifecycle{state: StateActive}
}

func ClosedAt(at time.Time) Lifecycle {
	return Lifecycle{state: StateClosed, closedAt: at}
}

// LifecycleFromDateDeleted восстанавливает состояние из колонки date_deleted
func LifecycleFromDateDeleted(dateDeleted *time.Time) Lifecycle {
	if dateDeleted == nil {
		return Active()
	}
	return ClosedAt(*dateDeleted)
}

func (l Lifecycle) State() State {
	return l.state
}

func (l Lifecycle) IsActive() bool {
	return l.state == StateActive
}

func (l Lifecycle) IsClosed() bool {
	return l.state == StateClosed
}

// ClosedAt возвращает момент закрытия, если запись закрыта
func (l Lifecycle) ClosedAt() (time.Time, bool) {
	if l.state != StateClosed {
		return time.Time{}, false
	}
	return l.closedAt, true
}

// DateDeleted - значение для колонки date_deleted
func (l Lifecycle) DateDeleted() *time.Time {
	if l.state != StateClosed {
		return nil
	}
	at := l.closedAt
	return &at
}

// close переводит Active -> Closed; alreadyClosed возвращается для закрытой записи
func (l Lifecycle) close(at time.Time, alreadyClosed error) (Lifecycle, error) {
	if l.IsClosed() {
		return l, alreadyClosed
	}
	return ClosedAt(at), nil
}

// restore переводит Closed -> Active; notClosed возвращается для активной записи
func (l Lifecycle) restore(notClosed error) (Lifecycle, error) {
	if l.IsActive() {
		return l, notClosed
	}
	return Active(), nil
}
