// internal/event/event.go
package event

// EventType идентифицирует тип события строковым именем.
type EventType string

// Event несёт тип и произвольную полезную нагрузку.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронная шина событий партии: системы подписываются на
// интересующие типы, игра публикует из своего Update. Доставка идёт в
// порядке подписки, в том же кадре.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe добавляет подписчика на события типа eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает первое вхождение подписчика для данного типа.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	for i, l := range subs {
		if l == listener {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch синхронно доставляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
}
