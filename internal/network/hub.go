package network

import (
	"sync"

	"randroom/pkg/api"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - сколько кадров ждет медленный зритель, прежде чем их начнут пропускать.
const SubscriberBuffer = 16

// Broadcaster занимается только рассылкой кадров подписчикам.
// Реализует engine.FrameSink: Publish вызывается из цикла сессии и никогда не блокируется.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID зрителя -> Личный канал
	subscribers map[string]chan api.Frame

	last    api.Frame
	hasLast bool

	log *logrus.Entry
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Frame),
		log:         logger.Log.WithField("component", "broadcaster"),
	}
}

// Register создает личный канал зрителя.
// Если кадр уже есть, он сразу лежит в канале.
func (b *Broadcaster) Register(id string) chan api.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Frame, SubscriberBuffer)
	if b.hasLast {
		ch <- b.last
	}
	b.subscribers[id] = ch
	b.log.WithFields(logrus.Fields{
		"subscriber": id,
		"total":      len(b.subscribers),
	}).Info("Spectator registered")
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
		b.log.WithField("subscriber", id).Info("Spectator unregistered")
	}
}

// Publish запоминает кадр и отправляет всем.
func (b *Broadcaster) Publish(frame api.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last, b.hasLast = frame, true
	for id, ch := range b.subscribers {
		select {
		case ch <- frame:
		default:
			// Пропускаем медленных клиентов
			b.log.WithField("subscriber", id).Debug("Frame dropped")
		}
	}
}

// Last возвращает последний опубликованный кадр.
func (b *Broadcaster) Last() (api.Frame, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
