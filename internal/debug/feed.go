package debug

import (
	"sync/atomic"

	"bonfire-defense/internal/app"
)

// Feed хранит последний опубликованный снимок матча.
// Публикует только игровой цикл, читать можно из любой горутины.
type Feed struct {
	latest atomic.Pointer[app.Snapshot]
}

func NewFeed() *Feed {
	return &Feed{}
}

// Publish заменяет текущий снимок. Снимок после публикации не изменяется.
func (f *Feed) Publish(s *app.Snapshot) {
	f.latest.Store(s)
}

// Latest возвращает последний снимок или nil, если публикаций ещё не было.
func (f *Feed) Latest() *app.Snapshot {
	return f.latest.Load()
}
