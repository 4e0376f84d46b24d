package ui

import (
	"sync"
	"time"
)

// BannerKind задаёт оформление баннера.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerInfo    BannerKind = "info"
	BannerError   BannerKind = "error"
)

// Banner — временное сообщение для пользователя.
type Banner struct {
	Text string     `json:"text"`
	Kind BannerKind `json:"kind"`
}

// bannerSlot хранит единственный видимый баннер.
// Новый баннер перезаписывает предыдущий; таймер старого не скрывает новый.
type bannerSlot struct {
	ttl time.Duration

	mu         sync.Mutex
	current    *Banner
	generation uint64
}

func newBannerSlot(ttl time.Duration) *bannerSlot {
	return &bannerSlot{ttl: ttl}
}

func (b *bannerSlot) show(text string, kind BannerKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = &Banner{Text: text, Kind: kind}
	b.generation++
	gen := b.generation

	time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.generation == gen {
			b.current = nil
		}
	})
}

func (b *bannerSlot) visible() *Banner {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return nil
	}
	cp := *b.current
	return &cp
}
