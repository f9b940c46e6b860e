package site

import "time"

var HeroWords = []string{"marca", "tienda", "negocio", "empresa"}

const HeroInterval = 2500 * time.Millisecond

// HeroRotator picks the hero word for a moment in time, counting from start.
type HeroRotator struct {
	words    []string
	interval time.Duration
	start    time.Time
}

func NewHeroRotator(start time.Time) *HeroRotator {
	return &HeroRotator{words: HeroWords, interval: HeroInterval, start: start}
}

func (h *HeroRotator) Index(now time.Time) int {
	elapsed := now.Sub(h.start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/h.interval) % len(h.words)
}

func (h *HeroRotator) Word(now time.Time) string {
	return h.words[h.Index(now)]
}

func (h *HeroRotator) Words() []string { return h.words }

func (h *HeroRotator) IntervalMillis() int64 { return h.interval.Milliseconds() }
