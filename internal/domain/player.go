package domain

import "time"

// Player is the shared playback clock of a room.
// A zero UpdatedAt means the clock was never updated.
type Player struct {
	VideoURL    string
	CurrentTime float64
	UpdatedAt   time.Time
}

func NewPlayer() *Player {
	return &Player{}
}

// Accept reports whether a clock update received at now passes the debounce
// window measured from the last accepted update.
func (p Player) Accept(now time.Time, window time.Duration) bool {
	if p.UpdatedAt.IsZero() {
		return true
	}

	return now.Sub(p.UpdatedAt) >= window
}

func (p *Player) Update(currentTime float64, now time.Time) {
	p.CurrentTime = currentTime
	p.UpdatedAt = now
}

func (p *Player) ChangeURL(url string) {
	p.VideoURL = url
	p.CurrentTime = 0
	p.UpdatedAt = time.Time{}
}
