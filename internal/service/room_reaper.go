package service

import (
	"context"
	"time"

	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/repository"
)

// RoomReaperService closes WAITING and ACTIVE rooms nobody has touched for idleTTL.
type RoomReaperService struct {
	rooms   repository.Rooms
	idleTTL time.Duration
	log     *logger.Logger
	now     func() time.Time
}

func NewRoomReaperService(rooms repository.Rooms, idleTTL time.Duration, log *logger.Logger) *RoomReaperService {
	return &RoomReaperService{
		rooms:   rooms,
		idleTTL: idleTTL,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *RoomReaperService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 || s.idleTTL <= 0 {
		s.log.Infow("room reaper disabled", "tick", tick, "idle_ttl", s.idleTTL)
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.ReapOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warnw("reap idle rooms", "err", err)
				continue
			}
			if n > 0 {
				s.log.Infow("closed idle rooms", "count", n)
			}
		}
	}
}

// ReapOnce closes every open room idle longer than idleTTL and returns how many it closed.
func (s *RoomReaperService) ReapOnce(ctx context.Context) (int64, error) {
	now := s.now()
	return s.rooms.CloseIdle(ctx, now.Add(-s.idleTTL), now)
}
