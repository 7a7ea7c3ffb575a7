package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	db "github.com/cleancycle/cleancycle/db/sqlc"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const defaultAlertFillLevel = 85

// BinScheduler periodically checks dustbin fill levels and alerts operators.
type BinScheduler struct {
	cron      *cron.Cron
	store     db.Store
	hub       *websocket.Hub
	threshold int32

	mu      sync.Mutex
	alerted map[int64]bool
}

// NewBinScheduler creates the scheduler. A threshold of 0 falls back to the
// default fill level.
func NewBinScheduler(store db.Store, hub *websocket.Hub, threshold int) *BinScheduler {
	if threshold <= 0 {
		threshold = defaultAlertFillLevel
	}
	return &BinScheduler{
		cron:      cron.New(),
		store:     store,
		hub:       hub,
		threshold: int32(threshold),
		alerted:   make(map[int64]bool),
	}
}

// Start starts the scheduler (runs every 10 minutes).
func (s *BinScheduler) Start() error {
	_, err := s.cron.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.CheckFillLevels(ctx); err != nil {
			log.Error().Err(err).Msg("failed to check dustbin fill levels")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Int32("threshold", s.threshold).Msg("dustbin monitor started (every 10 minutes)")

	// run once on startup
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.CheckFillLevels(ctx); err != nil {
			log.Error().Err(err).Msg("failed to run initial dustbin check")
		}
	}()

	return nil
}

// Stop stops the scheduler.
func (s *BinScheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("dustbin monitor stopped")
}

// CheckFillLevels alerts operators about bins at or above the threshold.
// Each bin is alerted once until its fill level drops back below the
// threshold, so repeated runs do not spam the dispatch desk.
func (s *BinScheduler) CheckFillLevels(ctx context.Context) error {
	bins, err := s.store.ListOverfilledDustbins(ctx, s.threshold)
	if err != nil {
		return err
	}

	overfilled := make(map[int64]bool, len(bins))
	for _, bin := range bins {
		overfilled[bin.ID] = true
		if s.markAlerted(bin.ID) {
			continue
		}
		s.alertBin(bin)
	}

	s.clearRecovered(overfilled)
	return nil
}

func (s *BinScheduler) alertBin(bin db.Dustbin) {
	level := websocket.AlertLevelWarning
	if bin.FillLevel >= 95 {
		level = websocket.AlertLevelCritical
	}

	s.hub.SendAlert(websocket.EventBinAlert, websocket.AlertData{
		Level:     level,
		Title:     "Dustbin needs emptying",
		Message:   fmt.Sprintf("%s (%s) is at %d%% capacity", bin.Label, bin.Area, bin.FillLevel),
		RelatedID: bin.ID,
		Extra: map[string]interface{}{
			"fill_level": bin.FillLevel,
			"longitude":  bin.Longitude,
			"latitude":   bin.Latitude,
		},
	})
}

// markAlerted records the bin as alerted and reports whether it already was.
func (s *BinScheduler) markAlerted(binID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alerted[binID] {
		return true
	}
	s.alerted[binID] = true
	return false
}

// clearRecovered forgets bins that dropped back below the threshold so the
// next overflow raises a fresh alert.
func (s *BinScheduler) clearRecovered(overfilled map[int64]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.alerted {
		if !overfilled[id] {
			delete(s.alerted, id)
		}
	}
}
