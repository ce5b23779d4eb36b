package CronJobs

import (
	"fmt"
	"log"

	"Garage/Models"
	"Garage/Notifications"

	"github.com/robfig/cron/v3"
)

// StockSweeper runs the daily low-stock sweep over the inventory. It
// catches items whose quantity drifted below the reorder threshold
// outside the invoice flow, e.g. through manual inventory edits.
type StockSweeper struct {
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewStockSweeper creates a new stock sweeper with the given configuration
func NewStockSweeper(runImmediately bool) *StockSweeper {
	return &StockSweeper{
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start initiates the stock sweeper cron job
func (s *StockSweeper) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 7 * * *", func() {
		log.Println("Running scheduled daily low-stock sweep")
		s.runSweep()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Low-stock sweep scheduler started - will run daily at 7:00 AM")

	if s.runImmediately {
		log.Println("Running initial low-stock sweep")
		s.runSweep()
	}

	return nil
}

// Stop terminates the stock sweeper
func (s *StockSweeper) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Low-stock sweep scheduler stopped")
	}
}

// UpdateSchedule changes the schedule of the stock sweeper
// Format: "0 0 7 * * *" = At 07:00:00 AM every day
func (s *StockSweeper) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled low-stock sweep")
		s.runSweep()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Low-stock sweep schedule updated to: %s\n", schedule)
	return nil
}

// RunManualSweep executes a manual low-stock sweep
func (s *StockSweeper) RunManualSweep() {
	log.Println("Running manual low-stock sweep")
	s.runSweep()
}

func (s *StockSweeper) runSweep() {
	if err := Notifications.SweepLowStock(Models.DB); err != nil {
		log.Printf("Error in low-stock sweep: %v\n", err)
		return
	}
	log.Println("Successfully completed low-stock sweep")
}
