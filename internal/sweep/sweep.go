// Package sweep runs the background job that marks overdue Confirmed
// reservations as Late on a cron schedule.
package sweep

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mesa/config"
	reservationService "mesa/internal/domains/reservation/service"
)

type Sweeper struct {
	cfg          *config.Config
	reservations reservationService.Reservation
	scheduler    gocron.Scheduler
}

func New(cfg *config.Config, reservations reservationService.Reservation) *Sweeper {
	return &Sweeper{
		cfg:          cfg,
		reservations: reservations,
	}
}

// Start registers the late-reservation job and begins running it. It is a
// no-op when the sweep is disabled in configuration.
func (s *Sweeper) Start() error {
	if !s.cfg.Reservation.SweepEnable {
		log.Info().Msg("reservation sweep disabled")

		return nil
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("sweep job panicked")
				}),
			),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.cfg.Reservation.SweepCron, false),
		gocron.NewTask(s.run),
		gocron.WithName("mark-overdue-reservations-late"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	s.scheduler = scheduler
	scheduler.Start()

	log.Info().Str("cron", s.cfg.Reservation.SweepCron).Msg("reservation sweep started")

	return nil
}

// Stop shuts the scheduler down and waits for a running job to finish.
func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}

	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down sweep scheduler: %w", err)
	}

	return nil
}

func (s *Sweeper) run() {
	marked, err := s.reservations.MarkOverdueLate(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("reservation sweep failed")

		return
	}

	if marked > 0 {
		log.Info().Int("marked", marked).Msg("marked overdue reservations late")
	}
}
