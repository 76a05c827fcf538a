package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizza/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	handler   outboxRelayer
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. Each run handles at most
// commands.DefaultRelayBatchSize messages and is bounded by a timeout.
func NewOutboxRelayJob(handler outboxRelayer, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: commands.DefaultRelayBatchSize,
		timeout:   30 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay job"
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err, "published", published)
		return
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
}
