package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"pizza/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRelayer struct{ mock.Mock }

func (m *MockOutboxRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (f fakeJob) Name() string { return f.name }
func (f fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}
func (f fakeJob) Stop() { *f.log = append(*f.log, "stop "+f.name) }

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOutboxRelayJob_Run_UsesDefaultBatch(t *testing.T) {
	var buf bytes.Buffer
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.BatchSize() == commands.DefaultRelayBatchSize
	})).Return(3, nil).Once()

	job := NewOutboxRelayJob(relayer, testLogger(&buf))
	job.run(t.Context())

	relayer.AssertExpectations(t)
	assert.Contains(t, buf.String(), `"count":3`)
	assert.Contains(t, buf.String(), `"component":"outbox_relay_job"`)
}

func TestOutboxRelayJob_Run_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("broker down")).Once()

	job := NewOutboxRelayJob(relayer, testLogger(&buf))
	job.run(t.Context())

	assert.Contains(t, buf.String(), "Outbox relay job failed")
	assert.Contains(t, buf.String(), "broker down")
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	job := NewOutboxRelayJob(relayer, testLogger(&buf))
	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Outbox relay job started")
	assert.Contains(t, buf.String(), "Outbox relay job stopped")
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var buf bytes.Buffer
	var calls []string
	jm := NewJobManager(testLogger(&buf),
		fakeJob{name: "a", log: &calls},
		fakeJob{name: "b", log: &calls},
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, calls)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	var buf bytes.Buffer
	var calls []string
	jm := NewJobManager(testLogger(&buf),
		fakeJob{name: "a", log: &calls},
		fakeJob{name: "b", log: &calls, startErr: errors.New("boom")},
	)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start b")
	assert.Equal(t, []string{"start a", "stop a"}, calls)
}
