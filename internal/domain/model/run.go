package model

import "time"

// RunState is the step an ingestion run reached.
type RunState string

const (
	RunPending     RunState = "pending"
	RunFetching    RunState = "fetching"
	RunNormalizing RunState = "normalizing"
	RunPersisting  RunState = "persisting"
	RunDone        RunState = "done"
	RunFailed      RunState = "failed"
)

type RunOutcome string

const (
	OutcomeSuccess          RunOutcome = "success"
	OutcomeRetryableFailure RunOutcome = "retryable_failure"
	OutcomeFatalFailure     RunOutcome = "fatal_failure"
)

// IngestJob asks for one ingestion run of a currency.
type IngestJob struct {
	Currency    string
	Ticker      string
	ScheduledAt time.Time
}

// RunResult is the tagged outcome of one ingestion run, including retries.
type RunResult struct {
	RunID       string     `json:"run_id"`
	Ticker      string     `json:"ticker"`
	State       RunState   `json:"state"`
	Outcome     RunOutcome `json:"outcome"`
	Attempts    int        `json:"attempts"`
	TickID      int64      `json:"tick_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  time.Time  `json:"finished_at"`
}

func (r RunResult) Succeeded() bool { return r.Outcome == OutcomeSuccess }
