package workers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jobport/jobport/internal/events"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

// ConsistencyAuditorPool watches application lifecycle events and re-reads
// both stores to detect cross-store divergence: a row missing after apply, or
// unequal statuses after a decision. Detection only — divergence after a
// deliberate single-store delete is normal and repairs are an operator call,
// never automatic.
type ConsistencyAuditorPool struct {
	Redis    *redis.Client
	History  pgrepo.HistoryRepository
	Employer mongorepo.EmployerApplicationRepository

	NumWorkers int
	Logger     *logrus.Logger

	Stream         string
	Group          string
	ConsumerPrefix string
}

func (p *ConsistencyAuditorPool) Start(ctx context.Context) error {
	if p.Redis == nil || p.History == nil || p.Employer == nil {
		return errors.New("ConsistencyAuditorPool missing dependency: Redis/History/Employer must be set")
	}
	if p.Stream == "" {
		p.Stream = events.ApplicationStream
	}
	if p.Group == "" {
		p.Group = "consistency-auditors"
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "a"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}

	_ = p.Redis.XGroupCreateMkStream(ctx, p.Stream, p.Group, "0").Err() // ignore BUSYGROUP

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

func (p *ConsistencyAuditorPool) runConsumer(ctx context.Context, consumer string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    p.Group,
			Consumer: consumer,
			Streams:  []string{p.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()

		if err != nil {
			if err == redis.Nil {
				continue
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				p.handleMsg(ctx, msg)
				_ = p.Redis.XAck(ctx, p.Stream, p.Group, msg.ID).Err()
			}
		}
	}
}

func (p *ConsistencyAuditorPool) handleMsg(ctx context.Context, msg redis.XMessage) {
	getStr := func(k string) string {
		v, ok := msg.Values[k]
		if !ok || v == nil {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	evType := getStr("type")
	jobID := getStr("job_id")
	applicantID := getStr("applicant_id")
	if jobID == "" || applicantID == "" {
		return
	}

	entry := p.Logger.WithFields(logrus.Fields{
		"event_type":     evType,
		"application_id": getStr("application_id"),
		"job_id":         jobID,
		"applicant_id":   applicantID,
	})

	empRow, empErr := p.Employer.GetByJobApplicant(ctx, jobID, applicantID)
	histRow, histErr := p.History.GetByJobApplicant(ctx, jobID, applicantID)

	empMissing := errors.Is(empErr, utils.ErrNotFound)
	histMissing := errors.Is(histErr, utils.ErrNotFound)
	if (empErr != nil && !empMissing) || (histErr != nil && !histMissing) {
		entry.Warn("audit read failed; skipping")
		return
	}

	switch evType {
	case events.TypeApplied:
		// Both rows must exist right after a successful apply; one missing
		// means the second write was lost mid-request.
		if empMissing != histMissing {
			entry.WithFields(logrus.Fields{
				"employer_row_present": !empMissing,
				"history_row_present":  !histMissing,
			}).Warn("partial apply detected: one store is missing its row")
		}

	case events.TypeDecided:
		if empMissing || histMissing {
			// A deleted row is a legitimate post-decision state.
			entry.Debug("decision audit skipped: row deleted")
			return
		}
		if empRow.Status != histRow.Status {
			entry.WithFields(logrus.Fields{
				"employer_status": empRow.Status,
				"history_status":  histRow.Status,
			}).Warn("status divergence between stores")
		}
	}
}
