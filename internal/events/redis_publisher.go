package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Stream consumed by the consistency auditor worker pool.
	ApplicationStream = "applications:events"
	// Pub/sub channel prefix for per-applicant status notifications.
	notifyPrefix = "notify:applicant:"
)

func NotifyChannel(applicantID string) string { return notifyPrefix + applicantID }

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	return p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: ApplicationStream,
		Values: map[string]any{
			"type":           ev.Type,
			"application_id": ev.ApplicationID,
			"job_id":         ev.JobID,
			"applicant_id":   ev.ApplicantID,
			"status":         string(ev.Status),
			"at":             ev.At.Format(time.RFC3339Nano),
		},
	}).Err()
}

func (p *RedisPublisher) NotifyApplicant(ctx context.Context, applicantID string, ev Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, NotifyChannel(applicantID), b).Err()
}
