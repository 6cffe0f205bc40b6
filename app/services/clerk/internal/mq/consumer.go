package mq

import (
	"context"
	"database/sql"
	"encoding/json"

	"TrendZone/app/common/snowflake"
	"TrendZone/app/dal/activity"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// ActivityConsumer drains the shop-activity topic into the activities
// table, which feeds session recommendations.
type ActivityConsumer struct {
	reader     *kafka.Reader
	activities activity.ActivitiesModel
}

func NewActivityConsumer(brokers []string, topic, groupId string, activities activity.ActivitiesModel) *ActivityConsumer {
	return &ActivityConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupId,
		}),
		activities: activities,
	}
}

// Run consumes until the context is canceled. Malformed messages are
// logged and committed so they don't wedge the partition.
func (c *ActivityConsumer) Run(ctx context.Context) error {
	defer c.reader.Close()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			logx.WithContext(ctx).Errorw("activity event rejected",
				logx.Field("offset", msg.Offset), logx.Field("err", err))
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (c *ActivityConsumer) handle(ctx context.Context, payload []byte) error {
	var ev ActivityEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	_, err := c.activities.Insert(ctx, &activity.Activities{
		Id:        snowflake.Next(),
		SessionId: ev.SessionId,
		UserId:    sql.NullInt64{Int64: ev.UserId, Valid: ev.UserId > 0},
		Kind:      ev.Kind,
		ProductId: sql.NullString{String: ev.ProductId, Valid: ev.ProductId != ""},
		Query:     sql.NullString{String: ev.Query, Valid: ev.Query != ""},
		Category:  sql.NullString{String: ev.Category, Valid: ev.Category != ""},
	})
	return err
}
