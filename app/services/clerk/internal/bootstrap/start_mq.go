package bootstrap

import (
	"context"
	"errors"

	"TrendZone/app/services/clerk/internal/config"
	"TrendZone/app/services/clerk/internal/mq"
	"TrendZone/app/services/clerk/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

// StartMq launches the activity consumer and the delayed-task server in the
// background and returns a stop func for shutdown.
func StartMq(c config.Config, svcCtx *svc.ServiceContext) func() {
	ctx, cancel := context.WithCancel(context.Background())
	group, groupCtx := errgroup.WithContext(ctx)

	if len(c.Kafka.Brokers) > 0 {
		consumer := mq.NewActivityConsumer(c.Kafka.Brokers, c.Kafka.Topic, c.Kafka.Group, svcCtx.ActivitiesModel)
		group.Go(func() error { return consumer.Run(groupCtx) })
	} else {
		logx.Info("kafka not configured, activity consumer disabled")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: c.Asynq.Addr, Password: c.Asynq.Password, DB: c.Asynq.DB},
		asynq.Config{Concurrency: c.Asynq.Concurrency},
	)
	group.Go(func() error { return srv.Run(mq.NewServeMux(svcCtx.CouponsModel)) })

	go func() {
		if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			logx.Errorw("background workers stopped with error", logx.Field("err", err))
		}
	}()

	return func() {
		cancel()
		srv.Shutdown()
		if svcCtx.Producer != nil {
			_ = svcCtx.Producer.Close()
		}
		_ = svcCtx.AsynqClient.Close()
	}
}
