package svc

import (
	"context"

	"TrendZone/app/common/consts/biz"
	"TrendZone/app/common/middleware"
	"TrendZone/app/common/snowflake"
	"TrendZone/app/dal/activity"
	"TrendZone/app/dal/cart"
	"TrendZone/app/dal/coupon"
	"TrendZone/app/dal/product"
	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/clerk"
	"TrendZone/app/services/clerk/internal/agent/haggle"
	"TrendZone/app/services/clerk/internal/agent/state"
	"TrendZone/app/services/clerk/internal/config"
	"TrendZone/app/services/clerk/internal/mq"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	IdentityMiddleware rest.Middleware

	Clerk *clerk.Clerk

	CouponsModel    coupon.CouponsModel
	ActivitiesModel activity.ActivitiesModel

	AsynqClient *asynq.Client
	Producer    *mq.Producer
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	conn := sqlx.NewMysql(c.Mysql.DataSource)
	productsModel := product.NewProductsModel(conn, c.CacheRedis)
	couponsModel := coupon.NewCouponsModel(conn, c.CacheRedis)
	cartModel := cart.NewCartItemsModel(conn, c.CacheRedis)
	activitiesModel := activity.NewActivitiesModel(conn, c.CacheRedis)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Asynq.Addr,
		Password: c.Asynq.Password,
		DB:       c.Asynq.DB,
	})

	var storeOpts []catalog.StoreOption
	if len(c.Elasticsearch.Addresses) > 0 {
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: c.Elasticsearch.Addresses,
		})
		if err != nil {
			logx.Errorw("elasticsearch client init failed, text search uses sql only",
				logx.Field("err", err))
		} else {
			storeOpts = append(storeOpts, catalog.WithElasticsearch(esClient, c.Elasticsearch.Index))
		}
	}
	store := catalog.NewStore(productsModel, storeOpts...)
	inventory := catalog.NewInventory(store, biz.InventoryCacheTTL)

	chatModel := newChatModel(c)

	var producer *mq.Producer
	deps := clerk.Deps{
		Sessions:  state.NewSessions(biz.SessionTTL),
		Catalog:   store,
		Inventory: inventory,
		Cart:      clerk.NewCart(cartModel),
		Haggler:   haggle.NewEvaluator(chatModel, couponsModel, asynqClient),
		Activity:  activitiesModel,
		ChatModel: chatModel,
	}
	if len(c.Kafka.Brokers) > 0 {
		producer = mq.NewProducer(c.Kafka.Brokers, c.Kafka.Topic)
		deps.Publisher = producer
	}

	return &ServiceContext{
		Config:             c,
		IdentityMiddleware: middleware.NewIdentityMiddleware(c.JwtSecret).Handle,
		Clerk:              clerk.New(deps),
		CouponsModel:       couponsModel,
		ActivitiesModel:    activitiesModel,
		AsynqClient:        asynqClient,
		Producer:           producer,
	}
}

// newChatModel builds the ark chat model when one is configured. Returning
// an untyped nil keeps the agent fully rule-based without special casing.
func newChatModel(c config.Config) model.BaseChatModel {
	if c.ChatModel.ApiKey == "" || c.ChatModel.Model == "" {
		logx.Info("chat model not configured, clerk runs rule-based")
		return nil
	}
	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		APIKey:  c.ChatModel.ApiKey,
		Model:   c.ChatModel.Model,
		BaseURL: c.ChatModel.BaseUrl,
	})
	if err != nil {
		logx.Errorw("chat model init failed, clerk runs rule-based",
			logx.Field("err", err))
		return nil
	}
	return cm
}
