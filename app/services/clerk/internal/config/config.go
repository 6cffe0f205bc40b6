package config

import (
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/rest"
)

type MysqlConf struct {
	DataSource string
}

type KafkaConf struct {
	Brokers []string `json:",optional"`
	Topic   string   `json:",default=shop-activity"`
	Group   string   `json:",default=clerk-activity"`
}

type AsynqConf struct {
	Addr     string
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
	// Workers for the task server started alongside the api.
	Concurrency int `json:",default=4"`
}

type EsConf struct {
	Addresses []string `json:",optional"`
	Index     string   `json:",default=products"`
}

type ChatModelConf struct {
	ApiKey  string `json:",optional"`
	Model   string `json:",optional"`
	BaseUrl string `json:",optional"`
}

type Config struct {
	rest.RestConf

	Mysql         MysqlConf
	CacheRedis    cache.CacheConf
	Kafka         KafkaConf
	Asynq         AsynqConf
	Elasticsearch EsConf        `json:",optional"`
	ChatModel     ChatModelConf `json:",optional"`

	JwtSecret     string `json:",optional"`
	SnowflakeNode int64  `json:",optional"`
}
