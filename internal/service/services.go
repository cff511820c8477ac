package service

import (
	redisx "eventra/internal/redis"
	postgres "eventra/internal/repository/postgres"
	redis "eventra/internal/repository/redis"
	"eventra/internal/service/directory"
	"eventra/internal/service/events"
	"eventra/internal/service/feedback"
	"eventra/internal/service/registration"
	"eventra/internal/service/resources"
)

type Services struct {
	Registration *registration.Service
	Resources    *resources.Service
	Events       *events.Service
	Directory    *directory.Service
	Feedback     *feedback.Service
}

type Config struct {
	Events   events.Config
	Feedback feedback.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redisx.EventsPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Registration: registration.New(store, cache, pubsub, limiter),
		Resources:    resources.New(store),
		Events:       events.New(store, cache, cfg.Events),
		Directory:    directory.New(store),
		Feedback:     feedback.New(store, cache, cfg.Feedback),
	}
}
