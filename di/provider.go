package di

import (
	"agendador/config"
	"agendador/internal/domains/notification/service"
	"agendador/internal/domains/notification/sink"
	roomRepository "agendador/internal/domains/room/repository"
	userRepository "agendador/internal/domains/user/repository"
	"agendador/shared/broadcast"
)

func provideHub(cfg *config.Config) broadcast.Hub {
	return broadcast.New(cfg.Broadcast.ObserverBuffer)
}

func provideDispatcher(cfg *config.Config, users userRepository.User, rooms roomRepository.Room, s sink.Sink) service.Dispatcher {
	return service.New(cfg, users, rooms, s)
}
