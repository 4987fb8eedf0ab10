package main

import (
	"github.com/sirupsen/logrus"

	"leadbook/internal/ports"
	"leadbook/internal/seed"
	"leadbook/internal/services/accounts"
	"leadbook/internal/services/activity"
	"leadbook/internal/services/leads"
	"leadbook/internal/services/notes"
	"leadbook/internal/services/stats"
)

// services is the full set of core services over one store.
type services struct {
	store    ports.Store
	activity *activity.Logger
	leads    *leads.Service
	notes    *notes.Service
	stats    *stats.Service
	accounts *accounts.Service
	log      logrus.FieldLogger
}

func newServices(store ports.Store, log logrus.FieldLogger, leadOpts ...leads.Option) *services {
	trail := activity.New(store, activity.WithLogger(log.WithField("component", "activity")))
	leadOpts = append([]leads.Option{leads.WithLogger(log.WithField("component", "leads"))}, leadOpts...)
	return &services{
		store:    store,
		activity: trail,
		leads:    leads.New(store, trail, leadOpts...),
		notes:    notes.New(store, trail, notes.WithLogger(log.WithField("component", "notes"))),
		stats:    stats.New(store),
		accounts: accounts.New(store, accounts.WithLogger(log.WithField("component", "accounts"))),
		log:      log,
	}
}

func (s *services) seeder() *seed.Seeder {
	return seed.New(s.store, s.leads, s.notes, s.accounts, s.log.WithField("component", "seed"))
}
