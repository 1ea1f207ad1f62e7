package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	newGameCreatedCounter prometheus.Counter
	roundStartedCounter   prometheus.Counter
	roundResolvedCounter  prometheus.Counter
	bankruptcyCounter     prometheus.Counter
	activePlayersGauge    prometheus.Gauge
}

func (m *metrics) NewGameCreated() {
	m.newGameCreatedCounter.Inc()
}

func (m *metrics) RoundStarted() {
	m.roundStartedCounter.Inc()
}

func (m *metrics) RoundResolved() {
	m.roundResolvedCounter.Inc()
}

func (m *metrics) PlayerWentBankrupt() {
	m.bankruptcyCounter.Inc()
}

func (m *metrics) SetActivePlayersCount(count int) {
	m.activePlayersGauge.Set(float64(count))
}

var Metrics = &metrics{
	newGameCreatedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "new_games_created_total",
		Help: "Total number of new hilo games created",
	}),
	roundStartedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "rounds_started_total",
		Help: "Total number of rounds started",
	}),
	roundResolvedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "rounds_resolved_total",
		Help: "Total number of rounds resolved",
	}),
	bankruptcyCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_bankruptcies_total",
		Help: "Total number of times a player lost their entire balance",
	}),
	activePlayersGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_players_count",
		Help: "Count of players with a round in flight",
	}),
}
