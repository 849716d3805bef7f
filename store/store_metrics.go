package store

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/serpentlabs/serpent/rules"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var storeCalls = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "serpent",
		Subsystem: "store",
		Name:      "calls",
		Help:      "Calls processed by the store.",
	},
	[]string{"method"},
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) CreateGame(ctx context.Context, g *rules.Game, frames []*rules.GameFrame) error {
	defer instrument("CreateGame")()
	return m.s.CreateGame(ctx, g, frames)
}

func (m *metrics) SetGameStatus(ctx context.Context, id, status string) error {
	defer instrument("SetGameStatus")()
	return m.s.SetGameStatus(ctx, id, status)
}

func (m *metrics) GetGame(ctx context.Context, id string) (*rules.Game, error) {
	defer instrument("GetGame")()
	return m.s.GetGame(ctx, id)
}

func (m *metrics) PushGameFrame(ctx context.Context, id string, frame *rules.GameFrame) error {
	defer instrument("PushGameFrame")()
	return m.s.PushGameFrame(ctx, id, frame)
}

func (m *metrics) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.GameFrame, error) {
	defer instrument("ListGameFrames")()
	return m.s.ListGameFrames(ctx, id, limit, offset)
}
