package payment

import (
	"context"
	"errors"
)

type StubGateway struct {
	CreateIntentFunc func(ctx context.Context, params IntentParams) (Intent, error)
	ParseEventFunc   func(payload []byte, signature string) (Event, error)
}

var _ Gateway = (*StubGateway)(nil)

func (g *StubGateway) CreateIntent(ctx context.Context, params IntentParams) (Intent, error) {
	if g.CreateIntentFunc == nil {
		return Intent{}, errors.New("CreateIntent() not implemented by stub")
	}
	return g.CreateIntentFunc(ctx, params)
}

func (g *StubGateway) ParseEvent(payload []byte, signature string) (Event, error) {
	if g.ParseEventFunc == nil {
		return Event{}, errors.New("ParseEvent() not implemented by stub")
	}
	return g.ParseEventFunc(payload, signature)
}
