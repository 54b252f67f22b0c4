package discord

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrGatewayDisconnected is reported while the gateway session is down
var ErrGatewayDisconnected = errors.New("discord gateway not connected")

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	MirrorReady      bool      `json:"mirror_ready"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandTime atomic.Int64 // unix nanoseconds
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandTime.Store(time.Now().UnixNano())
}

// Health reports the bot's current status
func (b *Bot) Health() HealthStatus {
	h := HealthStatus{
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        b.Session != nil && b.Session.DataReady,
		MirrorReady:      b.Sync != nil && b.Sync.Mirror().Ready(),
		CommandsReceived: commandCounter.Load(),
	}
	if ns := lastCommandTime.Load(); ns != 0 {
		h.LastCommandTime = time.Unix(0, ns)
	}
	return h
}

// CheckHealth lets the status server report the gateway connection
func (b *Bot) CheckHealth(_ context.Context) error {
	if !b.Health().Connected {
		return ErrGatewayDisconnected
	}
	return nil
}
