package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingUI struct {
	mu   sync.Mutex
	sent []tea.Msg
}

func (r *recordingUI) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent = append(r.sent, msg)
}

func (r *recordingUI) Run() error {
	return nil
}

func (r *recordingUI) messages() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]tea.Msg(nil), r.sent...)
}

func TestConfigForwarder(t *testing.T) {
	updates := make(chan config.Config)
	app := NewApp(config.Config{}, updates)
	recorder := &recordingUI{}
	app.ui = recorder

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.configForwarder(ctx)
		close(done)
	}()

	updates <- config.Config{StartView: nav.Careers}

	require.Eventually(t, func() bool { return len(recorder.messages()) == 1 }, time.Second, time.Millisecond)
	require.Equal(t, config.Config{StartView: nav.Careers}, recorder.messages()[0])

	cancel()
	<-done
}
