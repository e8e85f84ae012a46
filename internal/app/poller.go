// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Poller sequences one fetch-validate-format-notify cycle after another on a
// single goroutine, holding the poll cursor and the last sent message text
// between cycles. Both survive only as long as the process does.
type Poller struct {
	api         homework.Client
	notifier    domainTelegram.Notifier
	logger      *logrus.Entry
	interval    time.Duration
	from        int64  // lower bound for the next poll, Unix seconds
	lastMessage string // last text actually delivered, success or error
}

func NewPoller(
	api homework.Client,
	notifier domainTelegram.Notifier,
	logger *logrus.Entry,
	interval time.Duration,
	startFrom int64,
) *Poller {
	return &Poller{
		api:      api,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		from:     startFrom,
	}
}

// Run executes poll cycles until the context is cancelled. A cycle always
// runs to completion before the fixed interval starts, so a slow cycle
// delays the next poll instead of overlapping it. Cycle errors never stop
// the loop; the only fatal condition in the system is missing configuration
// at startup, which is handled before Run is ever called.
func (p *Poller) Run(ctx context.Context) {
	p.logger.WithField("interval", p.interval.String()).Info("Poller started")

	for {
		p.runCycle(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped")
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) runCycle(ctx context.Context) {
	raw, err := p.api.HomeworkStatuses(ctx, p.from)
	if err != nil {
		p.reportCycleError(ctx, err)
		return
	}

	resp, err := homework.CheckResponse(raw)
	if err != nil {
		p.reportCycleError(ctx, err)
		return
	}

	if len(resp.Homeworks) == 0 {
		// Nothing new to acknowledge, so the cursor stays put as well.
		p.logger.Debug("No new homework statuses")
		return
	}

	// The API returns records most-recent-first; only the newest one matters.
	message, err := homework.FormatStatusMessage(resp.Homeworks[0])
	if err != nil {
		p.reportCycleError(ctx, err)
		return
	}

	if message == p.lastMessage {
		p.logger.Debug("Status unchanged since last notification, skipping send")
		p.advanceCursor(resp)
		return
	}

	if !p.notifier.Notify(ctx, message) {
		// The notifier already logged the failure. The cursor stays put so
		// the same status change is fetched and retried next cycle.
		return
	}

	p.lastMessage = message
	p.advanceCursor(resp)
}

// reportCycleError logs the failure and forwards one diagnostic message to
// the chat, unless the identical text was already sent last time. A failed
// forward is swallowed: the loop must never die because Telegram is down.
func (p *Poller) reportCycleError(ctx context.Context, cause error) {
	if ctx.Err() != nil {
		// Shutting down; a cycle interrupted mid-request is expected noise.
		return
	}

	p.logger.WithError(cause).Error("Poll cycle failed")

	message := fmt.Sprintf("Сбой в работе программы: %v", cause)
	if message == p.lastMessage {
		return
	}
	if p.notifier.Notify(ctx, message) {
		p.lastMessage = message
	}
}

// advanceCursor moves the poll lower bound to the server-supplied timestamp.
// The cursor never moves backwards, and a response without current_date
// leaves it untouched.
func (p *Poller) advanceCursor(resp *homework.Response) {
	if resp.HasCursor && resp.Cursor > p.from {
		p.from = resp.Cursor
	}
}
