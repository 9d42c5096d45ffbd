// Package sweep implements the per-minute reminder evaluation pass.
package sweep

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ArthurHoang15/notification-server/internal/domain"
	"github.com/ArthurHoang15/notification-server/internal/i18n"
	"github.com/ArthurHoang15/notification-server/internal/metrics"
	"github.com/ArthurHoang15/notification-server/internal/push"
	"github.com/ArthurHoang15/notification-server/internal/store"
)

// ErrSweepInProgress is returned when a sweep is requested while the
// previous one has not finished. Both the cron tick and the manual
// trigger go through the same guard; without it a slow sweep crossing
// a minute boundary would double-send every due slot.
var ErrSweepInProgress = errors.New("sweep already in progress")

// Summary aggregates one sweep.
type Summary struct {
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
}

// Sweeper loads all users and reminders each pass and dispatches a
// notification for every slot due in the reminder's local minute. It
// keeps no state between passes: a missed send is simply not retried
// until the slot recurs.
type Sweeper struct {
	repo        store.Repo
	dispatcher  *push.Dispatcher
	log         *zap.Logger
	concurrency int
	sendTimeout time.Duration

	now func() time.Time // overridable in tests

	mu sync.Mutex // non-reentrant sweep guard
}

func New(repo store.Repo, dispatcher *push.Dispatcher, log *zap.Logger, concurrency int, sendTimeout time.Duration) *Sweeper {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Sweeper{
		repo:        repo,
		dispatcher:  dispatcher,
		log:         log,
		concurrency: concurrency,
		sendTimeout: sendTimeout,
		now:         time.Now,
	}
}

// Sweep runs one full evaluation pass and returns its counts. It
// returns ErrSweepInProgress when called concurrently with itself.
// Store or dispatch failures below the user-listing level are logged
// and skipped, never escalated.
func (s *Sweeper) Sweep(ctx context.Context) (Summary, error) {
	if !s.mu.TryLock() {
		return Summary{}, ErrSweepInProgress
	}
	defer s.mu.Unlock()

	now := s.now().UTC()
	s.log.Debug("sweep started", zap.Time("now", now))

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		// Store entirely unreachable: end this tick cleanly, next
		// tick proceeds normally.
		s.log.Error("sweep aborted: list users failed", zap.Error(err))
		metrics.SweepsTotal.WithLabelValues("error").Inc()
		return Summary{}, nil
	}

	var checked, sent atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, u := range users {
		if !u.HasToken() {
			continue
		}
		user := u
		g.Go(func() error {
			s.sweepUser(gctx, now, user, &checked, &sent)
			return nil
		})
	}
	_ = g.Wait()

	sum := Summary{Checked: int(checked.Load()), Sent: int(sent.Load())}
	metrics.SweepsTotal.WithLabelValues("ok").Inc()
	metrics.RemindersChecked.Add(float64(sum.Checked))
	s.log.Info("sweep finished",
		zap.Int("checked", sum.Checked),
		zap.Int("sent", sum.Sent),
		zap.Duration("took", time.Since(now)),
	)
	return sum, nil
}

func (s *Sweeper) sweepUser(ctx context.Context, now time.Time, user domain.User, checked, sent *atomic.Int64) {
	reminders, err := s.repo.ListActiveReminders(ctx, user.ID)
	if err != nil {
		s.log.Error("list reminders failed", zap.Error(err), zap.String("user", user.ID))
		return
	}

	for i := range reminders {
		rem := &reminders[i]
		checked.Add(1)

		lt, ok := domain.ResolveLocal(now, rem.Timezone)
		if !ok {
			s.log.Warn("invalid timezone, using local fallback",
				zap.String("tz", rem.Timezone), zap.String("reminder", rem.ID))
		}

		for _, slot := range domain.DueSlots(rem, lt) {
			s.log.Info("reminder due",
				zap.String("user", user.ID),
				zap.String("reminder", rem.ID),
				zap.String("slot", string(slot)),
				zap.String("localTime", lt.HHMM()),
			)
			if s.sendSlot(ctx, user, rem, slot) {
				sent.Add(1)
			}
		}
	}
}

func (s *Sweeper) sendSlot(ctx context.Context, user domain.User, rem *domain.Reminder, slot domain.Slot) bool {
	title, body := i18n.Compose(user.Language, slot, rem.Detailed, rem.MedicineName, rem.Dosage)

	sctx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	res := s.dispatcher.Send(sctx, user.PushToken, title, body, push.Meta{
		ReminderID:    rem.ID,
		TimeSlot:      string(slot),
		SnoozeMinutes: rem.SnoozeMinutes,
		MedicineName:  rem.MedicineName,
		Dosage:        rem.Dosage,
	})
	if res.Success {
		metrics.NotificationsSent.WithLabelValues("ok").Inc()
	} else {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
	}
	return res.Success
}
