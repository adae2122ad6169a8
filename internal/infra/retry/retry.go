// Package retry runs operations under a bounded exponential backoff.
package retry

import (
	"context"
	"math"
	"time"

	"nutriplan/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds a retried operation. The wait before retry i (zero based)
// is BaseDelay * 2^i and no wait follows the final attempt.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

// Timer waits between attempts. Tests substitute one that fires at once.
type Timer = backoff.Timer

// Notify is called before each wait with the failed attempt (one based).
type Notify func(attempt int, err error, wait time.Duration)

type options struct {
	timer     Timer
	notify    Notify
	permanent func(error) bool
}

// Option configures Do.
type Option func(*options)

// WithTimer replaces the wall-clock timer used between attempts.
func WithTimer(t Timer) Option {
	return func(o *options) { o.timer = t }
}

// WithNotify registers a callback for failed attempts that will be retried.
func WithNotify(fn Notify) Option {
	return func(o *options) { o.notify = fn }
}

// WithPermanent stops retrying as soon as fn reports true for an error.
func WithPermanent(fn func(error) bool) Option {
	return func(o *options) { o.permanent = fn }
}

// Permanent marks err so that Do returns it without further attempts.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do calls op until it succeeds or the policy is exhausted and returns
// the last error. A cancelled ctx stops the wait between attempts.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		res, err := op(ctx)
		if err != nil && o.permanent != nil && o.permanent(err) {
			return res, backoff.Permanent(err)
		}

		return res, err
	}

	var notify backoff.Notify
	if o.notify != nil {
		notify = func(err error, wait time.Duration) {
			o.notify(attempt, err, wait)
		}
	}

	res, err := backoff.RetryNotifyWithTimerAndData(operation, p.backOff(ctx), notify, o.timer)
	if err != nil {
		return res, errors.WithStack(err)
	}

	return res, nil
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	attempts := max(p.Attempts, 1)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	exp.MaxInterval = maxInterval(p.BaseDelay, attempts)

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)
}

// maxInterval lifts the default 60s cap above the longest wait of the policy.
func maxInterval(base time.Duration, attempts int) time.Duration {
	longest := float64(base) * math.Pow(2, float64(attempts))
	if longest >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return max(time.Duration(longest), backoff.DefaultMaxInterval)
}
