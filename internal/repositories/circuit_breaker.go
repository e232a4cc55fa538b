package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"bank-account-service/internal/models"
)

// ErrCircuitBreakerOpen is returned without touching the store while the breaker is open
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker counts consecutive store failures. After MaxFailures it opens
// for ResetTimeout, then goes half-open: at most HalfOpenMaxSucc calls are in
// flight at once, and the breaker closes after that many succeed.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	halfOpenInFlight  int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.HalfOpenMaxSucc < 1 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a call may reach the store. Every allowed call must
// be followed by RecordSuccess, RecordFailure or Release.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		cb.halfOpenInFlight = 0
	}

	switch cb.state {
	case StateOpen:
		return false
	case StateHalfOpen:
		if cb.halfOpenInFlight >= cb.config.HalfOpenMaxSucc {
			return false
		}
		cb.halfOpenInFlight++
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.release()
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
			cb.halfOpenInFlight = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
		cb.halfOpenInFlight = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

// Release frees a half-open slot for a call whose outcome says nothing about the store
func (cb *CircuitBreaker) Release() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.release()
}

func (cb *CircuitBreaker) release() {
	if cb.state == StateHalfOpen && cb.halfOpenInFlight > 0 {
		cb.halfOpenInFlight--
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// circuitBreakerRepository guards another repository with a CircuitBreaker
type circuitBreakerRepository struct {
	next    BankAccountRepositoryInterface
	breaker *CircuitBreaker
}

// NewCircuitBreakerRepository wraps next so that repeated store failures fail
// fast with ErrCircuitBreakerOpen. Not-found, nil input and canceled contexts
// do not count as failures.
func NewCircuitBreakerRepository(next BankAccountRepositoryInterface, breaker *CircuitBreaker) BankAccountRepositoryInterface {
	return &circuitBreakerRepository{
		next:    next,
		breaker: breaker,
	}
}

func (r *circuitBreakerRepository) record(err error) {
	switch {
	case err == nil,
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrNilAccount):
		r.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled):
		r.breaker.Release()
	default:
		r.breaker.RecordFailure()
	}
}

func (r *circuitBreakerRepository) Save(ctx context.Context, account *models.BankAccount) (*models.BankAccount, error) {
	if !r.breaker.Allow() {
		return nil, ErrCircuitBreakerOpen
	}
	saved, err := r.next.Save(ctx, account)
	r.record(err)
	return saved, err
}

func (r *circuitBreakerRepository) FindByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	if !r.breaker.Allow() {
		return nil, ErrCircuitBreakerOpen
	}
	account, err := r.next.FindByID(ctx, id)
	r.record(err)
	return account, err
}

func (r *circuitBreakerRepository) FindAll(ctx context.Context) ([]models.BankAccount, error) {
	if !r.breaker.Allow() {
		return nil, ErrCircuitBreakerOpen
	}
	accounts, err := r.next.FindAll(ctx)
	r.record(err)
	return accounts, err
}

func (r *circuitBreakerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if !r.breaker.Allow() {
		return false, ErrCircuitBreakerOpen
	}
	exists, err := r.next.ExistsByID(ctx, id)
	r.record(err)
	return exists, err
}

func (r *circuitBreakerRepository) DeleteByID(ctx context.Context, id int64) error {
	if !r.breaker.Allow() {
		return ErrCircuitBreakerOpen
	}
	err := r.next.DeleteByID(ctx, id)
	r.record(err)
	return err
}
