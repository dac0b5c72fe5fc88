package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ogrande/tower-cards/internal/cardgen"
	"github.com/ogrande/tower-cards/internal/storage"
)

var (
	ErrInvalidIndex        = errors.New("invalid index")
	ErrUnknownCard         = errors.New("unknown card")
	ErrNoCardSelected      = errors.New("no card selected")
	ErrInsufficientStamina = errors.New("insufficient stamina")
	ErrFloorLocked         = errors.New("floor is not unlocked")
	ErrFloorOutOfRange     = errors.New("floor out of range")
	ErrNotEnoughMatches    = errors.New("not enough matching cards to sacrifice")
	ErrInvalidCount        = errors.New("count must be at least 1")
)

// CooldownError reports a command invoked before its window elapsed. No
// state mutates when it is returned.
type CooldownError struct {
	Command   string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown for another %s", e.Command, e.Remaining.Round(time.Second))
}

// IsValidation reports whether err is a recoverable player mistake (bad
// index, locked floor, ...) as opposed to a cooldown or persistence failure.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidIndex, ErrUnknownCard, ErrNoCardSelected, ErrInsufficientStamina,
		ErrFloorLocked, ErrFloorOutOfRange, ErrNotEnoughMatches, ErrInvalidCount,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Service implements the command surface on top of the store. The chat
// dispatch layer (or the HTTP shim in internal/api) calls one method per
// player command.
type Service struct {
	store   *storage.Store
	factory *cardgen.Factory

	// rng feeds rarity rolls and the battle initiative coin flip. Guarded by
	// rngMu because gin runs handlers concurrently.
	rngMu sync.Mutex
	rng   *rand.Rand

	// now is replaceable in tests to exercise cooldown windows.
	now func() time.Time
}

func NewService(store *storage.Store, factory *cardgen.Factory) *Service {
	return &Service{
		store:   store,
		factory: factory,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// roll runs fn with exclusive access to the service RNG.
func (s *Service) roll(fn func(rng *rand.Rand)) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	fn(s.rng)
}
