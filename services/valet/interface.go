package valet

import (
	"context"
	"sync"

	"valetpro/models"
	ai "valetpro/services/intelligence"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService holds the one shared valet session and applies customer and
// valet actions to it.
type SessionService interface {
	Snapshot() models.SessionState
	Driver() models.DriverRecord
	GeneratorMode() string

	Register(input models.RegistrationInput) (models.SessionState, error)
	RequestCar() (models.SessionState, error)
	BringCar(eta string) (models.SessionState, error)
	MarkReady() (models.SessionState, error)
	SwitchView(view models.ViewMode) (models.SessionState, error)
	Reset() models.SessionState
}

// DefaultSessionService implements SessionService in memory.
type DefaultSessionService struct {
	mu       sync.Mutex
	state    models.SessionState
	msgSeq   uint64
	eventSeq uint64

	// Events are published strictly in eventSeq order; pubTurn waits on
	// published under pubMu.
	pubMu     sync.Mutex
	pubTurn   *sync.Cond
	published uint64

	driver    models.DriverRecord
	generator ai.MessageGenerator
	publisher EventPublisher
	logger    *zap.Logger
	newID     func() string

	// ctx bounds background message generation; cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDefaultSessionService(
	generator ai.MessageGenerator,
	publisher EventPublisher,
	driver models.DriverRecord,
	logger *zap.Logger,
) *DefaultSessionService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &DefaultSessionService{
		driver:    driver,
		generator: generator,
		publisher: publisher,
		logger:    logger,
		newID:     uuid.NewString,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.pubTurn = sync.NewCond(&s.pubMu)
	s.state = InitialState(s.newID())
	return s
}
