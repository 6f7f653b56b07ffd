package valet

import (
	"context"
	"time"

	"valetpro/models"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// messageJob is one outstanding status message. Its result is applied only if
// the session and message sequence it was started for are still current.
type messageJob struct {
	sessionID string
	seq       uint64
	kind      models.MessageKind
	mc        models.MessageContext
}

func (s *DefaultSessionService) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *DefaultSessionService) Driver() models.DriverRecord {
	return s.driver
}

func (s *DefaultSessionService) GeneratorMode() string {
	return s.generator.Mode()
}

// Register validates the vehicle, moves the session to tracking and starts the
// welcome message.
func (s *DefaultSessionService) Register(input models.RegistrationInput) (models.SessionState, error) {
	return s.transition(ActionRegister, models.MessageRegistration, func(st models.SessionState) (models.SessionState, error) {
		return register(st, input)
	})
}

// RequestCar is the customer's request. It uses a fixed message and does not
// wait for pending generation.
func (s *DefaultSessionService) RequestCar() (models.SessionState, error) {
	return s.transition(ActionRequest, "", requestCar)
}

func (s *DefaultSessionService) BringCar(eta string) (models.SessionState, error) {
	return s.transition(ActionBring, models.MessageInTransit, func(st models.SessionState) (models.SessionState, error) {
		return bringCar(st, eta)
	})
}

func (s *DefaultSessionService) MarkReady() (models.SessionState, error) {
	return s.transition(ActionReady, models.MessageReady, markReady)
}

func (s *DefaultSessionService) SwitchView(view models.ViewMode) (models.SessionState, error) {
	s.mu.Lock()
	next, err := switchView(s.state, view)
	if err != nil {
		snap := s.state.Clone()
		s.mu.Unlock()
		return snap, err
	}
	s.state = next
	snap := next.Clone()
	s.mu.Unlock()
	return snap, nil
}

// Reset starts a fresh session. Messages still being generated for the old
// session are discarded when they arrive.
func (s *DefaultSessionService) Reset() models.SessionState {
	s.mu.Lock()
	old := s.state.SessionID
	s.msgSeq++
	s.state = InitialState(s.newID())
	snap := s.state.Clone()
	seq := s.nextEventSeq()
	s.mu.Unlock()

	s.logger.Info("Session reset", zap.String("previous", old), zap.String("session", snap.SessionID))
	s.publish(seq, ActionReset, snap)
	return snap
}

// Wait blocks until all background message generation has finished.
func (s *DefaultSessionService) Wait() {
	s.wg.Wait()
}

// Close cancels outstanding message generation and waits for it to drain.
func (s *DefaultSessionService) Close() {
	s.cancel()
	s.wg.Wait()
}

// transition applies fn under the lock. When kind is set the action is
// generator-backed: it is refused while another message is pending and it
// starts a new message in the background.
func (s *DefaultSessionService) transition(
	action string,
	kind models.MessageKind,
	fn func(models.SessionState) (models.SessionState, error),
) (models.SessionState, error) {
	s.mu.Lock()
	if kind != "" && s.state.Pending {
		snap := s.state.Clone()
		s.mu.Unlock()
		return snap, ErrPending
	}
	next, err := fn(s.state)
	if err != nil {
		snap := s.state.Clone()
		s.mu.Unlock()
		return snap, err
	}

	s.msgSeq++
	var job *messageJob
	if kind != "" {
		next.Pending = true
		job = &messageJob{
			sessionID: next.SessionID,
			seq:       s.msgSeq,
			kind:      kind,
			mc: models.MessageContext{
				Car:    *next.Vehicle,
				Driver: s.driver,
				Eta:    next.EtaMinutes,
			},
		}
		s.wg.Add(1)
	}
	s.state = next
	snap := next.Clone()
	seq := s.nextEventSeq()
	s.mu.Unlock()

	s.logger.Info("Session transition",
		zap.String("action", action),
		zap.String("session", snap.SessionID),
		zap.String("status", string(snap.RetrievalStatus)),
	)
	s.publish(seq, action, snap)
	if job != nil {
		go s.runMessage(*job)
	}
	return snap, nil
}

func (s *DefaultSessionService) runMessage(job messageJob) {
	defer s.wg.Done()

	text := s.generator.Generate(s.ctx, job.kind, job.mc)

	s.mu.Lock()
	if s.state.SessionID != job.sessionID {
		s.mu.Unlock()
		s.logger.Debug("Discarding status message for a reset session",
			zap.String("session", job.sessionID),
			zap.String("kind", string(job.kind)),
		)
		return
	}
	// Only one generator-backed action runs per session, so this job owns the flag.
	s.state.Pending = false
	applied := job.seq == s.msgSeq
	var seq uint64
	if applied {
		s.state.StatusMessage = text
		seq = s.nextEventSeq()
	}
	snap := s.state.Clone()
	s.mu.Unlock()

	if !applied {
		s.logger.Debug("Status message superseded",
			zap.String("session", job.sessionID),
			zap.String("kind", string(job.kind)),
		)
		return
	}
	s.publish(seq, ActionMessage, snap)
}

// nextEventSeq hands out the publish ticket for a state change. Callers hold
// s.mu and must pass the ticket to publish exactly once.
func (s *DefaultSessionService) nextEventSeq() uint64 {
	s.eventSeq++
	return s.eventSeq
}

// publish waits until every earlier ticket has been published, so subscribers
// see changes in the order they were applied. s.mu is not held while waiting.
func (s *DefaultSessionService) publish(seq uint64, action string, st models.SessionState) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	for s.published+1 != seq {
		s.pubTurn.Wait()
	}
	defer func() {
		s.published = seq
		s.pubTurn.Broadcast()
	}()

	evt := models.StatusEvent{
		Seq:             seq,
		SessionID:       st.SessionID,
		Action:          action,
		Phase:           st.Phase,
		RetrievalStatus: st.RetrievalStatus,
		EtaMinutes:      st.EtaMinutes,
		StatusMessage:   st.StatusMessage,
		At:              time.Now().Unix(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish status event", zap.String("action", action), zap.Error(err))
	}
}
