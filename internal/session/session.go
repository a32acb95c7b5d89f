// Package session runs the interactive update loop.
//
// A Session moves through AwaitingDevice -> AwaitingIP -> ApplyUpdate and
// back until the operator enters the quit sentinel. It owns every
// accumulator of the run and returns them as a domain.Report.
package session

import (
	"context"
	"errors"
	"fmt"

	"netupdate/internal/console"
	"netupdate/internal/domain"

	"github.com/google/uuid"
)

// QuitSentinel ends the session when entered at the device prompt
const QuitSentinel = "x"

// Operator-facing text
const (
	PromptDevice     = "\nWhich device would you like to update (enter x to quit)? "
	PromptIP         = "What is the new IP address (111.111.111.111) "
	MsgUnknownDevice = "That device is not in the network inventory."
	MsgInvalidIP     = "Sorry, that is not a valid IP address\n"
)

// State is a position in the update loop
type State int

const (
	StateAwaitingDevice State = iota
	StateAwaitingIP
	StateApplyUpdate
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingDevice:
		return "AWAITING_DEVICE"
	case StateAwaitingIP:
		return "AWAITING_IP"
	case StateApplyUpdate:
		return "APPLY_UPDATE"
	case StateTerminated:
		return "TERMINATED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Prompter is the console the session talks through
type Prompter interface {
	// Prompt shows question and blocks for one line or until ctx is done.
	// It returns console.ErrInputExhausted when no more input will arrive.
	Prompt(ctx context.Context, question string) (string, error)
	Say(msg string)
}

// Options tune the loop
type Options struct {
	// MaxIPAttempts abandons the pending device after this many consecutive
	// rejected IPs. 0 means retry forever.
	MaxIPAttempts int
	// EOFQuits treats end of input at the device prompt as the quit sentinel.
	// End of input at the IP prompt always aborts the run.
	EOFQuits bool
}

// selection is the outcome of the device prompt
type selection struct {
	name  string
	class domain.DeviceClass
	quit  bool
}

// Session is one operator update run
type Session struct {
	id       string
	inv      *domain.Inventory
	prompter Prompter
	opts     Options
	events   *EventBus

	state  State
	report *domain.Report
}

// New creates a session over inv. The inventory is mutated in place.
func New(inv *domain.Inventory, prompter Prompter, opts Options) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		inv:      inv,
		prompter: prompter,
		opts:     opts,
		events:   NewEventBus(),
		state:    StateAwaitingDevice,
		report:   domain.NewReport(id),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Events returns the bus session events are published on
func (s *Session) Events() *EventBus {
	return s.events
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Report returns the accumulated results so far
func (s *Session) Report() *domain.Report {
	return s.report
}

// Run drives the loop until the quit sentinel. On error the partial report
// is returned along with it and the state is left where it failed.
func (s *Session) Run(ctx context.Context) (*domain.Report, error) {
	var (
		sel selection
		ip  string
	)

	for {
		if err := ctx.Err(); err != nil {
			return s.report, err
		}

		switch s.state {
		case StateAwaitingDevice:
			var err error
			sel, err = s.selectDevice(ctx)
			if err != nil {
				if errors.Is(err, console.ErrInputExhausted) && s.opts.EOFQuits {
					s.publish(Event{Type: EventInputEnded})
					s.state = StateTerminated
					continue
				}
				return s.report, fmt.Errorf("select device: %w", err)
			}
			if sel.quit {
				s.state = StateTerminated
				continue
			}
			s.state = StateAwaitingIP

		case StateAwaitingIP:
			var (
				ok  bool
				err error
			)
			ip, ok, err = s.readIP(ctx, sel)
			if err != nil {
				return s.report, fmt.Errorf("read IP for %s: %w", sel.name, err)
			}
			if !ok {
				s.state = StateAwaitingDevice
				continue
			}
			s.state = StateApplyUpdate

		case StateApplyUpdate:
			if err := s.apply(sel, ip); err != nil {
				return s.report, err
			}
			s.state = StateAwaitingDevice

		case StateTerminated:
			s.publish(Event{Type: EventTerminated})
			return s.report, nil

		default:
			return s.report, fmt.Errorf("session in unknown state %v", s.state)
		}
	}
}

// selectDevice prompts until a known device or the quit sentinel is entered.
// Routers are matched before switches, and both before the sentinel.
func (s *Session) selectDevice(ctx context.Context) (selection, error) {
	for {
		raw, err := s.prompter.Prompt(ctx, PromptDevice)
		if err != nil {
			return selection{}, err
		}

		name := domain.NormalizeName(raw)
		if class, ok := s.inv.Lookup(name); ok {
			return selection{name: name, class: class}, nil
		}
		if name == QuitSentinel {
			return selection{quit: true}, nil
		}

		s.prompter.Say(MsgUnknownDevice)
		s.publish(Event{Type: EventDeviceUnknown, Device: name})
	}
}

// readIP prompts until a valid literal is entered. ok is false when the
// device was abandoned after MaxIPAttempts rejections.
func (s *Session) readIP(ctx context.Context, sel selection) (string, bool, error) {
	rejected := 0
	for {
		raw, err := s.prompter.Prompt(ctx, PromptIP)
		if err != nil {
			return "", false, err
		}

		if verr := domain.ValidateIPLiteral(raw); verr != nil {
			s.report.RecordInvalid(raw)
			s.prompter.Say(MsgInvalidIP)
			s.publish(Event{Type: EventIPRejected, Device: sel.name, Class: sel.class, IP: raw, Err: verr})

			rejected++
			if s.opts.MaxIPAttempts > 0 && rejected >= s.opts.MaxIPAttempts {
				s.prompter.Say(fmt.Sprintf("Too many invalid addresses; %s was not updated.", sel.name))
				s.publish(Event{Type: EventDeviceAbandoned, Device: sel.name, Class: sel.class})
				return "", false, nil
			}
			continue
		}

		return raw, true, nil
	}
}

// apply writes ip into the table named by the selection's class tag
func (s *Session) apply(sel selection, ip string) error {
	if err := s.inv.Assign(sel.class, sel.name, ip); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}
	s.report.RecordUpdate(sel.name, ip)

	s.prompter.Say(fmt.Sprintf("%s was updated; the new IP address is %s", sel.name, ip))
	s.publish(Event{Type: EventDeviceUpdated, Device: sel.name, Class: sel.class, IP: ip})
	return nil
}

func (s *Session) publish(e Event) {
	e.SessionID = s.id
	s.events.Publish(e)
}
