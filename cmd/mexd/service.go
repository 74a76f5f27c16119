package main

import (
	"context"
	"log"
	"sync"

	"github.com/atmoschem/mex/mech"
	"github.com/atmoschem/mex/rates"
)

// Service wraps a mechanism for use by the HTTP and WebSockets
// listeners.  All access goes through the mutex since injection ops
// mutate the mechanism.
type Service struct {
	Errors  chan interface{}
	Tracing bool

	ops chan interface{}

	mu sync.RWMutex
	m  *mech.Mechanism
}

func (s *Service) trf(format string, args ...interface{}) {
	if !s.Tracing {
		return
	}
	log.Printf("trace "+format, args...)
}

func NewService(ctx context.Context, def *mech.Definition) (*Service, error) {
	m, err := mech.New(def, nil)
	if err != nil {
		return nil, err
	}
	return &Service{m: m}, nil
}

// AttachIRRFile attaches integrated reaction rates from a bbolt file.
func (s *Service) AttachIRRFile(filename string) error {
	return s.attachFile(filename, s.m.AttachIRR)
}

// AttachIPRFile attaches integrated process rates from a bbolt file.
func (s *Service) AttachIPRFile(filename string) error {
	return s.attachFile(filename, s.m.AttachIPR)
}

func (s *Service) attachFile(filename string, do func(rates.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store := rates.NewBoltStore(filename)
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()
	return do(store)
}

// op forwards a copy of the operation to the firehose (if any).
func (s *Service) op(ctx context.Context, x interface{}) {
	if s.ops != nil {
		select {
		case s.ops <- Copy(x):
		default:
			log.Printf("Service ops chan blocked")
		}
	}
}

func (s *Service) err(ctx context.Context, x interface{}) {
	if s.Errors != nil {
		select {
		case s.Errors <- x:
		default:
			log.Printf("Service errors chan blocked")
		}
	}
}
