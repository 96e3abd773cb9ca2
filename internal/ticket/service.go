package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

var (
	ErrNotFound      = errors.New("ticket: not found")
	ErrClosed        = errors.New("ticket: already closed")
	ErrInvalidStatus = errors.New("ticket: status must be APPROVED or REJECTED")
	ErrNoReviewer    = errors.New("ticket: no reviewer for type")

	// ErrEntityNotFound is wrapped by reviewers when the entity a ticket
	// refers to no longer exists.
	ErrEntityNotFound = errors.New("ticket: referenced entity no longer exists")
)

type Repository interface {
	Create(ctx context.Context, params OpenParams) (Ticket, error)
	Find(ctx context.Context, id int64) (Ticket, error)
	List(ctx context.Context, status Status) ([]Ticket, error)
	Close(ctx context.Context, id int64, status Status, message string) error
	Withdraw(ctx context.Context, t Type, entityIDs []int64, message string) (int64, error)
}

type FileLister interface {
	List(ctx context.Context, entityType file.EntityType, entityID int64) ([]file.AppFile, error)
}

// Reviewer applies an administrator's decision to the entity a ticket refers to.
type Reviewer interface {
	Review(ctx context.Context, entityID int64, approved bool) error
}

// ReviewNotifier is implemented by reviewers that act once the decision
// has been committed.
type ReviewNotifier interface {
	Reviewed(ctx context.Context, entityID int64, approved bool)
}

type OpenParams struct {
	Name           string
	EntityID       int64
	Type           Type
	Message        string
	AdditionalInfo *string
}

type CloseParams struct {
	ID      int64
	Status  Status
	Message string
}

type Service struct {
	repo  Repository
	txMgr db.TxManager
	files FileLister

	mu        sync.RWMutex
	reviewers map[Type]Reviewer
}

func NewService(repo Repository, txMgr db.TxManager, files FileLister) *Service {
	return &Service{
		repo:      repo,
		txMgr:     txMgr,
		files:     files,
		reviewers: make(map[Type]Reviewer),
	}
}

// SetReviewer registers the reviewer that closing a ticket of type t calls.
func (s *Service) SetReviewer(t Type, r Reviewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewers[t] = r
}

func (s *Service) reviewer(t Type) (Reviewer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviewers[t]
	return r, ok
}

func (s *Service) Open(ctx context.Context, params OpenParams) (Ticket, error) {
	slog.Info("Opening ticket...", "type", params.Type, "entity_id", params.EntityID)
	t, err := s.repo.Create(ctx, params)
	if err != nil {
		return Ticket{}, fmt.Errorf("open %s ticket: %w", params.Type, err)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Ticket, error) {
	tickets, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]Ticket, error) {
	tickets, err := s.repo.List(ctx, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list open tickets: %w", err)
	}
	return tickets, nil
}

// Get returns a ticket together with the files of the entity it refers to.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	t, err := s.repo.Find(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("find ticket %d: %w", id, err)
	}

	files, err := s.files.List(ctx, t.Type.EntityType(), t.EntityID)
	if err != nil {
		return Detail{}, fmt.Errorf("files of ticket %d: %w", id, err)
	}

	return Detail{Ticket: t, Files: file.NewResponses(files)}, nil
}

// Close decides a pending ticket and applies the decision to its entity
// in the same transaction.
func (s *Service) Close(ctx context.Context, params CloseParams) (Ticket, error) {
	if params.Status != StatusApproved && params.Status != StatusRejected {
		return Ticket{}, ErrInvalidStatus
	}

	slog.Info("Closing ticket...", "id", params.ID, "status", params.Status)
	var (
		closed Ticket
		rv     Reviewer
	)
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		t, err := s.repo.Find(ctx, params.ID)
		if err != nil {
			return err
		}

		if t.Status != StatusPending {
			return ErrClosed
		}

		var ok bool
		if rv, ok = s.reviewer(t.Type); !ok {
			return fmt.Errorf("%w: %s", ErrNoReviewer, t.Type)
		}

		if err := s.repo.Close(ctx, t.ID, params.Status, params.Message); err != nil {
			return err
		}

		if err := rv.Review(ctx, t.EntityID, params.Status == StatusApproved); err != nil {
			return fmt.Errorf("review %s %d: %w", t.Type, t.EntityID, err)
		}

		closed, err = s.repo.Find(ctx, t.ID)
		return err
	})
	if err != nil {
		return Ticket{}, fmt.Errorf("close ticket %d: %w", params.ID, err)
	}

	if n, ok := rv.(ReviewNotifier); ok {
		n.Reviewed(ctx, closed.EntityID, params.Status == StatusApproved)
	}

	return closed, nil
}

// Withdraw rejects the pending tickets of type t that refer to entityIDs.
// It is called when those entities are deleted.
func (s *Service) Withdraw(ctx context.Context, t Type, message string, entityIDs ...int64) error {
	if len(entityIDs) == 0 {
		return nil
	}

	n, err := s.repo.Withdraw(ctx, t, entityIDs, message)
	if err != nil {
		return fmt.Errorf("withdraw %s tickets: %w", t, err)
	}
	slog.Info("Withdrew tickets.", "type", t, "count", n)
	return nil
}
