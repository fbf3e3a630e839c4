package services

import (
	"context"
	"fmt"
	"log"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

type WorkerService struct {
	workerRepo *repositories.WorkerRepository
}

func NewWorkerService(workerRepo *repositories.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

// CreateWorkers bulk-adds workers. The workers screen always submits a list,
// even for a single row; every entry needs a name and a contact number.
func (s *WorkerService) CreateWorkers(ctx context.Context, workers []*models.Worker) ([]*models.Worker, error) {
	if len(workers) == 0 {
		return nil, validationf("at least one worker is required")
	}

	for i, w := range workers {
		if w.Name == "" || w.Number == "" {
			return nil, validationf(fmt.Sprintf("worker %d: name and number are required", i+1))
		}
	}

	for _, w := range workers {
		if err := s.workerRepo.Create(ctx, w); err != nil {
			return nil, fmt.Errorf("create worker %q: %w", w.Name, err)
		}
	}

	log.Printf("[Workers] Added %d worker(s)", len(workers))
	return workers, nil
}

func (s *WorkerService) List(ctx context.Context) ([]*models.Worker, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	if workers == nil {
		workers = []*models.Worker{}
	}
	return workers, nil
}

func (s *WorkerService) GetByID(ctx context.Context, id int) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch worker %d: %w", id, err)
	}
	if worker == nil {
		return nil, ErrNotFound
	}
	return worker, nil
}

// Delete removes a worker; order assignments cascade, historical expenses
// keep their rows with the worker reference cleared.
func (s *WorkerService) Delete(ctx context.Context, id int) error {
	ok, err := s.workerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete worker %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	log.Printf("[Workers] Deleted worker %d", id)
	return nil
}
