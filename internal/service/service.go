package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lferraz/prodash/internal/domain"
	"github.com/lferraz/prodash/internal/ports"
	"github.com/lferraz/prodash/internal/store"
)

// Service owns the dashboard state: the record store, the collaborator
// registry and the project plan, all persisted as JSON snapshots. All state
// mutation goes through here as a scoped read-modify-write.
type Service struct {
	store    store.Store
	exporter ports.MetricsExporter
}

// New creates a service on top of the given snapshot store.
func New(s store.Store, exporter ports.MetricsExporter) *Service {
	return &Service{store: s, exporter: exporter}
}

// Records loads the full persisted record set. A missing snapshot means an
// empty set.
func (s *Service) Records(ctx context.Context) ([]domain.UnitRecord, error) {
	var records []domain.UnitRecord
	if err := s.load(ctx, store.KeyRecords, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.UnitRecord{}
	}
	return records, nil
}

// Collaborators loads the registered collaborators. A missing snapshot means
// an empty registry.
func (s *Service) Collaborators(ctx context.Context) ([]domain.Collaborator, error) {
	var collaborators []domain.Collaborator
	if err := s.load(ctx, store.KeyCollaborators, &collaborators); err != nil {
		return nil, err
	}
	if collaborators == nil {
		collaborators = []domain.Collaborator{}
	}
	return collaborators, nil
}

// Plan loads the current project plan, falling back to the built-in seed
// when none has been persisted.
func (s *Service) Plan(ctx context.Context) (domain.ProjectPlan, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyPlan)
	if err != nil {
		return domain.ProjectPlan{}, err
	}
	if !ok {
		return domain.SeedPlan(), nil
	}

	var plan domain.ProjectPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return domain.ProjectPlan{}, fmt.Errorf("decoding %s snapshot: %w", store.KeyPlan, err)
	}
	return plan, nil
}

// MergeUpload stamps the candidates with the collaborator and replaces all
// of that collaborator's previous records with the new set. Other
// collaborators' records are untouched. Returns the new total record count.
func (s *Service) MergeUpload(ctx context.Context, collaborator string, candidates []domain.UnitRecord) (int, error) {
	if collaborator == "" {
		return 0, &ValidationError{Field: "collaborator", Reason: "a collaborator must be selected before uploading"}
	}

	existing, err := s.Records(ctx)
	if err != nil {
		return 0, err
	}

	merged := make([]domain.UnitRecord, 0, len(existing)+len(candidates))
	for _, r := range existing {
		if r.Collaborator != collaborator {
			merged = append(merged, r)
		}
	}
	for _, c := range candidates {
		c.Collaborator = collaborator
		merged = append(merged, c)
	}

	if err := s.save(ctx, store.KeyRecords, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

// Register appends a collaborator to the registry. Duplicate names are
// allowed and both entries retained; filters will show the name once but
// the ambiguity is a known gap carried over from the planning workflow.
func (s *Service) Register(ctx context.Context, name, area string) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "collaborator name is required"}
	}

	collaborators, err := s.Collaborators(ctx)
	if err != nil {
		return err
	}
	collaborators = append(collaborators, domain.Collaborator{Name: name, Area: area})
	return s.save(ctx, store.KeyCollaborators, collaborators)
}

// Remove deletes the exact-name matches from the registry. Removing an
// unknown name is a no-op. Records authored by the removed collaborator are
// kept.
func (s *Service) Remove(ctx context.Context, name string) error {
	collaborators, err := s.Collaborators(ctx)
	if err != nil {
		return err
	}

	kept := collaborators[:0]
	for _, c := range collaborators {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	return s.save(ctx, store.KeyCollaborators, kept)
}

// ReplacePlan persists a full new plan.
func (s *Service) ReplacePlan(ctx context.Context, plan domain.ProjectPlan) error {
	return s.save(ctx, store.KeyPlan, plan)
}

// ClearAll deletes every snapshot: records, registry and plan. The next
// reads see empty collections and the seed plan again.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeyRecords, store.KeyCollaborators, store.KeyPlan)
}

func (s *Service) load(ctx context.Context, key string, out any) error {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s snapshot: %w", key, err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", key, err)
	}
	return s.store.Set(ctx, key, raw)
}
