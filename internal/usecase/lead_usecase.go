package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLead       = errors.New("invalid lead")
	ErrInvalidLeadSource = errors.New("invalid lead source")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadSubmission    = errors.New("lead submission failed")
)

// SubmitLeadCommand is the contact form. The computed price is never part of it.
type SubmitLeadCommand struct {
	Name              string
	Phone             string
	Email             *string
	BuildingType      *string
	AreaM2            *int
	Region            *string
	Message           *string
	MeetingPreference *string
	Source            string
}

type ILeadUseCase interface {
	Submit(ctx context.Context, cmd SubmitLeadCommand) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Submit stores a new lead with a single insert. A repeated submission creates
// a second lead; store failures are reported as ErrLeadSubmission so the client
// can retry.
func (u *LeadUseCase) Submit(ctx context.Context, cmd SubmitLeadCommand) (entities.Lead, error) {
	name := strings.TrimSpace(cmd.Name)
	phone := strings.TrimSpace(cmd.Phone)
	source := entities.LeadSource(strings.TrimSpace(cmd.Source))

	switch {
	case name == "":
		return entities.Lead{}, fmt.Errorf("%w: name is required", ErrInvalidLead)
	case phone == "":
		return entities.Lead{}, fmt.Errorf("%w: phone is required", ErrInvalidLead)
	case cmd.AreaM2 != nil && *cmd.AreaM2 <= 0:
		return entities.Lead{}, fmt.Errorf("%w: area_m2 must be positive", ErrInvalidLead)
	}
	if !source.IsValid() {
		return entities.Lead{}, ErrInvalidLeadSource
	}

	lead := entities.Lead{
		ID:                uuid.NewString(),
		Name:              name,
		Phone:             phone,
		Email:             normalizeOptional(cmd.Email),
		BuildingType:      normalizeOptional(cmd.BuildingType),
		AreaM2:            cmd.AreaM2,
		Region:            normalizeOptional(cmd.Region),
		Message:           normalizeOptional(cmd.Message),
		MeetingPreference: normalizeOptional(cmd.MeetingPreference),
		Source:            source,
		Status:            entities.LeadStatusNew,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[leads][usecase] submit failed source=%s err=%v", source, err)
		return entities.Lead{}, fmt.Errorf("%w: %v", ErrLeadSubmission, err)
	}
	log.Printf("[leads][usecase] lead created id=%s source=%s", created.ID, created.Source)
	return created, nil
}

// List returns leads newest first.
func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidID
	}
	st := entities.LeadStatus(strings.TrimSpace(status))
	if !st.IsValid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		log.Printf("[leads][usecase] update status failed id=%s err=%v", id, err)
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	log.Printf("[leads][usecase] status updated id=%s status=%s", id, st)
	return updated, nil
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[leads][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}
