package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConfigNotFound    = errors.New("building type config not found")
	ErrOptionNotFound    = errors.New("calculator option not found")
	ErrRegionModNotFound = errors.New("region modifier not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidConfig     = errors.New("invalid building type config")
	ErrInvalidOption     = errors.New("invalid calculator option")
	ErrInvalidRegion     = errors.New("invalid region modifier")
	ErrConfigSlugTaken   = errors.New("slug already used by another config")
	ErrOptionNameTaken   = errors.New("option name already used in this config")
	ErrRegionNameTaken   = errors.New("region already exists")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Defaults applied on create, matching the back-office editor.
const (
	defaultDurationMinWeeks = 8
	defaultDurationMaxWeeks = 16
	defaultCoefficient      = 1.0
)

// ConfigInput is the full record an administrator submits for a config.
// Nil pointers take the create defaults; on update every field is replaced.
type ConfigInput struct {
	Slug             string
	BuildingType     string
	BasePriceMin     float64
	BasePriceMax     float64
	DurationMinWeeks *int
	DurationMaxWeeks *int
	Notes            *string
	IsPublished      *bool
	SortOrder        int
}

type OptionInput struct {
	Name        string
	AddPriceMin float64
	AddPriceMax float64
	SortOrder   int
}

type RegionInput struct {
	Region      string
	Coefficient *float64
	SortOrder   int
}

// IAdminConfigUseCase is the admin editor over the configuration store.
//
// Update is a full-record replace and concurrent edits are last-write-wins.
// Deleting a config relies on the repository to remove its options.
type IAdminConfigUseCase interface {
	ListConfigs(ctx context.Context) ([]entities.BuildingTypeConfig, error)
	CreateConfig(ctx context.Context, in ConfigInput) (entities.BuildingTypeConfig, error)
	UpdateConfig(ctx context.Context, id string, in ConfigInput) (entities.BuildingTypeConfig, error)
	SetConfigPublished(ctx context.Context, id string, published bool) (entities.BuildingTypeConfig, error)
	DeleteConfig(ctx context.Context, id string) error

	ListOptions(ctx context.Context, configID string) ([]entities.CalculatorOption, error)
	CreateOption(ctx context.Context, configID string, in OptionInput) (entities.CalculatorOption, error)
	UpdateOption(ctx context.Context, id string, in OptionInput) (entities.CalculatorOption, error)
	DeleteOption(ctx context.Context, id string) error

	ListRegions(ctx context.Context) ([]entities.RegionModifier, error)
	CreateRegion(ctx context.Context, in RegionInput) (entities.RegionModifier, error)
	UpdateRegion(ctx context.Context, id string, in RegionInput) (entities.RegionModifier, error)
	DeleteRegion(ctx context.Context, id string) error
}

type AdminConfigUseCase struct {
	configs interfaces.IBuildingTypeConfigRepository
	options interfaces.ICalculatorOptionRepository
	regions interfaces.IRegionModifierRepository
	cache   interfaces.ICatalogCache
}

var _ IAdminConfigUseCase = (*AdminConfigUseCase)(nil)

func NewAdminConfigUseCase(
	configs interfaces.IBuildingTypeConfigRepository,
	options interfaces.ICalculatorOptionRepository,
	regions interfaces.IRegionModifierRepository,
	cache interfaces.ICatalogCache,
) *AdminConfigUseCase {
	return &AdminConfigUseCase{configs: configs, options: options, regions: regions, cache: cache}
}

// ---- configs ----

func (u *AdminConfigUseCase) ListConfigs(ctx context.Context) ([]entities.BuildingTypeConfig, error) {
	return u.configs.List(ctx, false)
}

func (u *AdminConfigUseCase) CreateConfig(ctx context.Context, in ConfigInput) (entities.BuildingTypeConfig, error) {
	now := time.Now().UTC()
	c := configFromInput(in, configDefaults())
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := validateConfig(c); err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	if err := u.ensureSlugFree(ctx, c.Slug, ""); err != nil {
		return entities.BuildingTypeConfig{}, err
	}

	created, err := u.configs.Create(ctx, c)
	if err != nil {
		log.Printf("[admin][usecase] create config failed slug=%s err=%v", c.Slug, err)
		return entities.BuildingTypeConfig{}, err
	}
	log.Printf("[admin][usecase] config created id=%s slug=%s published=%t", created.ID, created.Slug, created.IsPublished)
	u.invalidate(ctx)
	return created, nil
}

func (u *AdminConfigUseCase) UpdateConfig(ctx context.Context, id string, in ConfigInput) (entities.BuildingTypeConfig, error) {
	existing, err := u.getConfig(ctx, id)
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}

	c := configFromInput(in, configDefaults())
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if err := validateConfig(c); err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	if err := u.ensureSlugFree(ctx, c.Slug, c.ID); err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	return u.saveConfig(ctx, c)
}

func (u *AdminConfigUseCase) SetConfigPublished(ctx context.Context, id string, published bool) (entities.BuildingTypeConfig, error) {
	c, err := u.getConfig(ctx, id)
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	c.IsPublished = published
	c.UpdatedAt = time.Now().UTC()
	return u.saveConfig(ctx, c)
}

func (u *AdminConfigUseCase) DeleteConfig(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.configs.Delete(ctx, id)
	if err != nil {
		log.Printf("[admin][usecase] delete config failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrConfigNotFound
	}
	log.Printf("[admin][usecase] config deleted id=%s", id)
	u.invalidate(ctx)
	return nil
}

func (u *AdminConfigUseCase) getConfig(ctx context.Context, id string) (entities.BuildingTypeConfig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BuildingTypeConfig{}, ErrInvalidID
	}
	c, err := u.configs.GetByID(ctx, id)
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	if c.ID == "" {
		return entities.BuildingTypeConfig{}, ErrConfigNotFound
	}
	return c, nil
}

func (u *AdminConfigUseCase) saveConfig(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error) {
	updated, err := u.configs.Update(ctx, c)
	if err != nil {
		log.Printf("[admin][usecase] update config failed id=%s err=%v", c.ID, err)
		return entities.BuildingTypeConfig{}, err
	}
	if updated.ID == "" {
		// Deleted concurrently between read and write.
		return entities.BuildingTypeConfig{}, ErrConfigNotFound
	}
	log.Printf("[admin][usecase] config updated id=%s slug=%s published=%t", updated.ID, updated.Slug, updated.IsPublished)
	u.invalidate(ctx)
	return updated, nil
}

func (u *AdminConfigUseCase) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	other, err := u.configs.GetBySlug(ctx, slug, false)
	if err != nil {
		return err
	}
	if other.ID != "" && other.ID != selfID {
		return ErrConfigSlugTaken
	}
	return nil
}

func configDefaults() entities.BuildingTypeConfig {
	return entities.BuildingTypeConfig{
		DurationMinWeeks: defaultDurationMinWeeks,
		DurationMaxWeeks: defaultDurationMaxWeeks,
		IsPublished:      true,
	}
}

func configFromInput(in ConfigInput, base entities.BuildingTypeConfig) entities.BuildingTypeConfig {
	c := base
	c.Slug = strings.TrimSpace(in.Slug)
	c.BuildingType = strings.TrimSpace(in.BuildingType)
	c.BasePriceMin = in.BasePriceMin
	c.BasePriceMax = in.BasePriceMax
	if in.DurationMinWeeks != nil {
		c.DurationMinWeeks = *in.DurationMinWeeks
	}
	if in.DurationMaxWeeks != nil {
		c.DurationMaxWeeks = *in.DurationMaxWeeks
	}
	c.Notes = normalizeOptional(in.Notes)
	if in.IsPublished != nil {
		c.IsPublished = *in.IsPublished
	}
	c.SortOrder = in.SortOrder
	return c
}

func validateConfig(c entities.BuildingTypeConfig) error {
	switch {
	case !slugPattern.MatchString(c.Slug):
		return fmt.Errorf("%w: slug must be lowercase letters, digits and single dashes", ErrInvalidConfig)
	case c.BuildingType == "":
		return fmt.Errorf("%w: building_type is required", ErrInvalidConfig)
	case c.BasePriceMin < 0 || c.BasePriceMin > c.BasePriceMax:
		return fmt.Errorf("%w: base prices must satisfy 0 <= min <= max", ErrInvalidConfig)
	case c.DurationMinWeeks < 0 || c.DurationMinWeeks > c.DurationMaxWeeks:
		return fmt.Errorf("%w: durations must satisfy 0 <= min <= max", ErrInvalidConfig)
	}
	return nil
}

// ---- options ----

func (u *AdminConfigUseCase) ListOptions(ctx context.Context, configID string) ([]entities.CalculatorOption, error) {
	cfg, err := u.getConfig(ctx, configID)
	if err != nil {
		return nil, err
	}
	return u.options.ListByConfigID(ctx, cfg.ID)
}

func (u *AdminConfigUseCase) CreateOption(ctx context.Context, configID string, in OptionInput) (entities.CalculatorOption, error) {
	cfg, err := u.getConfig(ctx, configID)
	if err != nil {
		return entities.CalculatorOption{}, err
	}

	now := time.Now().UTC()
	o := optionFromInput(in, entities.CalculatorOption{
		ID:        uuid.NewString(),
		ConfigID:  cfg.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err := validateOption(o); err != nil {
		return entities.CalculatorOption{}, err
	}
	if err := u.ensureOptionNameFree(ctx, o.ConfigID, o.Name, ""); err != nil {
		return entities.CalculatorOption{}, err
	}

	created, err := u.options.Create(ctx, o)
	if err != nil {
		log.Printf("[admin][usecase] create option failed config_id=%s err=%v", cfg.ID, err)
		return entities.CalculatorOption{}, err
	}
	log.Printf("[admin][usecase] option created id=%s config_id=%s", created.ID, created.ConfigID)
	u.invalidate(ctx)
	return created, nil
}

func (u *AdminConfigUseCase) UpdateOption(ctx context.Context, id string, in OptionInput) (entities.CalculatorOption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalculatorOption{}, ErrInvalidID
	}
	existing, err := u.options.GetByID(ctx, id)
	if err != nil {
		return entities.CalculatorOption{}, err
	}
	if existing.ID == "" {
		return entities.CalculatorOption{}, ErrOptionNotFound
	}

	o := optionFromInput(in, existing)
	o.UpdatedAt = time.Now().UTC()
	if err := validateOption(o); err != nil {
		return entities.CalculatorOption{}, err
	}
	if err := u.ensureOptionNameFree(ctx, o.ConfigID, o.Name, o.ID); err != nil {
		return entities.CalculatorOption{}, err
	}

	updated, err := u.options.Update(ctx, o)
	if err != nil {
		log.Printf("[admin][usecase] update option failed id=%s err=%v", id, err)
		return entities.CalculatorOption{}, err
	}
	if updated.ID == "" {
		return entities.CalculatorOption{}, ErrOptionNotFound
	}
	u.invalidate(ctx)
	return updated, nil
}

func (u *AdminConfigUseCase) DeleteOption(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.options.Delete(ctx, id)
	if err != nil {
		log.Printf("[admin][usecase] delete option failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrOptionNotFound
	}
	u.invalidate(ctx)
	return nil
}

func (u *AdminConfigUseCase) ensureOptionNameFree(ctx context.Context, configID, name, selfID string) error {
	siblings, err := u.options.ListByConfigID(ctx, configID)
	if err != nil {
		return err
	}
	for _, s := range siblings {
		if s.Name == name && s.ID != selfID {
			return ErrOptionNameTaken
		}
	}
	return nil
}

func optionFromInput(in OptionInput, base entities.CalculatorOption) entities.CalculatorOption {
	o := base
	o.Name = strings.TrimSpace(in.Name)
	o.AddPriceMin = in.AddPriceMin
	o.AddPriceMax = in.AddPriceMax
	o.SortOrder = in.SortOrder
	return o
}

func validateOption(o entities.CalculatorOption) error {
	switch {
	case o.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidOption)
	case o.AddPriceMin < 0 || o.AddPriceMin > o.AddPriceMax:
		return fmt.Errorf("%w: add prices must satisfy 0 <= min <= max", ErrInvalidOption)
	}
	return nil
}

// ---- regions ----

func (u *AdminConfigUseCase) ListRegions(ctx context.Context) ([]entities.RegionModifier, error) {
	return u.regions.List(ctx)
}

func (u *AdminConfigUseCase) CreateRegion(ctx context.Context, in RegionInput) (entities.RegionModifier, error) {
	now := time.Now().UTC()
	r := regionFromInput(in, entities.RegionModifier{
		ID:          uuid.NewString(),
		Coefficient: defaultCoefficient,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := validateRegion(r); err != nil {
		return entities.RegionModifier{}, err
	}
	if err := u.ensureRegionNameFree(ctx, r.Region, ""); err != nil {
		return entities.RegionModifier{}, err
	}

	created, err := u.regions.Create(ctx, r)
	if err != nil {
		log.Printf("[admin][usecase] create region failed region=%q err=%v", r.Region, err)
		return entities.RegionModifier{}, err
	}
	log.Printf("[admin][usecase] region created id=%s region=%q coefficient=%v", created.ID, created.Region, created.Coefficient)
	u.invalidate(ctx)
	return created, nil
}

func (u *AdminConfigUseCase) UpdateRegion(ctx context.Context, id string, in RegionInput) (entities.RegionModifier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RegionModifier{}, ErrInvalidID
	}
	existing, err := u.regions.GetByID(ctx, id)
	if err != nil {
		return entities.RegionModifier{}, err
	}
	if existing.ID == "" {
		return entities.RegionModifier{}, ErrRegionModNotFound
	}

	r := regionFromInput(in, entities.RegionModifier{
		ID:          existing.ID,
		Coefficient: defaultCoefficient,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	})
	if err := validateRegion(r); err != nil {
		return entities.RegionModifier{}, err
	}
	if err := u.ensureRegionNameFree(ctx, r.Region, r.ID); err != nil {
		return entities.RegionModifier{}, err
	}

	updated, err := u.regions.Update(ctx, r)
	if err != nil {
		log.Printf("[admin][usecase] update region failed id=%s err=%v", id, err)
		return entities.RegionModifier{}, err
	}
	if updated.ID == "" {
		return entities.RegionModifier{}, ErrRegionModNotFound
	}
	u.invalidate(ctx)
	return updated, nil
}

func (u *AdminConfigUseCase) DeleteRegion(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.regions.Delete(ctx, id)
	if err != nil {
		log.Printf("[admin][usecase] delete region failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrRegionModNotFound
	}
	u.invalidate(ctx)
	return nil
}

func (u *AdminConfigUseCase) ensureRegionNameFree(ctx context.Context, name, selfID string) error {
	all, err := u.regions.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range all {
		if r.Region == name && r.ID != selfID {
			return ErrRegionNameTaken
		}
	}
	return nil
}

func regionFromInput(in RegionInput, base entities.RegionModifier) entities.RegionModifier {
	r := base
	r.Region = strings.TrimSpace(in.Region)
	if in.Coefficient != nil {
		r.Coefficient = *in.Coefficient
	}
	r.SortOrder = in.SortOrder
	return r
}

func validateRegion(r entities.RegionModifier) error {
	switch {
	case r.Region == "":
		return fmt.Errorf("%w: region is required", ErrInvalidRegion)
	case r.Coefficient <= 0:
		return fmt.Errorf("%w: coefficient must be positive", ErrInvalidRegion)
	}
	return nil
}

// ---- shared ----

func (u *AdminConfigUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		log.Printf("[admin][usecase] catalog cache invalidation failed err=%v", err)
	}
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
