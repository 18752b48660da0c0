package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/domain/quotation"
	"construction_quote/internal/usecase/interfaces"
)

var (
	ErrCatalogNotFound     = errors.New("catalog not found")
	ErrRegionNotFound      = errors.New("region not found")
	ErrMissingBuildingType = errors.New("building type is required")
	ErrMissingRegion       = errors.New("region is required")
	ErrInvalidArea         = errors.New("area must be a positive integer")
	ErrAreaTooLarge        = errors.New("area exceeds the supported maximum")
)

// QuoteCommand carries the public calculator form.
type QuoteCommand struct {
	Slug    string
	Area    int
	Region  string
	Options []string
}

// ICalculatorUseCase serves the public calculator.
//
// Only published configs are visible here. Options are always loaded with their
// config, and every region modifier is offered.
type ICalculatorUseCase interface {
	ListBuildingTypes(ctx context.Context) ([]entities.BuildingTypeConfig, error)
	GetCatalog(ctx context.Context, slug string) (entities.PricingCatalog, error)
	ListRegions(ctx context.Context) ([]entities.RegionModifier, error)
	Quote(ctx context.Context, cmd QuoteCommand) (entities.Quotation, error)
}

type CalculatorUseCase struct {
	configs interfaces.IBuildingTypeConfigRepository
	options interfaces.ICalculatorOptionRepository
	regions interfaces.IRegionModifierRepository
	cache   interfaces.ICatalogCache
}

var _ ICalculatorUseCase = (*CalculatorUseCase)(nil)

// NewCalculatorUseCase wires the calculator. cache may be nil to always read the store.
func NewCalculatorUseCase(
	configs interfaces.IBuildingTypeConfigRepository,
	options interfaces.ICalculatorOptionRepository,
	regions interfaces.IRegionModifierRepository,
	cache interfaces.ICatalogCache,
) *CalculatorUseCase {
	return &CalculatorUseCase{configs: configs, options: options, regions: regions, cache: cache}
}

func (u *CalculatorUseCase) ListBuildingTypes(ctx context.Context) ([]entities.BuildingTypeConfig, error) {
	if u.cache != nil {
		if cached, ok := u.cache.GetBuildingTypes(ctx); ok {
			return cached, nil
		}
	}

	configs, err := u.configs.List(ctx, true)
	if err != nil {
		log.Printf("[calculator][usecase] list building types failed err=%v", err)
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetBuildingTypes(ctx, configs); err != nil {
			log.Printf("[calculator][usecase] cache building types failed err=%v", err)
		}
	}
	return configs, nil
}

func (u *CalculatorUseCase) GetCatalog(ctx context.Context, slug string) (entities.PricingCatalog, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.PricingCatalog{}, ErrMissingBuildingType
	}

	if u.cache != nil {
		if cached, ok := u.cache.GetCatalog(ctx, slug); ok {
			return cached, nil
		}
	}

	cfg, err := u.configs.GetBySlug(ctx, slug, true)
	if err != nil {
		log.Printf("[calculator][usecase] load config failed slug=%s err=%v", slug, err)
		return entities.PricingCatalog{}, err
	}
	if cfg.ID == "" {
		return entities.PricingCatalog{}, ErrCatalogNotFound
	}

	options, err := u.options.ListByConfigID(ctx, cfg.ID)
	if err != nil {
		log.Printf("[calculator][usecase] load options failed slug=%s config_id=%s err=%v", slug, cfg.ID, err)
		return entities.PricingCatalog{}, err
	}
	if options == nil {
		options = []entities.CalculatorOption{}
	}

	catalog := entities.PricingCatalog{Config: cfg, Options: options}
	if u.cache != nil {
		if err := u.cache.SetCatalog(ctx, slug, catalog); err != nil {
			log.Printf("[calculator][usecase] cache catalog failed slug=%s err=%v", slug, err)
		}
	}
	return catalog, nil
}

func (u *CalculatorUseCase) ListRegions(ctx context.Context) ([]entities.RegionModifier, error) {
	if u.cache != nil {
		if cached, ok := u.cache.GetRegions(ctx); ok {
			return cached, nil
		}
	}

	regions, err := u.regions.List(ctx)
	if err != nil {
		log.Printf("[calculator][usecase] list regions failed err=%v", err)
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetRegions(ctx, regions); err != nil {
			log.Printf("[calculator][usecase] cache regions failed err=%v", err)
		}
	}
	return regions, nil
}

// Quote validates the form, resolves the catalog and region, then runs the engine.
// The engine is never invoked when any of those steps fails.
func (u *CalculatorUseCase) Quote(ctx context.Context, cmd QuoteCommand) (entities.Quotation, error) {
	cmd.Slug = strings.TrimSpace(cmd.Slug)
	cmd.Region = strings.TrimSpace(cmd.Region)
	if cmd.Slug == "" {
		return entities.Quotation{}, ErrMissingBuildingType
	}
	if cmd.Area <= 0 {
		return entities.Quotation{}, ErrInvalidArea
	}
	if cmd.Area > quotation.MaxArea {
		return entities.Quotation{}, ErrAreaTooLarge
	}
	if cmd.Region == "" {
		return entities.Quotation{}, ErrMissingRegion
	}

	catalog, err := u.GetCatalog(ctx, cmd.Slug)
	if err != nil {
		return entities.Quotation{}, err
	}

	region, err := u.findRegion(ctx, cmd.Region)
	if err != nil {
		return entities.Quotation{}, err
	}

	applied, unknown := quotation.AppliedOptions(catalog, cmd.Options)
	if len(unknown) > 0 {
		log.Printf("[calculator][usecase] ignoring unknown options slug=%s options=%q", cmd.Slug, unknown)
	}

	result := quotation.Compute(catalog, float64(cmd.Area), cmd.Options, region.Coefficient)
	log.Printf("[calculator][usecase] quote slug=%s area=%d region=%q price=%d-%d weeks=%d-%d",
		cmd.Slug, cmd.Area, region.Region, result.PriceMin, result.PriceMax, result.DurationMin, result.DurationMax)

	return entities.Quotation{
		Slug:              catalog.Config.Slug,
		BuildingType:      catalog.Config.BuildingType,
		Area:              cmd.Area,
		Region:            region.Region,
		RegionCoefficient: region.Coefficient,
		AppliedOptions:    applied,
		Result:            result,
	}, nil
}

func (u *CalculatorUseCase) findRegion(ctx context.Context, name string) (entities.RegionModifier, error) {
	regions, err := u.ListRegions(ctx)
	if err != nil {
		return entities.RegionModifier{}, err
	}
	for _, r := range regions {
		if r.Region == name {
			return r, nil
		}
	}
	return entities.RegionModifier{}, ErrRegionNotFound
}
