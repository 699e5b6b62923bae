package etl

import (
	"go.uber.org/zap"

	"github.com/fjc-seed/internal/attorney"
	"github.com/fjc-seed/internal/court"
	"github.com/fjc-seed/internal/debug"
	"github.com/fjc-seed/internal/export"
	"github.com/fjc-seed/internal/normalize"
)

// Pipeline turns the two judge extracts into one seed migration.
// Stages run strictly in order: normalize, dedup, registry, attorneys.
type Pipeline struct {
	tabular      normalize.Normalizer
	hierarchical normalize.Normalizer
	fixture      attorney.Fixture
	logger       *zap.Logger
	localDebug   bool
}

// Result holds the output of every stage of one run
type Result struct {
	TabularCount      int
	HierarchicalCount int
	Judges            []normalize.Judge
	Registry          *court.Registry
	Attorneys         []attorney.Attorney
}

// NewPipeline creates a new pipeline
func NewPipeline(resolver normalize.CourtResolver, rules normalize.Rules, fixture attorney.Fixture, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		tabular:      normalize.NewTabularNormalizer(resolver, rules, logger),
		hierarchical: normalize.NewHierarchicalNormalizer(resolver, rules, logger),
		fixture:      fixture,
		logger:       logger,
		localDebug:   logger.Core().Enabled(zap.DebugLevel),
	}
}

// Run executes the pipeline over already-read source records
func (p *Pipeline) Run(rows []normalize.TabularRow, entries []normalize.PersonEntry) *Result {
	defer debug.Timing(p.logger, p.localDebug, "pipeline run")()

	return p.Assemble(p.NormalizeTabular(rows), p.NormalizeHierarchical(entries))
}

// NormalizeTabular admits and maps the biographical directory rows
func (p *Pipeline) NormalizeTabular(rows []normalize.TabularRow) []normalize.Judge {
	judges := normalize.NormalizeAll(p.tabular, rows)
	p.logger.Info("Normalized tabular source",
		zap.Int("rows", len(rows)),
		zap.Int("admitted", len(judges)))
	return judges
}

// NormalizeHierarchical admits and maps the magistrate extract entries
func (p *Pipeline) NormalizeHierarchical(entries []normalize.PersonEntry) []normalize.Judge {
	judges := normalize.NormalizeAll(p.hierarchical, entries)
	p.logger.Info("Normalized magistrate source",
		zap.Int("entries", len(entries)),
		zap.Int("admitted", len(judges)))
	return judges
}

// Assemble runs the stages after normalization: dedup with the tabular
// stream first, then the court registry, then attorney assignment
func (p *Pipeline) Assemble(tabular, hierarchical []normalize.Judge) *Result {
	judges := Deduplicate(tabular, hierarchical)
	p.logger.Info("Deduplicated judges",
		zap.Int("before", len(tabular)+len(hierarchical)),
		zap.Int("after", len(judges)))

	refs := make([]court.Ref, 0, len(judges))
	for _, j := range judges {
		refs = append(refs, court.Ref{ID: j.CourtID, FullName: j.CourtFullName})
	}
	registry := court.BuildRegistry(refs)

	attorneys := attorney.Generate(p.fixture, registry.IDs())
	p.logger.Info("Built registry",
		zap.Int("courts", registry.Len()),
		zap.Int("attorneys", len(attorneys)))

	return &Result{
		TabularCount:      len(tabular),
		HierarchicalCount: len(hierarchical),
		Judges:            judges,
		Registry:          registry,
		Attorneys:         attorneys,
	}
}

// Migration packages the result for rendering
func (r *Result) Migration(sources ...string) export.Migration {
	return export.Migration{
		Courts:         r.Registry.Courts(),
		Judges:         r.Judges,
		Attorneys:      r.Attorneys,
		GuardThreshold: export.DefaultGuardThreshold,
		Sources:        sources,
	}
}
