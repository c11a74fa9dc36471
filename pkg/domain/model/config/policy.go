package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// SLARule is the maximum dwell time for one (report type, stage) pair.
// A submission older than the threshold for its current stage is overdue.
type SLARule struct {
	ReportType types.ReportType
	Stage      types.Stage
	Threshold  time.Duration
}

// Validate checks if the SLA rule is valid
func (r *SLARule) Validate() error {
	if !r.ReportType.IsValid() {
		return goerr.New("invalid report type in SLA rule", goerr.V("report_type", r.ReportType))
	}
	if !r.Stage.IsValid() {
		return goerr.New("invalid stage in SLA rule", goerr.V("stage", r.Stage))
	}
	if r.Threshold <= 0 {
		return goerr.New("SLA threshold must be positive",
			goerr.V("report_type", r.ReportType), goerr.V("stage", r.Stage))
	}
	return nil
}

// Entity is one reporting entity known to the workflow, carrying the
// configured risk tier used by flagged-queue ordering.
type Entity struct {
	ID       types.EntityID
	Name     string
	RiskTier types.RiskTier
}

// Validate checks if the entity is valid
func (e *Entity) Validate() error {
	if e.ID == "" {
		return goerr.New("entity ID is required")
	}
	if e.Name == "" {
		return goerr.New("entity name is required", goerr.V("id", e.ID))
	}
	if !e.RiskTier.IsValid() {
		return goerr.New("invalid entity risk tier", goerr.V("id", e.ID), goerr.V("risk_tier", e.RiskTier))
	}
	return nil
}

// ActorPool is the set of actors eligible for auto-assignment at a stage
type ActorPool struct {
	Stage  types.Stage
	Actors []types.ActorID
}

// Validate checks if the actor pool is valid
func (p *ActorPool) Validate() error {
	if !p.Stage.IsValid() {
		return goerr.New("invalid stage in actor pool", goerr.V("stage", p.Stage))
	}
	if len(p.Actors) == 0 {
		return goerr.New("actor pool is empty", goerr.V("stage", p.Stage))
	}
	seen := make(map[types.ActorID]bool)
	for _, a := range p.Actors {
		if a == "" {
			return goerr.New("empty actor ID in pool", goerr.V("stage", p.Stage))
		}
		if seen[a] {
			return goerr.New("duplicate actor in pool", goerr.V("stage", p.Stage), goerr.V("actor", a))
		}
		seen[a] = true
	}
	return nil
}

// Policy is the workflow policy: SLA thresholds, reporting entities with
// their risk tiers, and per-stage auto-assignment pools. Loaded once at
// startup from the policy TOML; immutable afterwards.
type Policy struct {
	SLA      []SLARule
	Entities []Entity
	Pools    []ActorPool
}

// Validate checks if the policy is valid and free of duplicates
func (p *Policy) Validate() error {
	slaSeen := make(map[string]bool)
	for i := range p.SLA {
		if err := p.SLA[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid SLA rule")
		}
		key := p.SLA[i].ReportType.String() + "/" + p.SLA[i].Stage.String()
		if slaSeen[key] {
			return goerr.New("duplicate SLA rule", goerr.V("rule", key))
		}
		slaSeen[key] = true
	}

	entitySeen := make(map[types.EntityID]bool)
	for i := range p.Entities {
		if err := p.Entities[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid entity")
		}
		if entitySeen[p.Entities[i].ID] {
			return goerr.New("duplicate entity", goerr.V("id", p.Entities[i].ID))
		}
		entitySeen[p.Entities[i].ID] = true
	}

	poolSeen := make(map[types.Stage]bool)
	for i := range p.Pools {
		if err := p.Pools[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid actor pool")
		}
		if poolSeen[p.Pools[i].Stage] {
			return goerr.New("duplicate actor pool", goerr.V("stage", p.Pools[i].Stage))
		}
		poolSeen[p.Pools[i].Stage] = true
	}

	return nil
}

// Threshold returns the SLA threshold for a (report type, stage) pair
func (p *Policy) Threshold(rt types.ReportType, stage types.Stage) (time.Duration, bool) {
	for i := range p.SLA {
		if p.SLA[i].ReportType == rt && p.SLA[i].Stage == stage {
			return p.SLA[i].Threshold, true
		}
	}
	return 0, false
}

// RiskTier returns the configured tier for an entity. Unknown entities
// default to LOW so a config gap never promotes a submission.
func (p *Policy) RiskTier(id types.EntityID) types.RiskTier {
	for i := range p.Entities {
		if p.Entities[i].ID == id {
			return p.Entities[i].RiskTier
		}
	}
	return types.RiskTierLow
}

// EntityName returns the display name for an entity, or the raw ID if
// the entity is not configured
func (p *Policy) EntityName(id types.EntityID) string {
	for i := range p.Entities {
		if p.Entities[i].ID == id {
			return p.Entities[i].Name
		}
	}
	return id.String()
}

// Pool returns the eligible actors for a stage
func (p *Policy) Pool(stage types.Stage) []types.ActorID {
	for i := range p.Pools {
		if p.Pools[i].Stage == stage {
			return p.Pools[i].Actors
		}
	}
	return nil
}
