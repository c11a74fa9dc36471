package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/fintel-lab/caseflow/pkg/domain/model/config"
	"github.com/fintel-lab/caseflow/pkg/domain/types"
)

// Policy holds the CLI flag pointing at the workflow policy file
type Policy struct {
	path string
}

// Flags returns CLI flags for policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to workflow policy TOML file",
			Required:    true,
			Sources:     cli.EnvVars("CASEFLOW_POLICY"),
			Destination: &p.path,
		},
	}
}

// Path returns the configured policy file path
func (p *Policy) Path() string {
	return p.path
}

// Configure loads and validates the policy file
func (p *Policy) Configure() (*domainConfig.Policy, error) {
	return LoadPolicy(p.path)
}

// SLARuleConfig is one SLA threshold in the policy TOML
type SLARuleConfig struct {
	ReportType string `toml:"report_type"`
	Stage      string `toml:"stage"`
	Threshold  string `toml:"threshold"`
}

// EntityConfig is one reporting entity in the policy TOML
type EntityConfig struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	RiskTier string `toml:"risk_tier"`
}

// PoolConfig is one auto-assignment pool in the policy TOML
type PoolConfig struct {
	Stage  string   `toml:"stage"`
	Actors []string `toml:"actors"`
}

// PolicyFile is the TOML schema of the workflow policy
type PolicyFile struct {
	SLA      []SLARuleConfig `toml:"sla"`
	Entities []EntityConfig  `toml:"entity"`
	Pools    []PoolConfig    `toml:"pool"`
}

// ToDomain converts the TOML schema into the domain policy
func (f *PolicyFile) ToDomain() (*domainConfig.Policy, error) {
	policy := &domainConfig.Policy{
		SLA:      make([]domainConfig.SLARule, len(f.SLA)),
		Entities: make([]domainConfig.Entity, len(f.Entities)),
		Pools:    make([]domainConfig.ActorPool, len(f.Pools)),
	}

	for i, rule := range f.SLA {
		threshold, err := time.ParseDuration(rule.Threshold)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid SLA threshold",
				goerr.V("report_type", rule.ReportType), goerr.V("threshold", rule.Threshold))
		}
		policy.SLA[i] = domainConfig.SLARule{
			ReportType: types.ReportType(rule.ReportType),
			Stage:      types.Stage(rule.Stage),
			Threshold:  threshold,
		}
	}

	for i, entity := range f.Entities {
		policy.Entities[i] = domainConfig.Entity{
			ID:       types.EntityID(entity.ID),
			Name:     entity.Name,
			RiskTier: types.RiskTier(entity.RiskTier),
		}
	}

	for i, pool := range f.Pools {
		actors := make([]types.ActorID, len(pool.Actors))
		for j, actor := range pool.Actors {
			actors[j] = types.ActorID(actor)
		}
		policy.Pools[i] = domainConfig.ActorPool{
			Stage:  types.Stage(pool.Stage),
			Actors: actors,
		}
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "policy validation failed")
	}
	return policy, nil
}

// LoadPolicy loads the workflow policy from a TOML file
func LoadPolicy(path string) (*domainConfig.Policy, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var file PolicyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy TOML", goerr.V("path", path))
	}

	return file.ToDomain()
}
