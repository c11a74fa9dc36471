package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/fintel-lab/caseflow/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("CASEFLOW_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("CASEFLOW_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			indexConfig := getIndexConfig()

			client, err := fireconf.NewClient(ctx, projectID, databaseID)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx, indexConfig); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "submissions",
				Indexes: []fireconf.Index{
					// Queue projections: ValidationStatus ASC, SubmittedAt ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ValidationStatus", Order: fireconf.OrderAscending},
							{Path: "SubmittedAt", Order: fireconf.OrderAscending},
						},
					},
					// Queue projections: ReviewStatus ASC, SubmittedAt ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ReviewStatus", Order: fireconf.OrderAscending},
							{Path: "SubmittedAt", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "assignments",
				Indexes: []fireconf.Index{
					// ActiveFor: SubmissionID ASC, Stage ASC, Active ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "SubmissionID", Order: fireconf.OrderAscending},
							{Path: "Stage", Order: fireconf.OrderAscending},
							{Path: "Active", Order: fireconf.OrderAscending},
						},
					},
					// ListActive by assignee: AssigneeID ASC, Active ASC, AssignedAt ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "AssigneeID", Order: fireconf.OrderAscending},
							{Path: "Active", Order: fireconf.OrderAscending},
							{Path: "AssignedAt", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "audit_log",
				Indexes: []fireconf.Index{
					// Per-submission trail: SubmissionID ASC, DecidedAt ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "SubmissionID", Order: fireconf.OrderAscending},
							{Path: "DecidedAt", Order: fireconf.OrderAscending},
						},
					},
					// Actor trail: DecidedBy ASC, DecidedAt ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "DecidedBy", Order: fireconf.OrderAscending},
							{Path: "DecidedAt", Order: fireconf.OrderAscending},
						},
					},
				},
			},
		},
	}
}
