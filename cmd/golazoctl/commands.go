package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/golazo-app/golazo/internal/config"
	"github.com/golazo-app/golazo/internal/db"
	"github.com/golazo-app/golazo/internal/export"
	"github.com/golazo-app/golazo/internal/occupancy"
	"github.com/golazo-app/golazo/internal/request"
	"github.com/golazo-app/golazo/internal/scoring"
)

func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	return config.Load(cCtx.String(configFlag))
}

func openDatabase(cCtx *cli.Context) (*config.Config, *db.DB, error) {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return nil, nil, err
	}
	database, err := db.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

func migrateCommand() *cli.Command {
	run := func(step func(cfg *config.Config, cCtx *cli.Context) error) cli.ActionFunc {
		return func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}
			return step(cfg, cCtx)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: run(func(cfg *config.Config, cCtx *cli.Context) error {
					sqlDB, err := db.Open(cfg.Database.Filename)
					if err != nil {
						return err
					}
					defer sqlDB.Close()
					if err := db.MigrateUp(sqlDB); err != nil {
						return err
					}
					fmt.Fprintln(cCtx.App.Writer, "migrations applied")
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back every migration",
				Action: run(func(cfg *config.Config, cCtx *cli.Context) error {
					sqlDB, err := db.Open(cfg.Database.Filename)
					if err != nil {
						return err
					}
					defer sqlDB.Close()
					if err := db.MigrateDown(sqlDB); err != nil {
						return err
					}
					fmt.Fprintln(cCtx.App.Writer, "migrations rolled back")
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "Print the applied schema version",
				Action: run(func(cfg *config.Config, cCtx *cli.Context) error {
					sqlDB, err := db.Open(cfg.Database.Filename)
					if err != nil {
						return err
					}
					defer sqlDB.Close()
					version, dirty, err := db.MigrationVersion(sqlDB)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "Version: %d, Dirty: %v\n", version, dirty)
					return nil
				}),
			},
		},
	}
}

func scoresCommand() *cli.Command {
	newService := func(cfg *config.Config, database *db.DB) (*scoring.Service, error) {
		return scoring.NewService(database.Queries, scoring.Weights{
			Attendance: cfg.Scoring.AttendanceWeight,
			Payment:    cfg.Scoring.PaymentWeight,
		})
	}

	return &cli.Command{
		Name:  "scores",
		Usage: "Inspect and recompute responsibility scores",
		Subcommands: []*cli.Command{
			{
				Name:  "recompute",
				Usage: "Recompute one player's score or every player's",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: playerFlag, Aliases: []string{"p"}, Usage: "Player id"},
					&cli.BoolFlag{Name: allFlag, Usage: "Recompute every player with history"},
				},
				Action: func(cCtx *cli.Context) error {
					playerID := cCtx.String(playerFlag)
					if (playerID == "") == !cCtx.Bool(allFlag) {
						return fmt.Errorf("exactly one of --%s or --%s is required", playerFlag, allFlag)
					}

					cfg, database, err := openDatabase(cCtx)
					if err != nil {
						return err
					}
					defer database.Close()
					svc, err := newService(cfg, database)
					if err != nil {
						return err
					}

					if playerID != "" {
						outcome, err := svc.Recompute(cCtx.Context, playerID)
						if err != nil {
							return err
						}
						return writeJSON(cCtx.App.Writer, outcome)
					}
					batch, err := svc.RecomputeAll(cCtx.Context)
					if err != nil {
						return err
					}
					return writeJSON(cCtx.App.Writer, batch)
				},
			},
			{
				Name:  "show",
				Usage: "Print a player's persisted score",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: playerFlag, Aliases: []string{"p"}, Usage: "Player id", Required: true},
				},
				Action: func(cCtx *cli.Context) error {
					cfg, database, err := openDatabase(cCtx)
					if err != nil {
						return err
					}
					defer database.Close()
					svc, err := newService(cfg, database)
					if err != nil {
						return err
					}
					view, err := svc.Get(cCtx.Context, cCtx.String(playerFlag))
					if err != nil {
						return err
					}
					return writeJSON(cCtx.App.Writer, view)
				},
			},
		},
	}
}

func calendarCommand() *cli.Command {
	queryFlags := []cli.Flag{
		&cli.StringFlag{Name: adminFlag, Aliases: []string{"a"}, Usage: "Admin id", Required: true},
		&cli.StringFlag{Name: fieldFlag, Aliases: []string{"f"}, Usage: "Restrict to one field"},
		&cli.StringFlag{Name: dateFlag, Aliases: []string{"d"}, Usage: "Reference date (YYYY-MM-DD), defaults to today"},
	}

	withService := func(fn func(cCtx *cli.Context, svc *occupancy.Service, q occupancy.Query) error) cli.ActionFunc {
		return func(cCtx *cli.Context) error {
			cfg, database, err := openDatabase(cCtx)
			if err != nil {
				return err
			}
			defer database.Close()

			svc, err := occupancy.NewService(database.Queries, occupancy.Policy{
				StartHour: cfg.Calendar.SlotStartHour,
				EndHour:   cfg.Calendar.SlotEndHour,
			}, cfg.Location())
			if err != nil {
				return err
			}

			q := occupancy.Query{AdminID: cCtx.String(adminFlag), FieldID: cCtx.String(fieldFlag)}
			if raw := cCtx.String(dateFlag); raw != "" {
				if q.Date, err = request.ParseDate(raw, svc.Location()); err != nil {
					return err
				}
			}
			return fn(cCtx, svc, q)
		}
	}

	return &cli.Command{
		Name:  "calendar",
		Usage: "Field occupancy reports",
		Subcommands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Write the weekly occupancy grid as an xlsx workbook",
				Flags: append(queryFlags, &cli.StringFlag{
					Name:    outputFlag,
					Aliases: []string{"o"},
					Usage:   "Output path, \"-\" for stdout; defaults to calendario-<week>.xlsx",
				}),
				Action: withService(func(cCtx *cli.Context, svc *occupancy.Service, q occupancy.Query) error {
					view, err := svc.Week(cCtx.Context, q)
					if err != nil {
						return err
					}

					out := cCtx.String(outputFlag)
					if out == "" {
						out = export.Filename(view)
					}
					if out == stdoutName {
						return export.WriteWeek(view, cCtx.App.Writer)
					}
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					if err := export.WriteWeek(view, f); err != nil {
						f.Close()
						return err
					}
					if err := f.Close(); err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.ErrWriter, "wrote %s\n", out)
					return nil
				}),
			},
			{
				Name:  "free-slots",
				Usage: "Print free capacity for one day",
				Flags: queryFlags,
				Action: withService(func(cCtx *cli.Context, svc *occupancy.Service, q occupancy.Query) error {
					day, err := svc.FreeSlots(cCtx.Context, q)
					if err != nil {
						return err
					}
					return writeJSON(cCtx.App.Writer, day)
				}),
			},
		},
	}
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
