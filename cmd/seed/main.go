package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/config"
	"github.com/caremetrix/duty-roster/backend/internal/repository"
	"github.com/caremetrix/duty-roster/backend/internal/seed"
	"github.com/caremetrix/duty-roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var departmentID int64

	flag.IntVar(&op, "op", 0, "operation (1: insert random users, 2: insert random employees, 3: seed reference data)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&departmentID, "department-id", 0, "department to insert random employees into")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not dial; ping to surface connection errors now.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("invalid number of users")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, "example.com")
				if err != nil {
					slog.Error("failed to generate random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("invalid number of employees")
			return
		}

		// Pick a department at random when none is given.
		if departmentID == 0 {
			departments, err := repo.GetAllDepartments()
			if err != nil || len(departments) == 0 {
				slog.Error("no departments available, seed reference data first")
				return
			}
			departmentID = departments[rand.Intn(len(departments))].ID
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee(departmentID)
			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("failed to insert employee", slog.String("name", employee.FullName()), slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("employees inserted", slog.Int("count", n-cnt), slog.Int64("department_id", departmentID))
	case 3:
		seed.SeedReferenceData(repo)
	default:
		slog.Error("invalid operation")
	}
}
