package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"integraservicios/internal/config"
	"integraservicios/internal/db"
	"integraservicios/internal/logger"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
)

//go:embed catalog.json
var defaultCatalog []byte

// catalog is the seed file layout. Resources reference their type by name.
type catalog struct {
	Types     []string `json:"tipos_recurso"`
	Resources []struct {
		ID       uint   `json:"id_recurso"`
		Name     string `json:"nombre"`
		TypeName string `json:"tipo_recurso"`
		Schedule string `json:"horario_disponibilidad"`
		Status   string `json:"estado"`
	} `json:"recursos"`
	Employees []model.Employee `json:"empleados"`
}

type result struct {
	types, resources, employees int
}

func main() {
	file := flag.String("file", "", "catalogue JSON file, defaults to the embedded catalogue")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(zapcore.InfoLevel, "seed").Fatal("config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel, "seed")
	defer func() { _ = log.Sync() }()

	raw := defaultCatalog
	if *file != "" {
		if raw, err = os.ReadFile(*file); err != nil {
			log.Fatal("read catalogue", zap.String("file", *file), zap.Error(err))
		}
	}
	var cat catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		log.Fatal("parse catalogue", zap.Error(err))
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB, cfg.Database.Reset, log); err != nil {
		log.Fatal("db migrate", zap.Error(err))
	}

	res, err := seed(context.Background(), repository.NewResourceRepository(gormDB), repository.NewEmployeeRepository(gormDB), cat)
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}
	log.Info("seed completed",
		zap.Int("types", res.types),
		zap.Int("resources", res.resources),
		zap.Int("employees", res.employees))
}

// seed upserts types first so resources can resolve their type id by name.
func seed(ctx context.Context, resources repository.ResourceRepository, employees repository.EmployeeRepository, cat catalog) (result, error) {
	var res result

	typeIDs := make(map[string]uint, len(cat.Types))
	for _, name := range cat.Types {
		rt := model.ResourceType{Name: name}
		if err := resources.UpsertType(ctx, &rt); err != nil {
			return res, fmt.Errorf("type %q: %w", name, err)
		}
		typeIDs[name] = rt.ID
		res.types++
	}

	for _, item := range cat.Resources {
		typeID, ok := typeIDs[item.TypeName]
		if !ok {
			return res, fmt.Errorf("resource %q: unknown type %q", item.Name, item.TypeName)
		}
		status := item.Status
		if status == "" {
			status = model.ResourceStatusAvailable
		}
		resource := model.Resource{
			ID:             item.ID,
			Name:           item.Name,
			ResourceTypeID: typeID,
			Schedule:       item.Schedule,
			Status:         status,
		}
		if err := resources.UpsertResource(ctx, &resource); err != nil {
			return res, fmt.Errorf("resource %q: %w", item.Name, err)
		}
		res.resources++
	}

	for i := range cat.Employees {
		if err := employees.Upsert(ctx, &cat.Employees[i]); err != nil {
			return res, fmt.Errorf("employee %q: %w", cat.Employees[i].Name, err)
		}
		res.employees++
	}
	return res, nil
}
