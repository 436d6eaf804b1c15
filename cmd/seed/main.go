// seed puebla la base de datos con un catálogo de ejemplo y un ledger de
// movimientos que cubre entradas, traslados y salidas sobre los últimos 30 días.
//
// Uso: go run ./cmd/seed
// Idempotencia: los IDs son fijos, así que una segunda corrida falla con
// duplicados; limpiar las tablas antes de re-sembrar.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
)

type movRow struct {
	id   string
	from string
	to   string
	prod string
	qty  int64
	ts   time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	products := []*entity.Product{
		{ID: "PROD001", Name: "Laptop Computer", Description: "High-performance business laptop"},
		{ID: "PROD002", Name: "Wireless Mouse", Description: "Ergonomic wireless mouse"},
		{ID: "PROD003", Name: "Office Chair", Description: "Comfortable ergonomic office chair"},
		{ID: "PROD004", Name: "Monitor 24\"", Description: "24-inch LED monitor"},
	}
	locations := []*entity.Location{
		{ID: "WH001", Name: "Main Warehouse", Description: "Primary storage facility"},
		{ID: "WH002", Name: "Secondary Warehouse", Description: "Overflow storage facility"},
		{ID: "STORE001", Name: "Retail Store A", Description: "Downtown retail location"},
		{ID: "STORE002", Name: "Retail Store B", Description: "Mall retail location"},
	}

	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fail("producto %s: %v", p.ID, err)
		}
	}
	for _, l := range locations {
		if err := locationRepo.Create(l); err != nil {
			fail("ubicación %s: %v", l.ID, err)
		}
	}

	base := time.Now().UTC().Add(-30 * 24 * time.Hour)
	day := 24 * time.Hour

	var movements []movRow
	// Entradas iniciales a bodegas
	for i, r := range []movRow{
		{id: "MOV001", to: "WH001", prod: "PROD001", qty: 50},
		{id: "MOV002", to: "WH001", prod: "PROD002", qty: 100},
		{id: "MOV003", to: "WH001", prod: "PROD003", qty: 25},
		{id: "MOV004", to: "WH001", prod: "PROD004", qty: 30},
		{id: "MOV005", to: "WH002", prod: "PROD001", qty: 30},
		{id: "MOV006", to: "WH002", prod: "PROD002", qty: 75},
	} {
		r.ts = base.Add(time.Duration(i) * time.Hour)
		movements = append(movements, r)
	}
	// Traslados de bodegas a tiendas
	for i, r := range []movRow{
		{id: "MOV007", from: "WH001", to: "STORE001", prod: "PROD001", qty: 10},
		{id: "MOV008", from: "WH001", to: "STORE001", prod: "PROD002", qty: 20},
		{id: "MOV009", from: "WH001", to: "STORE001", prod: "PROD003", qty: 5},
		{id: "MOV010", from: "WH001", to: "STORE002", prod: "PROD001", qty: 8},
		{id: "MOV011", from: "WH001", to: "STORE002", prod: "PROD002", qty: 15},
		{id: "MOV012", from: "WH001", to: "STORE002", prod: "PROD004", qty: 10},
		{id: "MOV013", from: "WH002", to: "STORE001", prod: "PROD001", qty: 5},
		{id: "MOV014", from: "WH002", to: "STORE001", prod: "PROD002", qty: 10},
		{id: "MOV015", from: "WH002", to: "STORE002", prod: "PROD001", qty: 7},
		{id: "MOV016", from: "WH002", to: "STORE002", prod: "PROD002", qty: 12},
	} {
		r.ts = base.Add(day + time.Duration(i)*time.Hour)
		movements = append(movements, r)
	}
	// Salidas (ventas)
	for i, r := range []movRow{
		{id: "MOV017", from: "STORE001", prod: "PROD001", qty: 3},
		{id: "MOV018", from: "STORE001", prod: "PROD002", qty: 8},
		{id: "MOV019", from: "STORE001", prod: "PROD003", qty: 2},
		{id: "MOV020", from: "STORE002", prod: "PROD001", qty: 5},
		{id: "MOV021", from: "STORE002", prod: "PROD002", qty: 6},
		{id: "MOV022", from: "STORE002", prod: "PROD004", qty: 4},
	} {
		r.ts = base.Add(2*day + time.Duration(i)*time.Hour)
		movements = append(movements, r)
	}
	// Reabastecimiento y traslados entre bodegas; fechas recientes para que
	// la tendencia de 7 días del dashboard tenga actividad.
	recent := time.Now().UTC().Add(-3 * day)
	for i, r := range []movRow{
		{id: "MOV023", to: "WH001", prod: "PROD003", qty: 15},
		{id: "MOV024", to: "WH002", prod: "PROD004", qty: 20},
		{id: "MOV025", from: "WH001", to: "WH002", prod: "PROD001", qty: 10},
		{id: "MOV026", from: "WH002", to: "WH001", prod: "PROD002", qty: 25},
	} {
		r.ts = recent.Add(time.Duration(i) * 12 * time.Hour)
		movements = append(movements, r)
	}

	for _, r := range movements {
		m := &entity.Movement{
			ID:           r.id,
			Timestamp:    r.ts,
			ProductID:    r.prod,
			FromLocation: r.from,
			ToLocation:   r.to,
			Qty:          r.qty,
		}
		if err := movementRepo.Create(m); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fail("movimiento %s ya existe; limpiar las tablas antes de re-sembrar", r.id)
			}
			fail("movimiento %s: %v", r.id, err)
		}
	}

	fmt.Printf("datos de ejemplo creados: %d productos, %d ubicaciones, %d movimientos\n",
		len(products), len(locations), len(movements))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
