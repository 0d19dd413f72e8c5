//go:build integration

package postgres

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

// Plain tables stand in for the upstream materialized view and bbox view;
// the query only cares about column names and types.
func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;
		CREATE SCHEMA IF NOT EXISTS data;

		CREATE TABLE IF NOT EXISTS data.mvw_wfigs_incident_locations_current_history (
			irwinid uuid NOT NULL,
			incidentname text,
			wfca_reportedacres double precision,
			poostate text,
			poocounty text,
			percentcontained double precision,
			modifiedondatetime_dt timestamptz,
			geom geography(Point, 4326) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS data.vw_wfigs_interagency_perimeters_current_bbox (
			gid serial PRIMARY KEY,
			attr_irwinid uuid NOT NULL,
			globalid uuid NOT NULL,
			bbox text NOT NULL
		);
	`)
	return err
}

func truncateFires(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE data.mvw_wfigs_incident_locations_current_history;
		TRUNCATE TABLE data.vw_wfigs_interagency_perimeters_current_bbox RESTART IDENTITY;
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func newTestRepo() *FireRepo {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
	return NewFireRepo(testPool, logger, 5*time.Second)
}

type incidentFixture struct {
	irwin     uuid.UUID
	name      string
	acres     float64
	state     string
	county    string
	contained float64
	modified  time.Time
	lng, lat  float64
}

func insertIncident(t *testing.T, f incidentFixture) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO data.mvw_wfigs_incident_locations_current_history
			(irwinid, incidentname, wfca_reportedacres, poostate, poocounty,
			 percentcontained, modifiedondatetime_dt, geom)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			ST_SetSRID(ST_MakePoint($8, $9), 4326)::geography)`,
		f.irwin, f.name, f.acres, f.state, f.county, f.contained, f.modified, f.lng, f.lat)
	if err != nil {
		t.Fatalf("insert incident: %v", err)
	}
}

func insertPerimeter(t *testing.T, irwin uuid.UUID, minLng, minLat, maxLng, maxLat float64) {
	t.Helper()
	bbox := fmt.Sprintf(
		`{"type":"Polygon","coordinates":[[[%g,%g],[%g,%g],[%g,%g],[%g,%g],[%g,%g]]]}`,
		minLng, minLat, minLng, maxLat, maxLng, maxLat, maxLng, minLat, minLng, minLat)
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO data.vw_wfigs_interagency_perimeters_current_bbox
			(attr_irwinid, globalid, bbox)
		VALUES ($1, $2, $3)`,
		irwin, uuid.New(), bbox)
	if err != nil {
		t.Fatalf("insert perimeter: %v", err)
	}
}

func recently() time.Time { return time.Now().UTC().Add(-2 * time.Hour) }

func TestListActive_FiltersStaleAndTiny(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Current Fire", acres: 500, state: "US-CA",
		modified: recently(), lng: -120, lat: 38,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Stale Fire", acres: 500, state: "US-CA",
		modified: time.Now().UTC().Add(-8 * 24 * time.Hour), lng: -120, lat: 38,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Spot Fire", acres: 0.5, state: "US-CA",
		modified: recently(), lng: -120, lat: 38,
	})

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 1 || *rows[0].Name != "Current Fire" {
		t.Fatalf("expected only the recent sizeable fire, got %+v", rows)
	}
}

func TestListActive_LatestReportPerIncident(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	irwin := uuid.New()
	insertIncident(t, incidentFixture{
		irwin: irwin, name: "Bear Fire", acres: 100, state: "US-OR",
		contained: 10, modified: time.Now().UTC().Add(-30 * time.Hour), lng: -121, lat: 44,
	})
	insertIncident(t, incidentFixture{
		irwin: irwin, name: "Bear Fire", acres: 900, state: "US-OR",
		contained: 60, modified: recently(), lng: -121, lat: 44,
	})

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("history rows must collapse to one fire, got %d", len(rows))
	}
	if *rows[0].Acres != 900 || *rows[0].PercentContained != 60 {
		t.Fatalf("expected the newest report, got %+v", rows[0])
	}
}

func TestListActive_OrderByAcresAndLimit(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Small TX Fire", acres: 1200, state: "US-TX",
		modified: recently(), lng: -99, lat: 31,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Big TX Fire", acres: 50000, state: "US-TX",
		modified: recently(), lng: -100, lat: 32,
	})

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 1, State: "TX"})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 1 || *rows[0].Name != "Big TX Fire" {
		t.Fatalf("expected the biggest fire first, got %+v", rows)
	}
}

func TestListActive_StateMatchesBothSpellings(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Prefixed", acres: 100, state: "US-CA",
		modified: recently(), lng: -120, lat: 38,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Bare", acres: 100, state: "CA",
		modified: recently(), lng: -120, lat: 38,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Elsewhere", acres: 100, state: "US-NV",
		modified: recently(), lng: -116, lat: 39,
	})

	for _, state := range []string{"CA", "ca"} {
		rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20, State: state})
		if err != nil {
			t.Fatalf("ListActive(%s): %v", state, err)
		}
		if len(rows) != 2 {
			t.Fatalf("state=%s: expected both spellings matched, got %d rows", state, len(rows))
		}
	}
}

func TestListActive_SearchCaseInsensitiveSubstring(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Cedar Creek", acres: 100, state: "US-WA",
		modified: recently(), lng: -120, lat: 48,
	})
	insertIncident(t, incidentFixture{
		irwin: uuid.New(), name: "Bear Gulch", acres: 100, state: "US-WA",
		modified: recently(), lng: -121, lat: 47,
	})

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20, Search: "cedar"})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 1 || *rows[0].Name != "Cedar Creek" {
		t.Fatalf("expected substring match, got %+v", rows)
	}
}

func TestListActive_PerimeterCentroidAndZoom(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	cases := []struct {
		name     string
		span     float64
		wantZoom int
	}{
		{"Huge", 1.0, 9},
		{"Large", 0.2, 11},
		{"Medium", 0.02, 13},
		{"Tiny", 0.005, 15},
	}
	for i, c := range cases {
		irwin := uuid.New()
		baseLng := -120.0 + float64(i)*2
		insertIncident(t, incidentFixture{
			irwin: irwin, name: c.name, acres: 100 + float64(i), state: "US-CA",
			modified: recently(), lng: baseLng, lat: 38,
		})
		insertPerimeter(t, irwin, baseLng, 38, baseLng+c.span, 38+c.span)
	}

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != len(cases) {
		t.Fatalf("expected %d rows got %d", len(cases), len(rows))
	}

	byName := make(map[string]domain.FireRow, len(rows))
	for _, r := range rows {
		byName[*r.Name] = r
	}
	for i, c := range cases {
		row, ok := byName[c.name]
		if !ok {
			t.Fatalf("fire %q missing from result", c.name)
		}
		if row.SuggestedZoom != c.wantZoom {
			t.Fatalf("%s: expected zoom %d got %d", c.name, c.wantZoom, row.SuggestedZoom)
		}
		baseLng := -120.0 + float64(i)*2
		wantLng := baseLng + c.span/2
		wantLat := 38 + c.span/2
		if diff := row.CenterLng - wantLng; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("%s: centroid lng %v want %v", c.name, row.CenterLng, wantLng)
		}
		if diff := row.CenterLat - wantLat; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("%s: centroid lat %v want %v", c.name, row.CenterLat, wantLat)
		}
		if row.GlobalID == nil {
			t.Fatalf("%s: expected perimeter globalid", c.name)
		}
	}
}

func TestListActive_NoPerimeterFallsBackToPoint(t *testing.T) {
	truncateFires(t)
	repo := newTestRepo()

	irwin := uuid.New()
	insertIncident(t, incidentFixture{
		irwin: irwin, name: "Point Fire", acres: 100, state: "US-ID",
		modified: recently(), lng: -114.123456789, lat: 43.987654321,
	})

	rows, err := repo.ListActive(context.Background(), domain.FireQuery{Limit: 20})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	row := rows[0]
	if row.SuggestedZoom != 13 {
		t.Fatalf("expected fallback zoom 13, got %d", row.SuggestedZoom)
	}
	// Coordinates round to 6 decimals.
	if row.CenterLng != -114.123457 || row.CenterLat != 43.987654 {
		t.Fatalf("unexpected rounded point: (%v, %v)", row.CenterLng, row.CenterLat)
	}
	if row.GID != irwin.String() {
		t.Fatalf("without a perimeter gid falls back to irwinid, got %q", row.GID)
	}
	if row.GlobalID != nil {
		t.Fatalf("expected nil globalid, got %v", *row.GlobalID)
	}
}
