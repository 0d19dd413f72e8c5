package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wfca-mz/fire-widget/internal/domain"
	"github.com/wfca-mz/fire-widget/pkg/e"
)

// FireRepo runs the active-fires query. Incident locations are the primary
// source so every active fire is returned, with perimeter bbox data joined
// in when a perimeter exists for the same irwinid. Centroid and suggested
// zoom are computed here: bbox midpoint (rounded to 6 decimals) and a step
// function of the larger bbox edge, or the incident point with zoom 13 when
// no perimeter is mapped.
type FireRepo struct {
	pool         *pgxpool.Pool
	logger       *slog.Logger
	queryTimeout time.Duration
}

func NewFireRepo(pool *pgxpool.Pool, logger *slog.Logger, queryTimeout time.Duration) *FireRepo {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &FireRepo{pool: pool, logger: logger, queryTimeout: queryTimeout}
}

const activeFiresBase = `
WITH
latest_incidents AS (
    SELECT DISTINCT ON (irwinid)
        irwinid,
        incidentname,
        wfca_reportedacres,
        poostate,
        poocounty,
        percentcontained,
        modifiedondatetime_dt,
        ST_X(ST_Transform(geom::geometry, 4326)) AS lng,
        ST_Y(ST_Transform(geom::geometry, 4326)) AS lat
    FROM data.mvw_wfigs_incident_locations_current_history
    WHERE modifiedondatetime_dt >= NOW() - INTERVAL '7 days'
      AND wfca_reportedacres >= 1
    ORDER BY irwinid, modifiedondatetime_dt DESC NULLS LAST
),
perimeter_bbox AS (
    SELECT
        p.attr_irwinid,
        p.gid,
        p.globalid,
        (p.bbox::jsonb -> 'coordinates' -> 0 -> 0 -> 0)::float AS min_lng,
        (p.bbox::jsonb -> 'coordinates' -> 0 -> 0 -> 1)::float AS min_lat,
        (p.bbox::jsonb -> 'coordinates' -> 0 -> 2 -> 0)::float AS max_lng,
        (p.bbox::jsonb -> 'coordinates' -> 0 -> 2 -> 1)::float AS max_lat
    FROM data.vw_wfigs_interagency_perimeters_current_bbox p
)
SELECT
    COALESCE(pb.gid::text, li.irwinid::text) AS gid,
    li.incidentname AS fire_name,
    li.modifiedondatetime_dt AS modified_at,
    li.irwinid::text AS irwin_id,
    pb.globalid::text AS globalid,
    li.wfca_reportedacres AS acres,
    li.poostate AS state,
    li.poocounty AS county,
    li.percentcontained AS percent_contained,
    COALESCE(
        ROUND(((pb.min_lng + pb.max_lng) / 2)::numeric, 6),
        ROUND(li.lng::numeric, 6)
    )::float8 AS center_lng,
    COALESCE(
        ROUND(((pb.min_lat + pb.max_lat) / 2)::numeric, 6),
        ROUND(li.lat::numeric, 6)
    )::float8 AS center_lat,
    CASE
        WHEN pb.min_lng IS NOT NULL THEN
            CASE
                WHEN GREATEST(pb.max_lng - pb.min_lng, pb.max_lat - pb.min_lat) > 0.5 THEN 9
                WHEN GREATEST(pb.max_lng - pb.min_lng, pb.max_lat - pb.min_lat) > 0.1 THEN 11
                WHEN GREATEST(pb.max_lng - pb.min_lng, pb.max_lat - pb.min_lat) > 0.01 THEN 13
                ELSE 15
            END
        ELSE 13
    END AS suggested_zoom
FROM latest_incidents li
LEFT JOIN perimeter_bbox pb ON li.irwinid = pb.attr_irwinid
WHERE 1=1`

// ListActive builds and runs the filtered, ordered, bounded query. Filters
// are appended as bound parameters only; user input never lands in the SQL
// text.
func (r *FireRepo) ListActive(ctx context.Context, q domain.FireQuery) ([]domain.FireRow, error) {
	const op = "postgres.Fire.ListActive"

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var sb strings.Builder
	sb.WriteString(activeFiresBase)

	args := make([]any, 0, 4)

	// State filter accepts both "TX" and "US-TX" spellings.
	if q.State != "" {
		args = append(args, q.State, "US-"+q.State)
		fmt.Fprintf(&sb, " AND (UPPER(li.poostate) = UPPER($%d) OR UPPER(li.poostate) = UPPER($%d))",
			len(args)-1, len(args))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		fmt.Fprintf(&sb, " AND UPPER(li.incidentname) LIKE UPPER($%d)", len(args))
	}

	// Ordering matches the widget default: biggest fires first.
	args = append(args, q.Limit)
	fmt.Fprintf(&sb,
		" ORDER BY li.wfca_reportedacres DESC NULLS LAST, li.modifiedondatetime_dt DESC NULLS LAST, li.incidentname ASC LIMIT $%d",
		len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	fires := make([]domain.FireRow, 0, q.Limit)
	for rows.Next() {
		var fr domain.FireRow
		if err := rows.Scan(
			&fr.GID,
			&fr.Name,
			&fr.ModifiedAt,
			&fr.IrwinID,
			&fr.GlobalID,
			&fr.Acres,
			&fr.State,
			&fr.County,
			&fr.PercentContained,
			&fr.CenterLng,
			&fr.CenterLat,
			&fr.SuggestedZoom,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		fires = append(fires, fr)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return fires, nil
}
