package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
	"openhours/internal/db"
)

const NAME_CONSTRAINT_NAME = "place_name_idx"

const placeColumns = `id, name, opening_hours, latitude, longitude, time_zone, country, subdivision, created_at`

const createPlace = `
INSERT INTO place (name, opening_hours, latitude, longitude, time_zone, country, subdivision, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + placeColumns

const getPlaceByID = `SELECT ` + placeColumns + ` FROM place WHERE id = $1`

const readPlaces = `
SELECT ` + placeColumns + ` FROM place
WHERE ($1::bigint IS NULL OR id > $1)
ORDER BY id
LIMIT $2`

type PgxPlaceRepository struct {
	db db.DBTX
}

func NewPgxPlaceRepository(dbtx db.DBTX) *PgxPlaceRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPlaceRepository{db: dbtx}
}

func (r *PgxPlaceRepository) Create(ctx context.Context, input place.CreateInput) (p place.Place, err error) {
	lat, lon, tz := encodeLocation(input.Location)
	row := r.db.QueryRow(
		ctx,
		createPlace,
		input.Name,
		input.OpeningHours,
		lat,
		lon,
		tz,
		input.Region.Country,
		input.Region.Subdivision,
		input.CreatedAt,
	)
	p, err = scanPlace(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == db.PG_UNIQUE_CONSTRAINT_ERR_CODE &&
		pgErr.ConstraintName == NAME_CONSTRAINT_NAME {
		return p, place.ErrPlaceAlreadyExists
	}
	return p, err
}

func (r *PgxPlaceRepository) GetByID(ctx context.Context, id place.ID) (p place.Place, err error) {
	p, err = scanPlace(r.db.QueryRow(ctx, getPlaceByID, int64(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, place.ErrPlaceDoesNotExist
	}
	return p, err
}

func (r *PgxPlaceRepository) Read(ctx context.Context, options place.ReadOptions) ([]place.Place, error) {
	limit := options.Limit
	if limit == 0 || limit > place.MAX_READ_LIMIT {
		limit = place.MAX_READ_LIMIT
	}
	afterID := pgtype.Int8{Status: pgtype.Null}
	if options.AfterID.IsPresent {
		afterID = pgtype.Int8{Int: int64(options.AfterID.Value), Status: pgtype.Present}
	}

	rows, err := r.db.Query(ctx, readPlaces, afterID, int64(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := make([]place.Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func encodeLocation(location c.Optional[hours.Location]) (lat, lon pgtype.Float8, tz pgtype.Text) {
	lat.Status, lon.Status, tz.Status = pgtype.Null, pgtype.Null, pgtype.Null
	if !location.IsPresent {
		return lat, lon, tz
	}
	loc := location.Value
	lat = pgtype.Float8{Float: loc.Latitude, Status: pgtype.Present}
	lon = pgtype.Float8{Float: loc.Longitude, Status: pgtype.Present}
	name := time.UTC.String()
	if loc.TimeZone != nil {
		name = loc.TimeZone.String()
	}
	tz = pgtype.Text{String: name, Status: pgtype.Present}
	return lat, lon, tz
}

func decodeLocation(lat, lon pgtype.Float8, tz pgtype.Text) (c.Optional[hours.Location], error) {
	if lat.Status != pgtype.Present || lon.Status != pgtype.Present {
		return c.Optional[hours.Location]{}, nil
	}
	zone := time.UTC
	if tz.Status == pgtype.Present {
		loaded, err := time.LoadLocation(tz.String)
		if err != nil {
			return c.Optional[hours.Location]{}, fmt.Errorf("could not load time zone %q: %w", tz.String, err)
		}
		zone = loaded
	}
	return c.Some(hours.Location{Latitude: lat.Float, Longitude: lon.Float, TimeZone: zone}), nil
}

func scanPlace(row pgx.Row) (p place.Place, err error) {
	var (
		id       int64
		lat, lon pgtype.Float8
		tz       pgtype.Text
	)
	err = row.Scan(
		&id,
		&p.Name,
		&p.OpeningHours,
		&lat,
		&lon,
		&tz,
		&p.Region.Country,
		&p.Region.Subdivision,
		&p.CreatedAt,
	)
	if err != nil {
		return p, err
	}
	p.ID = place.ID(id)
	p.CreatedAt = p.CreatedAt.UTC()
	p.Location, err = decodeLocation(lat, lon, tz)
	if err != nil {
		return p, err
	}
	if err := p.Validate(); err != nil {
		return p, e.NewInvalidStateError(fmt.Sprintf("invalid place %d in database", id), err)
	}
	return p, nil
}
