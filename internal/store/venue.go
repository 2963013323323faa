package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

const venueColumns = `id, name, description, price, picture, address, open_time, close_time`

func scanVenue(row pgx.Row, v *model.Venue) error {
	return row.Scan(
		&v.VenueID,
		&v.VenueName,
		&v.Description,
		&v.Price,
		&v.Picture,
		&v.Address,
		&v.OpenTime,
		&v.CloseTime,
	)
}

// ListVenues 依 id 由小到大
func ListVenues(ctx context.Context, db database.DB, p model.PageRequest) ([]model.Venue, error) {
	rows, err := db.Query(ctx,
		`SELECT `+venueColumns+` FROM venues
		 ORDER BY id ASC
		 LIMIT $1 OFFSET $2`,
		p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListVenues", err)
	}
	list, err := collect(rows, scanVenue)
	if err != nil {
		return nil, wrapErr("ListVenues", err)
	}
	return list, nil
}

func CountVenues(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
		return 0, wrapErr("CountVenues", err)
	}
	return n, nil
}

func CountVenuesByName(ctx context.Context, db database.DB, name string) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM venues WHERE name = $1`, name).Scan(&n); err != nil {
		return 0, wrapErr("CountVenuesByName", err)
	}
	return n, nil
}

func GetVenueByID(ctx context.Context, db database.DB, id int) (*model.Venue, error) {
	v := &model.Venue{}
	row := db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	if err := scanVenue(row, v); err != nil {
		return nil, wrapErr("GetVenueByID", err)
	}
	return v, nil
}

func GetVenueByName(ctx context.Context, db database.DB, name string) (*model.Venue, error) {
	v := &model.Venue{}
	row := db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE name = $1`, name)
	if err := scanVenue(row, v); err != nil {
		return nil, wrapErr("GetVenueByName", err)
	}
	return v, nil
}

func CreateVenue(ctx context.Context, db database.DB, v *model.Venue) (*model.Venue, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO venues (name, description, price, picture, address, open_time, close_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		v.VenueName,
		v.Description,
		v.Price,
		v.Picture,
		v.Address,
		v.OpenTime,
		v.CloseTime,
	)
	if err := row.Scan(&v.VenueID); err != nil {
		return nil, wrapErr("CreateVenue", err)
	}
	return v, nil
}

func UpdateVenue(ctx context.Context, db database.DB, v *model.Venue) error {
	tag, err := db.Exec(ctx,
		`UPDATE venues
		 SET name = $1, description = $2, price = $3, picture = $4,
		     address = $5, open_time = $6, close_time = $7
		 WHERE id = $8`,
		v.VenueName,
		v.Description,
		v.Price,
		v.Picture,
		v.Address,
		v.OpenTime,
		v.CloseTime,
		v.VenueID,
	)
	if err != nil {
		return wrapErr("UpdateVenue", err)
	}
	return requireAffected("UpdateVenue", tag)
}

func DeleteVenue(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteVenue", err)
	}
	return requireAffected("DeleteVenue", tag)
}
