package service

import (
	"context"
	"strings"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var (
	listVenues        = store.ListVenues
	countVenues       = store.CountVenues
	countVenuesByName = store.CountVenuesByName
	getVenueByID      = store.GetVenueByID
	getVenueByName    = store.GetVenueByName
	createVenue       = store.CreateVenue
	updateVenue       = store.UpdateVenue
	deleteVenue       = store.DeleteVenue
)

// ListVenues 場館分頁，依 id 由小到大
func ListVenues(ctx context.Context, db database.DB, p model.PageRequest) (*model.Page[model.Venue], error) {
	return listPage("ListVenues", p,
		func() ([]model.Venue, error) { return listVenues(ctx, db, p) },
		func() (int, error) { return countVenues(ctx, db) },
	)
}

func CountVenuePages(ctx context.Context, db database.DB, size int) (int, error) {
	n, err := countVenues(ctx, db)
	if err != nil {
		return 0, storeErr("CountVenuePages", err)
	}
	return model.Page[model.Venue]{TotalElements: n, Size: size}.TotalPages(), nil
}

func GetVenue(ctx context.Context, db database.DB, id int) (*model.Venue, error) {
	if err := checkID("venueID", id); err != nil {
		return nil, err
	}
	v, err := getVenueByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("GetVenue", err)
	}
	return v, nil
}

func GetVenueByName(ctx context.Context, db database.DB, name string) (*model.Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("venueName is required")
	}
	v, err := getVenueByName(ctx, db, name)
	if err != nil {
		return nil, storeErr("GetVenueByName", err)
	}
	return v, nil
}

// VenueNameAvailable 名稱未被其他場館使用時回傳 true
func VenueNameAvailable(ctx context.Context, db database.DB, name string) (bool, error) {
	n, err := countVenuesByName(ctx, db, strings.TrimSpace(name))
	if err != nil {
		return false, storeErr("VenueNameAvailable", err)
	}
	return n == 0, nil
}

func validVenue(v *model.Venue) error {
	v.VenueName = strings.TrimSpace(v.VenueName)
	v.Address = strings.TrimSpace(v.Address)
	v.Description = strings.TrimSpace(v.Description)
	switch {
	case v.VenueName == "":
		return invalid("venueName is required")
	case v.Address == "":
		return invalid("address is required")
	case v.Description == "":
		return invalid("description is required")
	case v.Price < 0:
		return invalid("price must not be negative")
	}
	open, err := model.ParseClock(v.OpenTime)
	if err != nil {
		return invalid("open_time: %v", err)
	}
	closing, err := model.ParseClock(v.CloseTime)
	if err != nil {
		return invalid("close_time: %v", err)
	}
	if open >= closing {
		return invalid("open_time must be before close_time")
	}
	return nil
}

// CreateVenue 名稱重複時回傳 ErrConflict
func CreateVenue(ctx context.Context, db database.DB, v *model.Venue) (*model.Venue, error) {
	if err := validVenue(v); err != nil {
		return nil, err
	}
	ok, err := VenueNameAvailable(ctx, db, v.VenueName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, conflict("venue %q already exists", v.VenueName)
	}
	created, err := createVenue(ctx, db, v)
	if err != nil {
		return nil, storeErr("CreateVenue", err)
	}
	return created, nil
}

// UpdateVenue Picture 為空字串時保留原圖
func UpdateVenue(ctx context.Context, db database.DB, v *model.Venue) (*model.Venue, error) {
	if err := checkID("venueID", v.VenueID); err != nil {
		return nil, err
	}
	if err := validVenue(v); err != nil {
		return nil, err
	}
	old, err := getVenueByID(ctx, db, v.VenueID)
	if err != nil {
		return nil, storeErr("UpdateVenue", err)
	}
	if old.VenueName != v.VenueName {
		ok, err := VenueNameAvailable(ctx, db, v.VenueName)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, conflict("venue %q already exists", v.VenueName)
		}
	}
	if v.Picture == "" {
		v.Picture = old.Picture
	}
	if err := updateVenue(ctx, db, v); err != nil {
		return nil, storeErr("UpdateVenue", err)
	}
	return v, nil
}

func DeleteVenue(ctx context.Context, db database.DB, id int) error {
	if err := checkID("venueID", id); err != nil {
		return err
	}
	if err := deleteVenue(ctx, db, id); err != nil {
		return storeErr("DeleteVenue", err)
	}
	return nil
}
