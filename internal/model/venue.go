package model

type Venue struct {
	VenueID     int    `db:"id" json:"venueID"`
	VenueName   string `db:"name" json:"venueName"`
	Description string `db:"description" json:"description"`
	Price       int    `db:"price" json:"price"`
	Picture     string `db:"picture" json:"picture"`
	Address     string `db:"address" json:"address"`
	OpenTime    string `db:"open_time" json:"open_time"`
	CloseTime   string `db:"close_time" json:"close_time"`
}
