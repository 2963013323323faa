package model

import "time"

type News struct {
	NewsID  int       `db:"id" json:"newsID"`
	Title   string    `db:"title" json:"title"`
	Content string    `db:"content" json:"content"`
	Time    time.Time `db:"created_at" json:"time"`
}
