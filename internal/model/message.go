package model

import "time"

// MessageState 留言審核狀態
type MessageState int

const (
	MessageWaiting  MessageState = 1
	MessagePassed   MessageState = 2
	MessageRejected MessageState = 3
)

type Message struct {
	MessageID int          `db:"id" json:"messageID"`
	UserID    string       `db:"user_id" json:"userID"`
	Content   string       `db:"content" json:"content"`
	Time      time.Time    `db:"created_at" json:"time"`
	State     MessageState `db:"state" json:"state"`
}

// MessageVo 留言加上作者顯示資訊，僅用於回應
type MessageVo struct {
	MessageID int          `json:"messageID"`
	UserID    string       `json:"userID"`
	Content   string       `json:"content"`
	Time      time.Time    `json:"time"`
	UserName  string       `json:"userName"`
	Picture   string       `json:"picture"`
	State     MessageState `json:"state"`
}
