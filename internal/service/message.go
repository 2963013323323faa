package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var (
	listMessagesByState  = store.ListMessagesByState
	countMessagesByState = store.CountMessagesByState
	listMessagesByUser   = store.ListMessagesByUser
	countMessagesByUser  = store.CountMessagesByUser
	getMessageByID       = store.GetMessageByID
	createMessage        = store.CreateMessage
	updateMessage        = store.UpdateMessage
	updateMessageState   = store.UpdateMessageState
	deleteMessage        = store.DeleteMessage
)

func listMessageVos(ctx context.Context, db database.DB, op string, p model.PageRequest,
	list func() ([]model.Message, error), count func() (int, error)) (*model.Page[model.MessageVo], error) {
	page, err := listPage(op, p, list, count)
	if err != nil {
		return nil, err
	}
	vos, err := BuildMessageVos(ctx, db, page.Content)
	if err != nil {
		return nil, err
	}
	return model.NewPage(vos, page.TotalElements, p), nil
}

// ListMessagesByState 依狀態列出留言並附上作者資訊
func ListMessagesByState(ctx context.Context, db database.DB, state model.MessageState, p model.PageRequest) (*model.Page[model.MessageVo], error) {
	return listMessageVos(ctx, db, "ListMessagesByState", p,
		func() ([]model.Message, error) { return listMessagesByState(ctx, db, state, p) },
		func() (int, error) { return countMessagesByState(ctx, db, state) },
	)
}

// ListUserMessages 登入者自己的留言，不分狀態
func ListUserMessages(ctx context.Context, db database.DB, sess *model.Session, p model.PageRequest) (*model.Page[model.MessageVo], error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	return listMessageVos(ctx, db, "ListUserMessages", p,
		func() ([]model.Message, error) { return listMessagesByUser(ctx, db, sess.LoginID, p) },
		func() (int, error) { return countMessagesByUser(ctx, db, sess.LoginID) },
	)
}

func CountMessagePages(ctx context.Context, db database.DB, state model.MessageState, size int) (int, error) {
	n, err := countMessagesByState(ctx, db, state)
	if err != nil {
		return 0, storeErr("CountMessagePages", err)
	}
	return model.Page[model.Message]{TotalElements: n, Size: size}.TotalPages(), nil
}

func CountUserMessagePages(ctx context.Context, db database.DB, sess *model.Session, size int) (int, error) {
	if sess == nil {
		return 0, ErrUnauthenticated
	}
	n, err := countMessagesByUser(ctx, db, sess.LoginID)
	if err != nil {
		return 0, storeErr("CountUserMessagePages", err)
	}
	return model.Page[model.Message]{TotalElements: n, Size: size}.TotalPages(), nil
}

// BuildMessageVos 以 userID 查詢作者，同一頁內相同作者只查一次
func BuildMessageVos(ctx context.Context, db database.DB, msgs []model.Message) ([]model.MessageVo, error) {
	users := map[string]*model.User{}
	vos := make([]model.MessageVo, 0, len(msgs))
	for _, m := range msgs {
		u, ok := users[m.UserID]
		if !ok {
			var err error
			u, err = getUserByUserID(ctx, db, m.UserID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, storeErr("BuildMessageVos", err)
			}
			users[m.UserID] = u
		}
		vo := model.MessageVo{
			MessageID: m.MessageID,
			UserID:    m.UserID,
			Content:   m.Content,
			Time:      m.Time,
			State:     m.State,
		}
		if u != nil {
			vo.UserName = u.UserName
			vo.Picture = u.Picture
		}
		vos = append(vos, vo)
	}
	return vos, nil
}

func validContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", invalid("content is required")
	}
	return content, nil
}

// CreateMessage 新留言一律為待審核
func CreateMessage(ctx context.Context, db database.DB, sess *model.Session, content string) (*model.Message, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}
	m, err := createMessage(ctx, db, &model.Message{
		UserID:  sess.LoginID,
		Content: content,
		Time:    timeNow(),
		State:   model.MessageWaiting,
	})
	if err != nil {
		return nil, storeErr("CreateMessage", err)
	}
	return m, nil
}

// UpdateMessage 只有作者可修改，修改後重新進入待審核
func UpdateMessage(ctx context.Context, db database.DB, sess *model.Session, id int, content string) (*model.Message, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	if err := checkID("messageID", id); err != nil {
		return nil, err
	}
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}
	m, err := getMessageByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("UpdateMessage", err)
	}
	if m.UserID != sess.LoginID {
		return nil, ErrForbidden
	}
	m.Content = content
	m.State = model.MessageWaiting
	if err := updateMessage(ctx, db, m); err != nil {
		return nil, storeErr("UpdateMessage", err)
	}
	return m, nil
}

func setMessageState(ctx context.Context, db database.DB, op string, id int, state model.MessageState) error {
	if err := checkID("messageID", id); err != nil {
		return err
	}
	if _, err := getMessageByID(ctx, db, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotExist
		}
		return storeErr(op, err)
	}
	if err := updateMessageState(ctx, db, id, state); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotExist
		}
		return storeErr(op, err)
	}
	return nil
}

// ConfirmMessage 不論原狀態皆設為通過
func ConfirmMessage(ctx context.Context, db database.DB, id int) error {
	return setMessageState(ctx, db, "ConfirmMessage", id, model.MessagePassed)
}

// RejectMessage 不論原狀態皆設為駁回
func RejectMessage(ctx context.Context, db database.DB, id int) error {
	return setMessageState(ctx, db, "RejectMessage", id, model.MessageRejected)
}

// DeleteMessage 作者或管理員可刪除
func DeleteMessage(ctx context.Context, db database.DB, sess *model.Session, id int) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if err := checkID("messageID", id); err != nil {
		return err
	}
	m, err := getMessageByID(ctx, db, id)
	if err != nil {
		return storeErr("DeleteMessage", err)
	}
	if !sess.IsAdmin() && m.UserID != sess.LoginID {
		return ErrForbidden
	}
	if err := deleteMessage(ctx, db, id); err != nil {
		return storeErr("DeleteMessage", err)
	}
	return nil
}
