package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var errBoom = errors.New("boom")

func restore() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newSessionID = uuid.NewString
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	hashPassword = HashPassword
	Location = time.Local

	listNews = store.ListNews
	countNews = store.CountNews
	getNewsByID = store.GetNewsByID
	createNews = store.CreateNews
	updateNews = store.UpdateNews
	deleteNews = store.DeleteNews

	listVenues = store.ListVenues
	countVenues = store.CountVenues
	countVenuesByName = store.CountVenuesByName
	getVenueByID = store.GetVenueByID
	getVenueByName = store.GetVenueByName
	createVenue = store.CreateVenue
	updateVenue = store.UpdateVenue
	deleteVenue = store.DeleteVenue

	listMessagesByState = store.ListMessagesByState
	countMessagesByState = store.CountMessagesByState
	listMessagesByUser = store.ListMessagesByUser
	countMessagesByUser = store.CountMessagesByUser
	getMessageByID = store.GetMessageByID
	createMessage = store.CreateMessage
	updateMessage = store.UpdateMessage
	updateMessageState = store.UpdateMessageState
	deleteMessage = store.DeleteMessage

	listUsersByRole = store.ListUsersByRole
	countUsersByRole = store.CountUsersByRole
	countUsersByUserID = store.CountUsersByUserID
	getUserByID = store.GetUserByID
	getUserByUserID = store.GetUserByUserID
	createUser = store.CreateUser
	updateUser = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser = store.DeleteUser

	listOrdersByState = store.ListOrdersByState
	countOrdersByState = store.CountOrdersByState
	listAllOrdersByState = store.ListAllOrdersByState
	listOrdersByUser = store.ListOrdersByUser
	countOrdersByUser = store.CountOrdersByUser
	listVenueOrdersBetween = store.ListVenueOrdersBetween
	countOverlappingOrders = store.CountOverlappingOrders
	getOrderByID = store.GetOrderByID
	createOrder = store.CreateOrder
	updateOrder = store.UpdateOrder
	updateOrderState = store.UpdateOrderState
	deleteOrder = store.DeleteOrder
}
