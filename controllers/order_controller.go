package controllers

import (
	"bukubekas/constants"
	"bukubekas/dto"
	"bukubekas/models"
	"bukubekas/response"
	"bukubekas/services"
	"bukubekas/services/notification"
	"bukubekas/utils"
	"bukubekas/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	db       *gorm.DB
	promo    *services.PromoService
	shipping *services.ShippingService
	notif    notification.Service
}

func NewOrderController(db *gorm.DB, promo *services.PromoService, shipping *services.ShippingService, notif notification.Service) *OrderController {
	return &OrderController{db: db, promo: promo, shipping: shipping, notif: notif}
}

// CreateOrder checkout isi keranjang. Harga item dihitung dari promo
// yang berlaku saat checkout; ongkir diambil dari API ongkir.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	var cartItems []models.CartItem
	if err := ctrl.db.Preload("Book").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		response.ServerError(c)
		return
	}
	if len(cartItems) == 0 {
		response.BadRequest(c, "Keranjang masih kosong")
		return
	}

	subTotal := 0
	totalWeight := 0
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for i := range cartItems {
		item := cartItems[i]
		if item.Book.Stock < item.Quantity {
			response.BadRequest(c, "Stok buku "+item.Book.Title+" tidak mencukupi")
			return
		}

		price := item.Book.Price
		promoName := ""
		promo, err := ctrl.promo.ResolvePromo(&item.Book)
		if err != nil {
			response.ServerError(c)
			return
		}
		if promo != nil {
			price = promo.DiscountedPrice
			promoName = promo.Name
		}

		subTotal += price * item.Quantity
		totalWeight += item.Book.Weight * item.Quantity
		orderItems = append(orderItems, models.OrderItem{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			BasePrice: item.Book.Price,
			Price:     price,
			PromoName: promoName,
		})
	}

	shippingCost, err := ctrl.shipping.GetCost(request.City, totalWeight, request.Courier)
	if err != nil {
		utils.LogError("gagal ambil ongkir: %v", err)
		response.BadRequest(c, "Gagal menghitung ongkos kirim")
		return
	}

	order := models.Order{
		UserID:         userID,
		Status:         constants.OrderStatusPending,
		RecipientName:  request.RecipientName,
		RecipientPhone: request.RecipientPhone,
		Address:        request.Address,
		City:           request.City,
		Courier:        request.Courier,
		ShippingCost:   shippingCost,
		SubTotal:       subTotal,
		Total:          subTotal + shippingCost,
		Items:          orderItems,
	}

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range cartItems {
			if err := tx.Model(&models.Book{}).
				Where("id = ?", cartItems[i].BookID).
				UpdateColumn("stock", gorm.Expr("stock - ?", cartItems[i].Quantity)).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.notif != nil {
		message := notification.NewOrderMessageBuilder(order.ID, order.Total).Build()
		if err := ctrl.notif.SendMessage(message); err != nil {
			utils.LogError("gagal broadcast order baru: %v", err)
		}
	}

	response.Success(c, ctrl.toOrderResponse(&order))
}

func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var orders []models.Order
	if err := ctrl.db.Preload("Items").Preload("Items.Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ctrl.toOrderResponse(&orders[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := parsePagination(c)

	var total int64
	if err := ctrl.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.Order
	if err := ctrl.db.Preload("Items").Preload("Items.Book").Preload("User").
		Order("created_at desc").
		Offset(page * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ctrl.toOrderResponse(&orders[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

func (ctrl *OrderController) GetOrderDetail(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := ctrl.db.Preload("Items").Preload("Items.Book").First(&order, orderID).Error; err != nil {
		response.NotFound(c)
		return
	}

	userID, _ := currentUserID(c)
	role, _ := c.Get("userRole")
	if order.UserID != userID && role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	response.Success(c, ctrl.toOrderResponse(&order))
}

func (ctrl *OrderController) ChangeOrderStatus(c *gin.Context) {
	var request dto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Data tidak valid")
		return
	}

	if !validator.IsValidOrderStatus(request.Status) {
		response.BadRequest(c, "Status order tidak valid")
		return
	}

	var order models.Order
	if err := ctrl.db.First(&order, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if order.Status == constants.OrderStatusCancelled || order.Status == constants.OrderStatusCompleted {
		response.BadRequest(c, "Order sudah selesai atau dibatalkan")
		return
	}

	if err := ctrl.db.Model(&order).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}
	order.Status = request.Status

	response.Success(c, order)
}

func (ctrl *OrderController) toOrderResponse(order *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			BookID:    item.BookID,
			Title:     item.Book.Title,
			Quantity:  item.Quantity,
			BasePrice: item.BasePrice,
			Price:     item.Price,
			PromoName: item.PromoName,
		})
	}

	return dto.OrderResponse{
		ID:             order.ID,
		Status:         order.Status,
		RecipientName:  order.RecipientName,
		RecipientPhone: order.RecipientPhone,
		Address:        order.Address,
		City:           order.City,
		Courier:        order.Courier,
		ShippingCost:   order.ShippingCost,
		SubTotal:       order.SubTotal,
		Total:          order.Total,
		CreatedAt:      order.CreatedAt,
		Items:          items,
	}
}
