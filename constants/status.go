package constants

// Role user
const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Kondisi buku bekas
const (
	BookConditionNew     = "new"
	BookConditionGood    = "good"
	BookConditionFair    = "fair"
	BookConditionDamaged = "damaged"
	BookConditionPoor    = "poor"
)

// Order status
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusShipped   = 2
	OrderStatusCompleted = 3
	OrderStatusCancelled = 4
)

// Testimonial status
const (
	TestimonialStatusPending  = 0
	TestimonialStatusApproved = 1
	TestimonialStatusRejected = 2
)
