package constants

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 结账表单字段常量
const (
	CheckoutFieldFullName        = "fullName"
	CheckoutFieldPhoneNumber     = "phoneNumber"
	CheckoutFieldEmail           = "email"
	CheckoutFieldDeliveryAddress = "deliveryAddress"
	CheckoutFieldPaymentMethod   = "paymentMethod"
)

// 登录/注册表单字段常量
const (
	AuthFieldEmail    = "email"
	AuthFieldPassword = "password"
	AuthFieldUsername = "username"
)

// 购物车会话常量
const (
	CartSessionHeader     = "X-Cart-Session"
	CartSessionContextKey = "cart_session"
)

// 菜单目录来源常量
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceDatabase = "database"
)

// 队列与任务常量
const (
	QueueDefault          = "default"
	TaskOrderConfirmation = "order:confirmation"
)
