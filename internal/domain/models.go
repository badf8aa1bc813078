package domain

import "time"

// Role разграничивает доступ к административным операциям каталога
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User покупатель магазина
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// VerificationCode одноразовый код входа, отправляемый по почте
type VerificationCode struct {
	Email     string    `bson:"email" json:"email"`
	Code      string    `bson:"code" json:"-"`
	Name      string    `bson:"name" json:"name"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

// Product представляет товар в каталоге
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Images      []string `bson:"images" json:"images"`
	Sizes       []string `bson:"sizes" json:"sizes"`
	Colors      []string `bson:"colors" json:"colors"`
	Category    string   `bson:"category" json:"category"`
	Stock       int64    `bson:"stock" json:"stock"`
}

// CartItem позиция в корзине. Цена копируется из каталога при добавлении.
type CartItem struct {
	ID        string  `bson:"id" json:"id"`
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
	Size      string  `bson:"size" json:"size"`
	Color     string  `bson:"color" json:"color"`
	Price     float64 `bson:"price" json:"price"`
}

// Cart корзина пользователя, одна на пользователя
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem позиция в заказе
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	Size      string  `bson:"size" json:"size"`
	Color     string  `bson:"color" json:"color"`
}

// ShippingAddress адрес доставки; поток заказа его не интерпретирует
type ShippingAddress struct {
	FullName   string `bson:"full_name" json:"full_name"`
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2" json:"line2"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
	Phone      string `bson:"phone" json:"phone"`
}

// Order сущность заказа. GatewayOrderID связывает локальный заказ с заказом
// платёжного шлюза и не меняется после создания.
type Order struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"user_id"`
	Items           []OrderItem     `bson:"items" json:"items"`
	TotalAmount     float64         `bson:"total_amount" json:"total_amount"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	GatewayOrderID  string          `bson:"gateway_order_id" json:"gateway_order_id"`
	Status          OrderStatus     `bson:"status" json:"status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
}
