package memstore

import (
	"log"
	"time"

	"pharmahub/models"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: failed to hash password: %v", err)
	}
	return string(hashed)
}

// SeedUsers returns the demo accounts for the memory-backed mode.
func SeedUsers() []models.User {
	now := time.Now()
	return []models.User{
		{
			ID:        1,
			Name:      "Nguyễn Văn A",
			Email:     "nguyenvana@gmail.com",
			Phone:     "0901234567",
			Password:  mustHash("123456"),
			Role:      "user",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        2,
			Name:      "Trần Thị B",
			Email:     "tranthib@gmail.com",
			Phone:     "0912345678",
			Password:  mustHash("123456"),
			Role:      "user",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        3,
			Name:      "PharmaHub Admin",
			Email:     "admin@pharmahub.vn",
			Phone:     "0987654321",
			Password:  mustHash("admin123"),
			Role:      "admin",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SeedAddresses returns the demo address book.
func SeedAddresses() []models.Address {
	return []models.Address{
		{
			ID:             "1",
			UserID:         1,
			RecipientName:  "Nguyễn Văn A",
			RecipientPhone: "0901234567",
			FullAddress:    "123 Đường ABC, Phường XYZ, Quận 1, TP. HCM",
			IsDefault:      true,
		},
		{
			ID:             "2",
			UserID:         1,
			RecipientName:  "Nguyễn Thị B",
			RecipientPhone: "0912345678",
			FullAddress:    "456 Đường DEF, Phường UVW, Quận 2, TP. HCM",
			IsDefault:      false,
		},
		{
			ID:             "3",
			UserID:         2,
			RecipientName:  "Trần Thị B",
			RecipientPhone: "0912345678",
			FullAddress:    "456 Đường XYZ, Phường OPQ, Quận 2, TP. HCM",
			IsDefault:      true,
		},
	}
}

// SeedOrders returns a little order history so the admin view is not empty.
func SeedOrders() []models.Order {
	return []models.Order{
		{
			ID:     "DH001",
			UserID: 1,
			Items: []models.OrderItem{
				{ProductID: 7, ProductName: "Panadol Extra", Unit: "Vỉ 10 viên", Quantity: 2, Price: 50000, Image: "/images/products/med007.jpg"},
				{ProductID: 2, ProductName: "Vitamin C 1000mg", Unit: "Chai 30 viên", Quantity: 1, Price: 120000, Image: "/images/products/med002.jpg"},
			},
			Subtotal:      220000,
			ShippingCost:  25000,
			Discount:      10000,
			TotalPrice:    235000,
			RecipientName: "Nguyễn Văn A",
			Phone:         "0912345678",
			Address:       "123 Đường ABC, Phường XYZ, Quận 1, TP. HCM",
			PaymentMethod: "cod",
			PaymentStatus: "pending",
			Status:        "shipping",
			CreatedAt:     time.Date(2024, 5, 20, 10, 30, 0, 0, time.Local),
			UpdatedAt:     time.Date(2024, 5, 21, 9, 0, 0, 0, time.Local),
		},
		{
			ID:     "DH002",
			UserID: 1,
			Items: []models.OrderItem{
				{ProductID: 5, ProductName: "Canxi D3 Extra", Unit: "Hộp 60 viên", Quantity: 1, Price: 180000, Image: "/images/products/med005.jpg"},
				{ProductID: 4, ProductName: "Omega-3 Fish Oil", Unit: "Lọ 100 viên", Quantity: 1, Price: 250000, Image: "/images/products/med004.jfif"},
			},
			Subtotal:      430000,
			ShippingCost:  25000,
			Discount:      0,
			TotalPrice:    455000,
			RecipientName: "Nguyễn Văn A",
			Phone:         "0912345678",
			Address:       "123 Đường ABC, Phường XYZ, Quận 1, TP. HCM",
			PaymentMethod: "bank_transfer",
			PaymentStatus: "paid",
			Status:        "delivered",
			CreatedAt:     time.Date(2024, 4, 2, 14, 15, 0, 0, time.Local),
			UpdatedAt:     time.Date(2024, 4, 6, 18, 40, 0, 0, time.Local),
		},
	}
}
