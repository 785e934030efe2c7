package store

import (
	"time"

	"rental_admin/internal/feature/listings/domain/entity"
)

// DemoListings はダッシュボード確認用のサンプルデータを返します。
// 永続化層を持たないため、プロセス起動のたびに同じ状態から始まります。
func DemoListings() []entity.Listing {
	return []entity.Listing{
		{
			ID:          1,
			Title:       "Toyota Camry 2020",
			Description: "Comfortable sedan for city driving",
			Price:       50,
			Location:    "New York",
			Status:      entity.StatusPending,
			SubmittedBy: "user1@example.com",
			SubmittedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Images:      []string{"car1.jpg"},
		},
		{
			ID:          2,
			Title:       "BMW X5 2021",
			Description: "Luxury SUV perfect for family trips",
			Price:       120,
			Location:    "Los Angeles",
			Status:      entity.StatusApproved,
			SubmittedBy: "user2@example.com",
			SubmittedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Images:      []string{"car2.jpg"},
		},
		{
			ID:          3,
			Title:       "Honda Civic 2019",
			Description: "Fuel efficient compact car",
			Price:       35,
			Location:    "Chicago",
			Status:      entity.StatusRejected,
			SubmittedBy: "user3@example.com",
			SubmittedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Images:      []string{"car3.jpg"},
		},
		{
			ID:          4,
			Title:       "Ford Mustang 2022",
			Description: "Sports car for weekend adventures",
			Price:       95,
			Location:    "Miami",
			Status:      entity.StatusPending,
			SubmittedBy: "user4@example.com",
			SubmittedAt: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			Images:      []string{"car4.jpg"},
		},
		{
			ID:          5,
			Title:       "Tesla Model 3 2023",
			Description: "Electric vehicle with autopilot",
			Price:       80,
			Location:    "San Francisco",
			Status:      entity.StatusApproved,
			SubmittedBy: "user5@example.com",
			SubmittedAt: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			Images:      []string{"car5.jpg"},
		},
	}
}
