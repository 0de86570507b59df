package configs

import (
	"context"
	"log"
	"time"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"go.mongodb.org/mongo-driver/bson"
)

// SeedMenu loads the stock catalogue on first run. Skipped entirely when
// categories already exist, so restarts never overwrite admin edits.
func SeedMenu() error {
	db := DB()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := db.Collection("categories").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("menu already seeded, skipping")
		return nil
	}

	categories := []any{
		entity.Category{ID: "cat_coffee", Name: "Coffee", ImageURL: "https://images.unsplash.com/photo-1762657440603-2afa5580eaf8?auto=format&fit=crop&w=800&q=80", Order: 1},
		entity.Category{ID: "cat_tea", Name: "Tea", ImageURL: "https://images.unsplash.com/photo-1701933810995-3331d9ff463b?auto=format&fit=crop&w=800&q=80", Order: 2},
		entity.Category{ID: "cat_sandwich", Name: "Sandwich", ImageURL: "https://images.unsplash.com/photo-1717250180255-5509e931bded?auto=format&fit=crop&w=800&q=80", Order: 3},
		entity.Category{ID: "cat_cookies", Name: "Cookies", ImageURL: "https://images.unsplash.com/photo-1613563628001-aac5a5307153?auto=format&fit=crop&w=800&q=80", Order: 4},
		entity.Category{ID: "cat_pizza", Name: "Pizza", ImageURL: "https://images.unsplash.com/photo-1767065604070-574bb62ce4fc?auto=format&fit=crop&w=800&q=80", Order: 5},
		entity.Category{ID: "cat_burger", Name: "Burger", ImageURL: "https://images.unsplash.com/photo-1632898657999-ae6920976661?auto=format&fit=crop&w=800&q=80", Order: 6},
	}
	if _, err := db.Collection("categories").InsertMany(ctx, categories); err != nil {
		return err
	}

	dishes := []any{
		// Coffee
		entity.Dish{ID: "dish_espresso", Name: "Espresso", Description: "Rich and bold single shot espresso", Price: 50, Category: "Coffee", ImageURL: "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?auto=format&fit=crop&w=800&q=80", IsPopular: true},
		entity.Dish{ID: "dish_cappuccino", Name: "Cappuccino", Description: "Classic Italian coffee with steamed milk foam", Price: 50, Category: "Coffee", ImageURL: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?auto=format&fit=crop&w=800&q=80", IsPopular: true},
		entity.Dish{ID: "dish_latte", Name: "Latte", Description: "Smooth coffee with steamed milk", Price: 50, Category: "Coffee", ImageURL: "https://images.unsplash.com/photo-1541167760496-1628856ab772?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_americano", Name: "Americano", Description: "Espresso with hot water", Price: 50, Category: "Coffee", ImageURL: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?auto=format&fit=crop&w=800&q=80"},
		// Tea
		entity.Dish{ID: "dish_masala_chai", Name: "Masala Chai", Description: "Traditional Indian spiced tea", Price: 20, Category: "Tea", ImageURL: "https://images.unsplash.com/photo-1597318181275-c0f61c36f1bc?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_green_tea", Name: "Green Tea", Description: "Refreshing and healthy green tea", Price: 20, Category: "Tea", ImageURL: "https://images.unsplash.com/photo-1627435601361-ec25f5b1d0e5?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_lemon_tea", Name: "Lemon Tea", Description: "Refreshing tea with a zesty lemon twist", Price: 20, Category: "Tea", ImageURL: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_iced_tea", Name: "Iced Tea", Description: "Chilled tea perfect for hot days", Price: 20, Category: "Tea", ImageURL: "https://images.unsplash.com/photo-1499638309848-e9968540da83?auto=format&fit=crop&w=800&q=80"},
		// Sandwich
		entity.Dish{ID: "dish_club_sandwich", Name: "Club Sandwich", Description: "Triple layer sandwich with chicken and veggies", Price: 50, Category: "Sandwich", ImageURL: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?auto=format&fit=crop&w=800&q=80", IsPopular: true},
		entity.Dish{ID: "dish_veg_sandwich", Name: "Veg Sandwich", Description: "Fresh vegetables with tangy chutney", Price: 50, Category: "Sandwich", ImageURL: "https://images.unsplash.com/photo-1509722747041-616f39b57569?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_grilled_sandwich", Name: "Grilled Sandwich", Description: "Crispy grilled sandwich with cheese", Price: 50, Category: "Sandwich", ImageURL: "https://images.unsplash.com/photo-1621852004146-75d47c57e990?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_paneer_sandwich", Name: "Paneer Sandwich", Description: "Grilled sandwich with spiced paneer", Price: 50, Category: "Sandwich", ImageURL: "https://images.unsplash.com/photo-1553909489-cd47e0907980?auto=format&fit=crop&w=800&q=80"},
		// Cookies
		entity.Dish{ID: "dish_choco_chip", Name: "Chocolate Chip Cookies", Description: "Classic cookies with chocolate chips", Price: 30, Category: "Cookies", ImageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_oatmeal_cookies", Name: "Oatmeal Cookies", Description: "Healthy oatmeal cookies with raisins", Price: 30, Category: "Cookies", ImageURL: "https://images.unsplash.com/photo-1590841609987-4ac211afdde1?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_butter_cookies", Name: "Butter Cookies", Description: "Melt-in-mouth butter cookies", Price: 30, Category: "Cookies", ImageURL: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_double_chocolate", Name: "Double Chocolate Cookies", Description: "Rich chocolate cookies for chocolate lovers", Price: 30, Category: "Cookies", ImageURL: "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?auto=format&fit=crop&w=800&q=80"},
		// Pizza
		entity.Dish{ID: "dish_margherita", Name: "Margherita Pizza", Description: "Classic pizza with cheese and tomato sauce", Price: 100, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=800&q=80", IsPopular: true},
		entity.Dish{ID: "dish_pepperoni", Name: "Pepperoni Pizza", Description: "Loaded with pepperoni and cheese", Price: 100, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1628840042765-356cda07504e?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_veg_pizza", Name: "Veggie Pizza", Description: "Fresh vegetables on cheese base", Price: 100, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1511689660979-10d2b1aada49?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_farmhouse", Name: "Farmhouse Pizza", Description: "Garden fresh vegetables with cheese", Price: 100, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&w=800&q=80"},
		// Burger
		entity.Dish{ID: "dish_classic_burger", Name: "Classic Burger", Description: "Juicy beef patty with lettuce and tomato", Price: 70, Category: "Burger", ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80", IsPopular: true},
		entity.Dish{ID: "dish_cheese_burger", Name: "Cheese Burger", Description: "Classic burger with extra cheese", Price: 70, Category: "Burger", ImageURL: "https://images.unsplash.com/photo-1550547660-d9450f859349?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_veg_burger", Name: "Veg Burger", Description: "Crispy vegetable patty burger", Price: 70, Category: "Burger", ImageURL: "https://images.unsplash.com/photo-1520072959219-c595dc870360?auto=format&fit=crop&w=800&q=80"},
		entity.Dish{ID: "dish_chicken_burger", Name: "Chicken Burger", Description: "Grilled chicken patty with special sauce", Price: 70, Category: "Burger", ImageURL: "https://images.unsplash.com/photo-1606755962773-d324e0a13086?auto=format&fit=crop&w=800&q=80"},
	}
	if _, err := db.Collection("dishes").InsertMany(ctx, dishes); err != nil {
		return err
	}

	log.Println("menu catalogue seeded")
	return nil
}
