package fixture

import (
	"time"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
)

// MenuItems is the 8-item demo catalog the storefront ships with.
func MenuItems() []entity.MenuItemRow {
	return []entity.MenuItemRow{
		{
			MenuItem: entity.MenuItem{
				ID:     1,
				NameUz: "Milano Special Pizza", NameRu: "Специальная пицца Милано", NameEn: "Milano Special Pizza",
				DescriptionUz: "Maxsus sous, mozzarella, pepperoni, qo'ziqorin va zaytun",
				DescriptionRu: "Специальный соус, моцарелла, пепперони, грибы и оливки",
				DescriptionEn: "Special sauce, mozzarella, pepperoni, mushrooms and olives",
				Price:         45000, CategoryID: 1,
				ImageURL:    "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
				IsAvailable: true, PreparationTime: 15, Calories: 320,
				IngredientsUz: "Un, pomidor sousi, mozzarella, pepperoni, qo'ziqorin, zaytun",
				IngredientsRu: "Мука, томатный соус, моцарелла, пепперони, грибы, оливки",
				IngredientsEn: "Flour, tomato sauce, mozzarella, pepperoni, mushrooms, olives",
			},
			CategoryNameUz: "Pitsalar25cm", CategoryNameRu: "Пиццы25cm", CategoryNameEn: "Pizzas25cm",
			Rating: 4.8, ReviewsCount: 156,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     2,
				NameUz: "Margherita Pizza", NameRu: "Пицца Маргарита", NameEn: "Margherita Pizza",
				DescriptionUz: "Klassik italyan pitsasi - pomidor sousi, mozzarella va rayhon",
				DescriptionRu: "Классическая итальянская пицца - томатный соус, моцарелла и базилик",
				DescriptionEn: "Classic Italian pizza - tomato sauce, mozzarella and basil",
				Price:         35000, CategoryID: 1,
				ImageURL:    "https://images.pexels.com/photos/1146760/pexels-photo-1146760.jpeg",
				IsAvailable: true, PreparationTime: 12, Calories: 280,
				IngredientsUz: "Un, pomidor sousi, mozzarella, rayhon",
				IngredientsRu: "Мука, томатный соус, моцарелла, базилик",
				IngredientsEn: "Flour, tomato sauce, mozzarella, basil",
			},
			CategoryNameUz: "Pitsalar25cm", CategoryNameRu: "Пиццы25cm", CategoryNameEn: "Pizzas25cm",
			Rating: 4.6, ReviewsCount: 89,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     3,
				NameUz: "Pepperoni Pizza 30cm", NameRu: "Пицца Пепперони 30см", NameEn: "Pepperoni Pizza 30cm",
				DescriptionUz: "Katta o'lchamdagi pepperoni pitsasi - ko'proq lazzat",
				DescriptionRu: "Большая пицца пепперони - больше вкуса",
				DescriptionEn: "Large pepperoni pizza - more taste",
				Price:         55000, CategoryID: 2,
				ImageURL:    "https://images.pexels.com/photos/2147491/pexels-photo-2147491.jpeg",
				IsAvailable: true, PreparationTime: 18, Calories: 420,
				IngredientsUz: "Un, pomidor sousi, mozzarella, pepperoni",
				IngredientsRu: "Мука, томатный соус, моцарелла, пепперони",
				IngredientsEn: "Flour, tomato sauce, mozzarella, pepperoni",
			},
			CategoryNameUz: "Pitsalar30cm", CategoryNameRu: "Пиццы30cm", CategoryNameEn: "Pizzas30cm",
			Rating: 4.9, ReviewsCount: 234,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     4,
				NameUz: "Tovuqli Lavash", NameRu: "Лаваш с курицей", NameEn: "Chicken Lavash",
				DescriptionUz: "Yumshoq lavash ichida mazali tovuq go'shti va yangi sabzavotlar",
				DescriptionRu: "Мягкий лаваш с вкусной курицей и свежими овощами",
				DescriptionEn: "Soft lavash with delicious chicken and fresh vegetables",
				Price:         25000, CategoryID: 5,
				ImageURL:    "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg",
				IsAvailable: true, PreparationTime: 8, Calories: 380,
				IngredientsUz: "Lavash, tovuq go'shti, sabzavotlar, sous",
				IngredientsRu: "Лаваш, куриное мясо, овощи, соус",
				IngredientsEn: "Lavash, chicken meat, vegetables, sauce",
			},
			CategoryNameUz: "Lavash", CategoryNameRu: "Лаваш", CategoryNameEn: "Lavash",
			Rating: 4.7, ReviewsCount: 167,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     5,
				NameUz: "Milano Burger", NameRu: "Бургер Милано", NameEn: "Milano Burger",
				DescriptionUz: "Maxsus Milano burger - mol go'shti, pishloq va maxsus sous",
				DescriptionRu: "Специальный бургер Милано - говядина, сыр и специальный соус",
				DescriptionEn: "Special Milano burger - beef, cheese and special sauce",
				Price:         32000, CategoryID: 6,
				ImageURL:    "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
				IsAvailable: true, PreparationTime: 10, Calories: 450,
				IngredientsUz: "Burger noni, mol go'shti, pishloq, sabzavotlar, sous",
				IngredientsRu: "Булочка для бургера, говядина, сыр, овощи, соус",
				IngredientsEn: "Burger bun, beef, cheese, vegetables, sauce",
			},
			CategoryNameUz: "Hotdog", CategoryNameRu: "Хот-дог", CategoryNameEn: "Hot dog",
			Rating: 4.8, ReviewsCount: 198,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     6,
				NameUz: "Coca Cola", NameRu: "Кока Кола", NameEn: "Coca Cola",
				DescriptionUz: "Sovuq va tetiklantiruvchi ichimlik",
				DescriptionRu: "Холодный и освежающий напиток",
				DescriptionEn: "Cold and refreshing drink",
				Price:         8000, CategoryID: 4,
				ImageURL:    "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg",
				IsAvailable: true, PreparationTime: 2, Calories: 140,
				IngredientsUz: "Gazlangan suv, shakar, karamel rangi",
				IngredientsRu: "Газированная вода, сахар, карамельный краситель",
				IngredientsEn: "Carbonated water, sugar, caramel color",
			},
			CategoryNameUz: "Ichimlik", CategoryNameRu: "Напиток", CategoryNameEn: "Drink",
			Rating: 4.5, ReviewsCount: 89,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     7,
				NameUz: "Mol go'shti Steak", NameRu: "Стейк из говядины", NameEn: "Beef Steak",
				DescriptionUz: "Yumshoq va mazali mol go'shti steyki, garnitur bilan",
				DescriptionRu: "Мягкий и вкусный говяжий стейк с гарниром",
				DescriptionEn: "Tender and delicious beef steak with side dish",
				Price:         65000, CategoryID: 7,
				ImageURL:    "https://images.pexels.com/photos/361184/asparagus-steak-veal-steak-veal-361184.jpeg",
				IsAvailable: true, PreparationTime: 25, Calories: 520,
				IngredientsUz: "Mol go'shti, ziravorlar, garnitur",
				IngredientsRu: "Говядина, специи, гарнир",
				IngredientsEn: "Beef, spices, side dish",
			},
			CategoryNameUz: "Seteyk", CategoryNameRu: "Стейк", CategoryNameEn: "Steak",
			Rating: 4.9, ReviewsCount: 145,
		},
		{
			MenuItem: entity.MenuItem{
				ID:     8,
				NameUz: "Tovuq sho'rva", NameRu: "Куриный суп", NameEn: "Chicken Soup",
				DescriptionUz: "An'anaviy tovuq sho'rvasi - issiq va to'yimli",
				DescriptionRu: "Традиционный куриный суп - горячий и сытный",
				DescriptionEn: "Traditional chicken soup - hot and hearty",
				Price:         18000, CategoryID: 8,
				ImageURL:    "https://images.pexels.com/photos/539451/pexels-photo-539451.jpeg",
				IsAvailable: true, PreparationTime: 15, Calories: 180,
				IngredientsUz: "Tovuq go'shti, sabzavotlar, ziravorlar",
				IngredientsRu: "Куриное мясо, овощи, специи",
				IngredientsEn: "Chicken meat, vegetables, spices",
			},
			CategoryNameUz: "Soup", CategoryNameRu: "Суп", CategoryNameEn: "Soup",
			Rating: 4.6, ReviewsCount: 78,
		},
	}
}

// Orders mirrors the recent orders of the demo stats so the triage tab and
// the dashboard agree with each other in demo mode.
func Orders() []entity.OrderRow {
	now := time.Now()
	return []entity.OrderRow{
		{
			Order: entity.Order{
				ID: 1, TotalAmount: 45000, Status: entity.StatusPending,
				DeliveryAddress: "Chilonzor tumani, 5-mavze", Phone: "+998901234567",
				CreatedAt: now.Add(-10 * time.Minute),
				Items: []entity.OrderItem{
					{ID: 1, OrderID: 1, MenuItemID: 1, Quantity: 1, Price: 45000, MenuItemName: "Milano Special Pizza"},
				},
			},
			UserName: "Akmal Karimov", UserEmail: "akmal@example.com",
		},
		{
			Order: entity.Order{
				ID: 2, TotalAmount: 32000, Status: entity.StatusConfirmed,
				DeliveryAddress: "Yunusobod tumani, 19-kvartal", Phone: "+998935550022",
				CreatedAt: now.Add(-25 * time.Minute),
				Items: []entity.OrderItem{
					{ID: 2, OrderID: 2, MenuItemID: 5, Quantity: 1, Price: 32000, MenuItemName: "Milano Burger"},
				},
			},
			UserName: "Dilnoza Saidova", UserEmail: "dilnoza@example.com",
		},
		{
			Order: entity.Order{
				ID: 3, TotalAmount: 67000, Status: entity.StatusPreparing,
				DeliveryAddress: "Mirzo Ulug'bek tumani, Buyuk ipak yo'li 115", Phone: "+998971112233",
				CreatedAt: now.Add(-40 * time.Minute),
				Items: []entity.OrderItem{
					{ID: 3, OrderID: 3, MenuItemID: 3, Quantity: 1, Price: 55000, MenuItemName: "Pepperoni Pizza 30cm"},
					{ID: 4, OrderID: 3, MenuItemID: 6, Quantity: 1, Price: 8000, MenuItemName: "Coca Cola"},
				},
			},
			UserName: "Bobur Toshev", UserEmail: "bobur@example.com",
		},
	}
}

func Reviews() []entity.ReviewRow {
	now := time.Now()
	return []entity.ReviewRow{
		{
			Review:   entity.Review{ID: 1, MenuItemID: 1, Rating: 5, Comment: "Juda mazali pizza! Tavsiya qilaman.", CreatedAt: now},
			UserName: "Akmal Karimov", MenuItemName: "Milano Special Pizza",
		},
		{
			Review:   entity.Review{ID: 2, MenuItemID: 2, Rating: 4, Comment: "Klassik va mazali, lekin biroz tuzli edi.", CreatedAt: now.Add(-24 * time.Hour)},
			UserName: "Dilnoza Saidova", MenuItemName: "Margherita Pizza",
		},
	}
}

func Stats() entity.DashboardStats {
	return entity.DashboardStats{
		TotalOrders:     156,
		TotalRevenue:    12450000,
		TotalUsers:      89,
		TotalMenuItems:  24,
		TodayOrders:     12,
		TodayRevenue:    890000,
		PendingOrders:   3,
		CompletedOrders: 145,
		PopularItems: []entity.PopularItem{
			{Name: "Milano Special Pizza", Orders: 45, Revenue: 2025000},
			{Name: "Pepperoni Pizza", Orders: 38, Revenue: 2090000},
			{Name: "Milano Burger", Orders: 32, Revenue: 1024000},
		},
		RecentOrders: []entity.RecentOrder{
			{ID: 1, Customer: "Akmal Karimov", Total: 45000, Status: entity.StatusPending},
			{ID: 2, Customer: "Dilnoza Saidova", Total: 32000, Status: entity.StatusConfirmed},
			{ID: 3, Customer: "Bobur Toshev", Total: 67000, Status: entity.StatusPreparing},
		},
		MonthlyRevenue: []entity.MonthRevenue{
			{Month: "Yanvar", Revenue: 2100000},
			{Month: "Fevral", Revenue: 2350000},
			{Month: "Mart", Revenue: 2800000},
			{Month: "Aprel", Revenue: 3200000},
			{Month: "May", Revenue: 2900000},
			{Month: "Iyun", Revenue: 3100000},
		},
	}
}
