package catalog

import "github.com/nordixdotma/kamano/internal/models"

// Currency is the display currency of the whole catalog.
const Currency = "درهم"

func price(amount float64) models.Price {
	return models.Price{Amount: amount, Currency: Currency}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:        1,
			Name:      "Samsung Galaxy S24 Ultra",
			Category:  "هواتف ذكية",
			Brand:     "Samsung",
			OldPrice:  price(15000),
			Price:     price(12500),
			Sizes:     []string{"256GB", "512GB", "1TB"},
			Colors:    []string{"أسود", "رمادي", "ذهبي"},
			MainImage: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1580910051074-3eb694886505?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1567581935884-3349723552ca?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الشاشة":   "6.8 بوصة Dynamic AMOLED",
				"المعالج":  "Snapdragon 8 Gen 3",
				"الذاكرة":  "12GB RAM",
				"الكاميرا": "200MP + 50MP + 12MP + 10MP",
			},
		},
		{
			ID:        2,
			Name:      "MacBook Pro 14",
			Category:  "أجهزة كمبيوتر محمولة",
			Brand:     "Apple",
			OldPrice:  price(25000),
			Price:     price(22000),
			Sizes:     []string{"M3", "M3 Pro", "M3 Max"},
			Colors:    []string{"رمادي فضائي", "فضي"},
			MainImage: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1484788984921-03950022c9ef?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الشاشة":  "14.2 بوصة Liquid Retina XDR",
				"المعالج": "Apple M3",
				"الذاكرة": "8GB - 128GB",
				"التخزين": "512GB - 8TB SSD",
			},
		},
		{
			ID:        3,
			Name:      "Sony WH-1000XM5",
			Category:  "سماعات",
			Brand:     "Sony",
			OldPrice:  price(4500),
			Price:     price(3200),
			Sizes:     []string{"مقاس واحد"},
			Colors:    []string{"أسود", "فضي"},
			MainImage: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"نوع الاتصال":  "Bluetooth 5.2",
				"إلغاء الضوضاء": "نشط",
				"عمر البطارية": "30 ساعة",
				"الشحن السريع": "3 دقائق = 3 ساعات",
			},
		},
		{
			ID:        5,
			Name:      "Samsung 65 QLED 4K TV",
			Category:  "تلفزيونات",
			Brand:     "Samsung",
			OldPrice:  price(12000),
			Price:     price(9500),
			Sizes:     []string{"55 بوصة", "65 بوصة", "75 بوصة"},
			Colors:    []string{"أسود"},
			MainImage: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1571068316344-75bc76f77890?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1567690187548-f07b1d7bf5a9?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1552975084-6e027cd345c2?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الدقة":        "4K Ultra HD",
				"تقنية العرض":  "QLED",
				"معدل التحديث": "120Hz",
				"النظام":       "Tizen OS",
			},
		},
		{
			ID:        7,
			Name:      "iPhone 15 Pro Max",
			Category:  "هواتف ذكية",
			Brand:     "Apple",
			OldPrice:  price(16000),
			Price:     price(14200),
			Sizes:     []string{"256GB", "512GB", "1TB"},
			Colors:    []string{"تيتانيوم طبيعي", "تيتانيوم أزرق", "تيتانيوم أبيض", "تيتانيوم أسود"},
			MainImage: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1592286130927-570c1113d46d?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1512499617640-c74ae3a79d37?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الشاشة":   "6.7 بوصة Super Retina XDR",
				"المعالج":  "A17 Pro",
				"الكاميرا": "48MP + 12MP + 12MP",
				"المواد":   "إطار تيتانيوم",
			},
		},
		{
			ID:        8,
			Name:      "Dell XPS 13",
			Category:  "أجهزة كمبيوتر محمولة",
			Brand:     "Dell",
			OldPrice:  price(14000),
			Price:     price(11800),
			Sizes:     []string{"Intel i5", "Intel i7"},
			Colors:    []string{"فضي", "أسود"},
			MainImage: "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الشاشة":  "13.4 بوصة InfinityEdge",
				"المعالج": "Intel Core i7-1360P",
				"الذاكرة": "16GB LPDDR5",
				"التخزين": "512GB SSD",
			},
		},
		{
			ID:        9,
			Name:      "AirPods Pro 2",
			Category:  "سماعات",
			Brand:     "Apple",
			OldPrice:  price(3200),
			Price:     price(2650),
			Sizes:     []string{"مقاس واحد"},
			Colors:    []string{"أبيض"},
			MainImage: "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"إلغاء الضوضاء": "نشط",
				"الشريحة":      "H2",
				"عمر البطارية": "6 ساعات + 24 ساعة مع العلبة",
				"مقاومة الماء": "IPX4",
			},
		},
		{
			ID:        11,
			Name:      "Samsung Galaxy Watch 6",
			Category:  "ساعات ذكية",
			Brand:     "Samsung",
			OldPrice:  price(3500),
			Price:     price(2800),
			Sizes:     []string{"40mm", "44mm"},
			Colors:    []string{"أسود", "فضي", "ذهبي"},
			MainImage: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"الشاشة":       "Super AMOLED",
				"المعالج":      "Exynos W930",
				"مقاومة الماء": "5ATM + IP68",
				"عمر البطارية": "40 ساعة",
			},
		},
		{
			ID:        12,
			Name:      "LG OLED C3 55",
			Category:  "تلفزيونات",
			Brand:     "LG",
			OldPrice:  price(15000),
			Price:     price(12500),
			Sizes:     []string{"55 بوصة", "65 بوصة", "77 بوصة"},
			Colors:    []string{"أسود"},
			MainImage: "https://images.unsplash.com/photo-1593784991095-a205069470b6?w=500&h=500&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1593784991095-a205069470b6?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1601944177325-f8867652837f?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500&h=500&fit=crop",
			},
			InStock: true,
			Specifications: map[string]string{
				"تقنية العرض":  "OLED evo",
				"المعالج":      "α9 Gen6 AI",
				"معدل التحديث": "120Hz",
				"HDR":          "Dolby Vision IQ",
			},
		},
	}
}
