package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nordixdotma/kamano/internal/cart"
	"github.com/nordixdotma/kamano/internal/catalog"
	"github.com/nordixdotma/kamano/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	catalogStore *catalog.Store,
	cartStore *cart.Store,
	notifier handlers.OrderNotifier,
	whatsapp handlers.WhatsAppLinker,
) {
	productHandler := handlers.ProductHandler{Catalog: catalogStore, WhatsApp: whatsapp}
	cartHandler := handlers.CartHandler{Catalog: catalogStore, Carts: cartStore}
	checkoutHandler := handlers.CheckoutHandler{
		Carts:    cartStore,
		Notifier: notifier,
		WhatsApp: whatsapp,
	}

	v1 := router.Group("/v1")

	products := v1.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProductByID)
		products.GET("/:id/whatsapp", productHandler.GetProductWhatsAppLink)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", productHandler.GetCategories)
		categories.GET("/:category/products", productHandler.GetProductsByCategory)
	}

	v1.GET("/filters", productHandler.GetFilterMetadata)

	carts := v1.Group("/cart")
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:id", cartHandler.GetCart)
		carts.POST("/:id/items", cartHandler.AddItem)
		carts.PATCH("/:id/items", cartHandler.UpdateItem)
		carts.DELETE("/:id/items", cartHandler.RemoveItem)
		carts.DELETE("/:id", cartHandler.ClearCart)
	}

	checkout := v1.Group("/checkout")
	{
		checkout.POST("/order", checkoutHandler.SubmitOrder)
		checkout.POST("/whatsapp", checkoutHandler.WhatsAppOrder)
	}
}
