package i18n

// defaultStrings are used when the hosted content has no language section.
var defaultStrings = Strings{
	"en": {
		"home":                   "Home",
		"shop":                   "Shop",
		"cart":                   "Cart",
		"about":                  "About",
		"contact":                "Contact",
		"admin":                  "Admin",
		"categories":             "Categories",
		"newArrivals":            "New Arrivals",
		"featuredProducts":       "Featured Products",
		"allProducts":            "All Products",
		"searchPlaceholder":      "Search products...",
		"addToCart":              "Add to Cart",
		"viewDetails":            "View Details",
		"quantity":               "Quantity",
		"subtotal":               "Subtotal",
		"deliveryCharge":         "Delivery Charge",
		"total":                  "Total",
		"checkout":               "Checkout via WhatsApp",
		"emptyCart":              "Your cart is empty",
		"continueShopping":       "Continue Shopping",
		"phone":                  "Phone Number",
		"district":               "District",
		"city":                   "City (Optional)",
		"placeOrder":             "Place Order",
		"orderSummary":           "Order Summary",
		"paymentMethods":         "Payment Methods",
		"bankTransfer":           "Bank Transfer",
		"kokoPay":                "Koko Pay",
		"cardPayment":            "Card Payment",
		"selectDistrict":         "Select District",
		"selectCity":             "Select City",
		"required":               "Required",
		"optional":               "Optional",
		"login":                  "Login",
		"logout":                 "Logout",
		"email":                  "Email",
		"password":               "Password",
		"adminPanel":             "Admin Panel",
		"products":               "Products",
		"addProduct":             "Add Product",
		"editProduct":            "Edit Product",
		"deleteProduct":          "Delete Product",
		"productName":            "Product Name",
		"productPrice":           "Price",
		"productDescription":     "Description",
		"productImage":           "Image",
		"category":               "Category",
		"save":                   "Save",
		"cancel":                 "Cancel",
		"delete":                 "Delete",
		"confirm":                "Confirm",
		"success":                "Success",
		"error":                  "Error",
		"loading":                "Loading...",
		"noProducts":             "No products found",
		"filters":                "Filters",
		"sortBy":                 "Sort By",
		"priceLoToHi":            "Price: Low to High",
		"priceHiToLo":            "Price: High to Low",
		"newest":                 "Newest First",
		"itemAdded":              "Item added to cart",
		"itemRemoved":            "Item removed from cart",
		"cartUpdated":            "Cart updated",
		"cartCleared":            "Cart cleared",
		"invalidProduct":         "This product cannot be added to the cart",
		"cartSaveFailed":         "Your cart could not be saved on this device",
		"incompleteCustomerInfo": "Please enter your phone number and district",
		"orderSent":              "Your order is ready to send",
		"checkoutUnavailable":    "Ordering is not available right now, please contact the shop",
	},
	"si": {
		"home":              "р╢╕р╖Фр╢╜р╖К р╢┤р╖Тр╢зр╖Фр╖А",
		"shop":              "р╖Гр╖Пр╢┤р╖Кр╢┤р╖Фр╖А",
		"cart":              "р╢Ър╢╗р╢нр╖Кр╢нр╢║",
		"about":             "р╢Ер╢┤р╖Т р╢Ьр╖Рр╢▒",
		"contact":           "р╖Гр╢╕р╖Кр╢╢р╢▒р╖Кр╢░ р╖Ар╢▒р╖Кр╢▒",
		"admin":             "р╢┤р╢╗р╖Тр╢┤р╖Пр╢╜р╢Ъ",
		"categories":        "р╖Ар╢╗р╖Кр╢Ь",
		"newArrivals":       "р╢Ер╢╜р╖Фр╢нр╖К р╢Ср╢Ър╢нр╖Ф р╢Ър╖Тр╢╗р╖Ур╢╕р╖К",
		"featuredProducts":  "р╖Ар╖Тр╖Бр╖Ър╖Вр╖Тр╢н р╢▒р╖Тр╖Вр╖Кр╢┤р╖Пр╢пр╢▒",
		"allProducts":       "р╖Гр╖Тр╢║р╢╜р╖Фр╢╕ р╢▒р╖Тр╖Вр╖Кр╢┤р╖Пр╢пр╢▒",
		"searchPlaceholder": "р╢▒р╖Тр╖Вр╖Кр╢┤р╖Пр╢пр╢▒ р╖Гр╖Ьр╢║р╢▒р╖Кр╢▒...",
		"addToCart":         "р╢Ър╢╗р╢нр╖Кр╢нр╢║р╢з р╢Ср╢Ър╢нр╖Ф р╢Ър╢╗р╢▒р╖Кр╢▒",
		"viewDetails":       "р╖Ар╖Тр╖Гр╖Кр╢нр╢╗ р╢╢р╢╜р╢▒р╖Кр╢▒",
		"quantity":          "р╢┤р╖КтАНр╢╗р╢╕р╖Пр╢лр╢║",
		"subtotal":          "р╢Лр╢┤ р╢Ср╢Ър╢нр╖Фр╖А",
		"deliveryCharge":    "р╢╢р╖Щр╢пр╖Пр╖Др╖Рр╢╗р╖Ур╢╕р╖К р╢Ьр╖Пр╖Гр╖Кр╢нр╖Фр╖А",
		"total":             "р╢╕р╖Фр╖Ер╖Ф р╢Ср╢Ър╢нр╖Фр╖А",
		"checkout":          "WhatsApp р╖Др╢╗р╖Др╖П р╢Зр╢лр╖Ар╖Фр╢╕р╖К р╢Ър╢╗р╢▒р╖Кр╢▒",
		"emptyCart":         "р╢Фр╢╢р╖Ъ р╢Ър╢╗р╢нр╖Кр╢нр╢║ р╖Др╖Тр╖Гр╖Кр╢║",
		"continueShopping":  "р╖Гр╖Пр╢┤р╖Кр╢┤р╖Ф р╖Гр╖Ар╖Пр╢╗р╖Тр╢║ р╢пр╖Тр╢Ьр╢зр╢╕ р╢Ър╢╗р╢Ьр╖Щр╢▒ р╢║р╢▒р╖Кр╢▒",
		"phone":             "р╢пр╖Фр╢╗р╢Ър╢ор╢▒ р╢Ер╢Вр╢Ър╢║",
		"district":          "р╢пр╖Тр╖Гр╖Кр╢нр╖КтАНр╢╗р╖Тр╢Ър╖Кр╢Ър╢║",
		"city":              "р╢▒р╢Ьр╢╗р╢║ (р╖Ар╖Тр╢Ър╢╜р╖Кр╢┤)",
		"placeOrder":        "р╢Зр╢лр╖Ар╖Фр╢╕ р╢нр╢╢р╢▒р╖Кр╢▒",
		"orderSummary":      "р╢Зр╢лр╖Ар╖Фр╢╕р╖К р╖Гр╖Пр╢╗р╖Пр╢Вр╖Бр╢║",
		"paymentMethods":    "р╢Ьр╖Щр╖Ар╖Ур╢╕р╖К р╢Ър╖КтАНр╢╗р╢╕",
		"bankTransfer":      "р╢╢р╖Рр╢Вр╢Ър╖Ф р╢╕р╖Пр╢╗р╖Ф",
		"kokoPay":           "Koko Pay",
		"cardPayment":       "р╢Ър╖Пр╢йр╖Кр╢┤р╢нр╖К р╢Ьр╖Щр╖Ар╖Ур╢╕",
		"selectDistrict":    "р╢пр╖Тр╖Гр╖Кр╢нр╖КтАНр╢╗р╖Тр╢Ър╖Кр╢Ър╢║ р╢нр╖Эр╢╗р╢▒р╖Кр╢▒",
		"selectCity":        "р╢▒р╢Ьр╢╗р╢║ р╢нр╖Эр╢╗р╢▒р╖Кр╢▒",
		"required":          "р╢Ер╖Ар╖Бр╖КтАНр╢║р╢║р╖Т",
		"optional":          "р╖Ар╖Тр╢Ър╢╜р╖Кр╢┤",
		"login":             "р╢Зр╢нр╖Фр╢╜р╖К р╖Ар╢▒р╖Кр╢▒",
		"logout":            "р╢┤р╖Тр╢зр╖Ар╢▒р╖Кр╢▒",
		"email":             "р╖Ар╖Тр╢пр╖КтАНр╢║р╖Фр╢нр╖К р╢нр╖Рр╢┤р╖Ср╢╜",
		"password":          "р╢╕р╖Фр╢╗р╢┤р╢пр╢║",
		"itemAdded":         "р╢╖р╖Пр╢лр╖Кр╢йр╢║ р╢Ър╢╗р╢нр╖Кр╢нр╢║р╢з р╢Ср╢Ър╢нр╖Ф р╢Ър╢╗р╢▒ р╢╜р╢пр╖У",
		"itemRemoved":       "р╢╖р╖Пр╢лр╖Кр╢йр╢║ р╢Ър╢╗р╢нр╖Кр╢нр╢║р╖Щр╢▒р╖К р╢Йр╖Ар╢нр╖К р╢Ър╢╗р╢▒ р╢╜р╢пр╖У",
		"cartUpdated":       "р╢Ър╢╗р╢нр╖Кр╢нр╢║ р╢║р╖Пр╖Ар╢нр╖Кр╢Ър╖Пр╢╜р╖Ур╢▒ р╢Ър╢╗р╢▒ р╢╜р╢пр╖У",
	},
	"ta": {
		"home":              "роорпБроХрокрпНрокрпБ",
		"shop":              "роХроЯрпИ",
		"cart":              "ро╡рогрпНроЯро┐",
		"about":             "роОроЩрпНроХро│рпИ рокро▒рпНро▒ро┐",
		"contact":           "родрпКроЯро░рпНрокрпБ",
		"admin":             "роиро┐ро░рпНро╡ро╛роХро┐",
		"categories":        "ро╡роХрпИроХро│рпН",
		"newArrivals":       "рокрпБродро┐роп ро╡ро░ро╡рпБроХро│рпН",
		"featuredProducts":  "роЪро┐ро▒рокрпНрокрпБ родропро╛ро░ро┐рокрпНрокрпБроХро│рпН",
		"allProducts":       "роЕройрпИродрпНродрпБ родропро╛ро░ро┐рокрпНрокрпБроХро│рпН",
		"searchPlaceholder": "родропро╛ро░ро┐рокрпНрокрпБроХро│рпИродрпН родрпЗроЯрпБроЩрпНроХро│рпН...",
		"addToCart":         "ро╡рогрпНроЯро┐ропро┐ро▓рпН роЪрпЗро░рпН",
		"viewDetails":       "ро╡ро┐ро╡ро░роЩрпНроХро│рпИроХрпН роХро╛рогрпНроХ",
		"quantity":          "роЕро│ро╡рпБ",
		"subtotal":          "родрпБрогрпИ роорпКродрпНродроорпН",
		"deliveryCharge":    "роЯрпЖро▓ро┐ро╡ро░ро┐ роХроЯрпНроЯрогроорпН",
		"total":             "роорпКродрпНродроорпН",
		"checkout":          "WhatsApp роорпВро▓роорпН роЖро░рпНроЯро░рпН",
		"emptyCart":         "роЙроЩрпНроХро│рпН ро╡рогрпНроЯро┐ роХро╛ро▓ро┐ропро╛роХ роЙро│рпНро│родрпБ",
		"continueShopping":  "ро╖ро╛рокрпНрокро┐роЩрпН родрпКроЯро░ро╡рпБроорпН",
		"phone":             "родрпКро▓рпИрокрпЗроЪро┐ роОрогрпН",
		"district":          "рооро╛ро╡роЯрпНроЯроорпН",
		"city":              "роироХро░роорпН (ро╡ро┐ро░рпБрокрпНрокроорпН)",
		"placeOrder":        "роЖро░рпНроЯро░рпН роЪрпЖропрпН",
		"orderSummary":      "роЖро░рпНроЯро░рпН роЪрпБро░рпБроХрпНроХроорпН",
		"paymentMethods":    "роХроЯрпНроЯрог роорпБро▒рпИроХро│рпН",
		"bankTransfer":      "ро╡роЩрпНроХро┐ рокро░ро┐рооро╛ро▒рпНро▒роорпН",
		"kokoPay":           "Koko Pay",
		"cardPayment":       "роЕроЯрпНроЯрпИ роХроЯрпНроЯрогроорпН",
		"selectDistrict":    "рооро╛ро╡роЯрпНроЯродрпНродрпИродрпН родрпЗро░рпНроирпНродрпЖроЯрпБроХрпНроХро╡рпБроорпН",
		"selectCity":        "роироХро░родрпНродрпИродрпН родрпЗро░рпНроирпНродрпЖроЯрпБроХрпНроХро╡рпБроорпН",
		"required":          "родрпЗро╡рпИ",
		"optional":          "ро╡ро┐ро░рпБрокрпНрокроорпН",
		"login":             "роЙро│рпНроирпБро┤рпИроп",
		"logout":            "ро╡рпЖро│ро┐ропрпЗро▒рпБ",
		"email":             "рооро┐ройрпНройроЮрпНроЪро▓рпН",
		"password":          "роХроЯро╡рпБроЪрпНроЪрпКро▓рпН",
		"itemAdded":         "рокрпКро░рпБро│рпН ро╡рогрпНроЯро┐ропро┐ро▓рпН роЪрпЗро░рпНроХрпНроХрокрпНрокроЯрпНроЯродрпБ",
		"itemRemoved":       "рокрпКро░рпБро│рпН ро╡рогрпНроЯро┐ропро┐ро▓рпН роЗро░рпБроирпНродрпБ роЕроХро▒рпНро▒рокрпНрокроЯрпНроЯродрпБ",
		"cartUpdated":       "ро╡рогрпНроЯро┐ рокрпБродрпБрокрпНрокро┐роХрпНроХрокрпНрокроЯрпНроЯродрпБ",
	},
}
