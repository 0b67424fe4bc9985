package client

// Backend endpoint paths, relative to the configured API base URL.
const (
	// Product endpoints
	endpointProducts         = "/products"             // GET - full catalog
	endpointProductByID      = "/products/%s"          // GET
	endpointProductsCategory = "/products/category/%s" // GET
	endpointProductsSearch   = "/products/search?q=%s" // GET

	// Order endpoints
	endpointOrders        = "/orders"            // GET, POST
	endpointOrderByNumber = "/orders/%s"         // GET
	endpointOrderAddress  = "/orders/%s/address" // PUT

	// AI chat endpoint
	endpointChat = "/ai/chat" // POST
)
