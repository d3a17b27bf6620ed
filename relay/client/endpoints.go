package client

// Relay API endpoints.
const (
	// Session endpoints
	EndpointLogin  = "/login"
	EndpointSignup = "/signup"

	// Standard relayer endpoints
	EndpointOrders      = "/v2/orders"
	EndpointOrderbook   = "/v2/orderbook"
	EndpointOrderConfig = "/v2/order_config"
	EndpointSubmitOrder = "/v2/order"
)
