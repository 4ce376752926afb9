package domain

// DefaultPaymentMethod is attached to every booking; the API does not accept
// a payment method from the client.
const DefaultPaymentMethod = "Credit Card"

// MaxRecommendations caps the upcoming events suggested on a profile.
const MaxRecommendations = 5
