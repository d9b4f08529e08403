package domain

// Supplier carries the free-text certification and practice fields used
// for the socio-ethics bonus.
type Supplier struct {
	ID        string `json:"id"`
	Certs     string `json:"certs"`
	Practices string `json:"practices"`
}
