package models

// Address is a receiver address owned by the backend. At most one address per
// user carries IsDefault=true; the backend enforces it, we only reflect it.
type Address struct {
	AddressID     int64  `json:"addressId"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	Street        string `json:"street"`
	Ward          string `json:"ward"`
	District      string `json:"district"`
	City          string `json:"city"`
	IsDefault     bool   `json:"default"`
}
