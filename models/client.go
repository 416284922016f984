package models

// Client is immutable reference data for a customer account.
type Client struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Contact string `bson:"contact" json:"contact"`
	Phone   string `bson:"phone" json:"phone"`
}

// Site is a physical location owned by exactly one client.
type Site struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Address  string `bson:"address" json:"address"`
	ClientID string `bson:"client_id" json:"clientId"`
}
