package stories

// Story ("priča") is a short client-submitted text. The client's name
// is copied in at write time and never synced back to the client row.
type Story struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Text      string `json:"text"`
	ClientID  uint   `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
