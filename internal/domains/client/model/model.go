package model

// Client is a directory entry, keyed by phone. Names keep their accents and
// casing exactly as typed; only the phone identifies a client.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Resolution statuses of a find-or-create. Conflict is not a failure: the
// operator decides whether to keep the existing client or fix the inputs.
const (
	StatusFound    = "found"
	StatusCreated  = "created"
	StatusConflict = "conflict"
)

// Resolution is the tagged result of FindOrCreate.
type Resolution struct {
	Status       string `json:"status"`
	ClientID     int64  `json:"client_id,omitempty"`
	ExistingName string `json:"existing_name,omitempty"`
}
