package models

// EmailMessage is the record published for the mailer to deliver.
type EmailMessage struct {
	MessageID string `json:"message_id"` // Unique message identifier
	From      string `json:"from"`       // Sender address
	To        string `json:"to"`         // Recipient address
	Purpose   string `json:"purpose"`    // signup or reset
	Subject   string `json:"subject"`    // Rendered subject line
	HTML      string `json:"html"`       // Rendered HTML body
	Timestamp int64  `json:"timestamp"`  // Unix seconds when the message was produced
}
