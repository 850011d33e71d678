package webhook

import "github.com/google/uuid"

// MessageIDPrefix is prepended to identifiers generated by NewMessageID.
const MessageIDPrefix = "msg_"

// NewMessageID returns a new message identifier built from a UUID v7, so
// IDs generated later sort after earlier ones.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func NewMessageID() string {
	return MessageIDPrefix + uuid.Must(uuid.NewV7()).String()
}
