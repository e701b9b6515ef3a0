// Package notification delivers one-time codes to users over an external
// SMS/WhatsApp gateway.
package notification

import "context"

// Sender delivers a message to a phone number. Implementations must not
// retry; a failed dispatch surfaces to the caller.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}
