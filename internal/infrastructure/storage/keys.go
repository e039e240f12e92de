package storage

import "strings"

// Persisted layout shared with the browser UI. Do not rename.
const (
	KeyJobs                 = "jobs"
	KeyPublicJobListings    = "publicJobListings"
	KeyInvoices             = "invoices"
	KeyAgendaItems          = "agendaItems"
	KeyAvailabilitySettings = "availabilitySettings"
	KeyUserProfile          = "userProfile"
	KeySubscriptionData     = "subscriptionData"

	chatKeyPrefix = "chat_"
)

func ChatKey(chatID string) string {
	return chatKeyPrefix + chatID
}

// ChatIDFromKey reports the chat id of a chat_{chatId} key.
func ChatIDFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, chatKeyPrefix) || len(key) == len(chatKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, chatKeyPrefix), true
}
