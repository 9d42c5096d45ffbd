package domain

// Language selects the message translation for a user.
type Language string

const (
	LangVI Language = "vi"
	LangEN Language = "en"
)

// NormalizeLanguage maps any unrecognized value to Vietnamese, the
// product default.
func NormalizeLanguage(s string) Language {
	if s == string(LangEN) {
		return LangEN
	}
	return LangVI
}

// User represents an app user as seen by the sweep: an opaque id, an
// optional FCM device token and a preferred language. Account data is
// owned by the mobile backend; the server only reads it.
type User struct {
	ID        string
	PushToken string
	Language  Language
}

// HasToken reports whether the user can receive push notifications.
func (u *User) HasToken() bool {
	return u.PushToken != ""
}
