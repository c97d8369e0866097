package domain

const (
	MaxUsernameLen = 64
	MaxJobTitleLen = 200
	MaxJobErrorLen = 2000
)

// NormalizeUsername applies the required-text rules for usernames.
// Uniqueness is a storage constraint, not a domain check.
func NormalizeUsername(username string) (string, error) {
	return NormalizeRequired("username", username, MaxUsernameLen)
}

// NormalizeJobTitle applies the required-text rules for job titles.
func NormalizeJobTitle(title string) (string, error) {
	return NormalizeRequired("title", title, MaxJobTitleLen)
}

// TruncateJobError bounds a captured job error message to the column size.
func TruncateJobError(msg string) string {
	r := []rune(msg)
	if len(r) > MaxJobErrorLen {
		return string(r[:MaxJobErrorLen])
	}
	return msg
}
