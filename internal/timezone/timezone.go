package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// OrDefault fills in the default timezone for an absent value. Invalid but
// present values are kept as-is: shops have always been stored that way and
// rejecting them now would break previously-accepted payloads.
func OrDefault(tz string) string {
	if tz == "" {
		return DefaultTimezone
	}
	return tz
}

// Now is the evaluation clock for "upcoming" filtering.
func Now() time.Time {
	return time.Now().UTC()
}
